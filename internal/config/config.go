// Package config는 payroll 서비스 설정을 pkg/config에서 읽어 구조체로 구성합니다.
package config

import (
	"fmt"
	"time"

	"github.com/wekeepgrowing/hrms-backend/pkg/config"
	"github.com/wekeepgrowing/hrms-backend/pkg/logger"
	"go.uber.org/zap"
)

// ServiceName 설정 파일 이름과 환경 변수 접두사(PAYROLL_)로 사용됩니다.
const ServiceName = "payroll"

// Config payroll 서비스 설정 구조체
type Config struct {
	Service struct {
		Name        string
		Environment string
	}

	// HTTP 서버 설정
	Server struct {
		Host            string
		Port            int
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		ShutdownTimeout time.Duration
		BodyLimit       string
		AllowOrigins    []string
	}

	// 로그 설정
	Log struct {
		Level       string
		Format      string
		Output      string
		FilePath    string
		Development bool
	}

	// MongoDB 설정
	Mongo struct {
		URI            string
		Username       string
		Password       string
		Database       string
		ConnectTimeout time.Duration
	}

	// Redis 설정 (토큰 폐기 목록, 감사 이벤트 발행)
	Redis struct {
		Enabled  bool
		Address  string
		Password string
		DB       int
	}

	// JWT 설정
	JWT struct {
		Secret            string
		Issuer            string
		AccessTokenExpiry time.Duration
	}

	// 보안 설정
	Security struct {
		BcryptCost     int
		LoginRateLimit float64
		LoginBurst     int
	}

	// 감사 이벤트 발행 설정
	Messaging struct {
		Enabled bool
		Channel string
	}

	// 로거 인스턴스
	Logger *zap.Logger
}

// Defaults 설정 파일과 환경 변수가 없을 때 사용하는 기본값
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"service.name":              ServiceName,
		"service.environment":       "development",
		"server.host":               "0.0.0.0",
		"server.port":               3000,
		"server.read_timeout":       "15s",
		"server.write_timeout":      "15s",
		"server.shutdown_timeout":   "10s",
		"server.body_limit":         "2M",
		"server.allow_origins":      []string{"*"},
		"log.level":                 "info",
		"log.format":                "json",
		"log.output":                "stdout",
		"mongo.uri":                 "mongodb://localhost:27017",
		"mongo.database":            "hrms",
		"mongo.connect_timeout":     "10s",
		"redis.enabled":             false,
		"redis.address":             "localhost:6379",
		"redis.db":                  0,
		"jwt.issuer":                ServiceName,
		"jwt.access_token_expiry":   "12h",
		"security.bcrypt_cost":      10,
		"security.login_rate_limit": 5,
		"security.login_burst":      10,
		"messaging.enabled":         false,
		"messaging.channel":         "payroll.audit",
	}
}

// Load 설정 파일 로드
func Load() (*Config, error) {
	cfg, err := config.LoadWithDefaults(ServiceName, Defaults())
	if err != nil {
		return nil, err
	}

	appConfig := FromSource(cfg)

	if appConfig.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt.secret 설정이 필요합니다 (PAYROLL_JWT_SECRET)")
	}

	// 로거 생성
	log, err := logger.NewZapLogger(logger.Config{
		Level:       appConfig.Log.Level,
		Format:      appConfig.Log.Format,
		Output:      appConfig.Log.Output,
		FilePath:    appConfig.Log.FilePath,
		Development: appConfig.Log.Development,
		Service:     appConfig.Service.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("로거 생성 실패: %w", err)
	}
	appConfig.Logger = log

	return appConfig, nil
}

// FromSource pkg/config 값을 Config 구조체로 옮깁니다.
func FromSource(cfg config.Config) *Config {
	c := &Config{}

	c.Service.Name = cfg.GetString("service.name")
	c.Service.Environment = cfg.GetString("service.environment")

	c.Server.Host = cfg.GetString("server.host")
	c.Server.Port = cfg.GetInt("server.port")
	c.Server.ReadTimeout = cfg.GetDuration("server.read_timeout")
	c.Server.WriteTimeout = cfg.GetDuration("server.write_timeout")
	c.Server.ShutdownTimeout = cfg.GetDuration("server.shutdown_timeout")
	c.Server.BodyLimit = cfg.GetString("server.body_limit")
	c.Server.AllowOrigins = cfg.GetStringSlice("server.allow_origins")

	c.Log.Level = cfg.GetString("log.level")
	c.Log.Format = cfg.GetString("log.format")
	c.Log.Output = cfg.GetString("log.output")
	c.Log.FilePath = cfg.GetString("log.file_path")
	c.Log.Development = cfg.GetBool("log.development")

	c.Mongo.URI = cfg.GetString("mongo.uri")
	c.Mongo.Username = cfg.GetString("mongo.username")
	c.Mongo.Password = cfg.GetString("mongo.password")
	c.Mongo.Database = cfg.GetString("mongo.database")
	c.Mongo.ConnectTimeout = cfg.GetDuration("mongo.connect_timeout")

	c.Redis.Enabled = cfg.GetBool("redis.enabled")
	c.Redis.Address = cfg.GetString("redis.address")
	c.Redis.Password = cfg.GetString("redis.password")
	c.Redis.DB = cfg.GetInt("redis.db")

	c.JWT.Secret = cfg.GetString("jwt.secret")
	c.JWT.Issuer = cfg.GetString("jwt.issuer")
	c.JWT.AccessTokenExpiry = cfg.GetDuration("jwt.access_token_expiry")

	c.Security.BcryptCost = cfg.GetInt("security.bcrypt_cost")
	c.Security.LoginRateLimit = float64(cfg.GetInt("security.login_rate_limit"))
	c.Security.LoginBurst = cfg.GetInt("security.login_burst")

	c.Messaging.Enabled = cfg.GetBool("messaging.enabled")
	c.Messaging.Channel = cfg.GetString("messaging.channel")

	return c
}

// HTTPAddress host:port 형식의 리슨 주소
func (c *Config) HTTPAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
