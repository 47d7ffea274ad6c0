// Package config는 애플리케이션 설정을 관리하는 패키지입니다.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 인터페이스는 설정 값에 액세스하기 위한 메서드를 정의합니다.
type Config interface {
	GetString(key string) string
	GetInt(key string) int
	GetInt64(key string) int64
	GetBool(key string) bool
	GetDuration(key string) time.Duration
	GetStringSlice(key string) []string
	IsSet(key string) bool
	GetAll() map[string]interface{}
}

// viperConfig는 viper를 사용하여 Config 인터페이스를 구현합니다.
type viperConfig struct {
	v *viper.Viper
}

func (c *viperConfig) GetString(key string) string            { return c.v.GetString(key) }
func (c *viperConfig) GetInt(key string) int                  { return c.v.GetInt(key) }
func (c *viperConfig) GetInt64(key string) int64              { return c.v.GetInt64(key) }
func (c *viperConfig) GetBool(key string) bool                { return c.v.GetBool(key) }
func (c *viperConfig) GetDuration(key string) time.Duration   { return c.v.GetDuration(key) }
func (c *viperConfig) GetStringSlice(key string) []string     { return c.v.GetStringSlice(key) }
func (c *viperConfig) IsSet(key string) bool                  { return c.v.IsSet(key) }
func (c *viperConfig) GetAll() map[string]interface{}         { return c.v.AllSettings() }

// 설정 디렉토리 경로
const configDir = "configs"

// Load는 지정된 서비스 이름에 해당하는 설정 파일을 로드합니다.
func Load(serviceName string) (Config, error) {
	return LoadWithDefaults(serviceName, nil)
}

// LoadWithDefaults는 기본값을 등록한 뒤 설정 파일과 환경 변수를 차례로 덮어씁니다.
//
// 우선순위: 환경 변수({SERVICE}_A_B) > configs/{APP_ENV}/{service}.yaml >
// configs/example/{service}.yaml > defaults.
// 설정 파일이 전혀 없으면 기본값과 환경 변수만으로 동작합니다.
func LoadWithDefaults(serviceName string, defaults map[string]interface{}) (Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev" // 기본 환경은 dev
	}

	v.SetConfigType("yaml")

	// 환경 변수 바인딩 설정
	v.SetEnvPrefix(strings.ToUpper(serviceName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = filepath.Join(configDir, env)
	}

	v.SetConfigName(serviceName)
	v.AddConfigPath(configPath)
	v.AddConfigPath(filepath.Join(configDir, "example"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("설정 파일 로드 실패: %w", err)
		}
	}

	return &viperConfig{v: v}, nil
}
