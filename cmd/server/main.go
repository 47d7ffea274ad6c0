package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/wekeepgrowing/hrms-backend/internal/adapter/handler/http"
	"github.com/wekeepgrowing/hrms-backend/internal/adapter/repository"
	"github.com/wekeepgrowing/hrms-backend/internal/config"
	"github.com/wekeepgrowing/hrms-backend/internal/infrastructure/crypto"
	"github.com/wekeepgrowing/hrms-backend/internal/infrastructure/db"
	httpserver "github.com/wekeepgrowing/hrms-backend/internal/infrastructure/http"
	appinit "github.com/wekeepgrowing/hrms-backend/internal/init"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

func main() {
	// 1. 설정 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("설정 로드 실패: %v", err)
	}

	// 2. 로거 가져오기
	logger := cfg.Logger
	defer logger.Sync()

	logger.Info("급여 서비스를 시작합니다...",
		zap.String("service", cfg.Service.Name),
		zap.String("environment", cfg.Service.Environment),
	)

	// 3. 인프라스트럭처 초기화
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	infrastructure, err := db.NewInfrastructure(ctx, cfg)
	cancel()
	if err != nil {
		logger.Fatal("인프라스트럭처 초기화 실패", zap.Error(err))
	}
	defer infrastructure.Close()

	// 4. 레포지토리 초기화
	repositories := repository.InitRepositories(
		infrastructure.Database,
		infrastructure.RedisClient,
		repository.EventConfig{
			Enabled: cfg.Messaging.Enabled,
			Channel: cfg.Messaging.Channel,
		},
		logger,
	)

	// 5. 유스케이스 초기화
	hasher, err := crypto.NewBcryptHasher(cfg.Security.BcryptCost)
	if err != nil {
		logger.Fatal("비밀번호 해셔 생성 실패", zap.Error(err))
	}

	useCases := appinit.NewUseCases(repositories, hasher, usecase.TokenConfig{
		Issuer:            cfg.JWT.Issuer,
		Secret:            cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.AccessTokenExpiry,
	}, logger)

	// 6. 헬스 체크 대상
	health := map[string]http.Pinger{
		"mongo": http.PingFunc(func(ctx context.Context) error {
			return infrastructure.MongoClient.Ping(ctx, readpref.Primary())
		}),
	}
	if infrastructure.RedisClient != nil {
		health["redis"] = http.PingFunc(func(ctx context.Context) error {
			return infrastructure.RedisClient.Ping(ctx).Err()
		})
	}

	// 7. HTTP 서버 생성
	httpServer := httpserver.NewServer(httpserver.Config{
		Address:         cfg.HTTPAddress(),
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		BodyLimit:       cfg.Server.BodyLimit,
		AllowOrigins:    cfg.Server.AllowOrigins,
		LoginRateLimit:  cfg.Security.LoginRateLimit,
		LoginBurst:      cfg.Security.LoginBurst,
	}, useCases, health, logger)
	httpServer.RegisterRoutes()

	// 8. 서버 시작
	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Error("HTTP 서버 종료", zap.Error(err))
		}
	}()

	// 9. 그레이스풀 종료를 위한 시그널 처리
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("서버를 종료합니다...")

	if err := httpServer.Stop(); err != nil {
		logger.Error("HTTP 서버 종료 오류", zap.Error(err))
	}

	logger.Info("서버가 정상적으로 종료되었습니다")
}
