package db

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/wekeepgrowing/hrms-backend/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Infrastructure 인프라스트럭처 구조체
type Infrastructure struct {
	MongoClient *mongo.Client
	Database    *mongo.Database
	RedisClient *redis.Client // redis.enabled가 false면 nil
	logger      *zap.Logger
}

// NewInfrastructure 인프라스트럭처 초기화
func NewInfrastructure(ctx context.Context, cfg *config.Config) (*Infrastructure, error) {
	logger := cfg.Logger
	infrastructure := &Infrastructure{logger: logger}

	// MongoDB 연결
	var err error
	infrastructure.MongoClient, infrastructure.Database, err = NewMongoDatabase(ctx, MongoConfig{
		URI:            cfg.Mongo.URI,
		Username:       cfg.Mongo.Username,
		Password:       cfg.Mongo.Password,
		Database:       cfg.Mongo.Database,
		ConnectTimeout: cfg.Mongo.ConnectTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}

	if err := EnsureIndexes(ctx, infrastructure.Database, logger); err != nil {
		_ = infrastructure.Close()
		return nil, err
	}

	// Redis는 선택 사항입니다.
	if cfg.Redis.Enabled {
		infrastructure.RedisClient, err = NewRedisClient(RedisConfig{
			Address:  cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, logger)
		if err != nil {
			_ = infrastructure.Close()
			return nil, err
		}
	}

	logger.Info("인프라스트럭처 초기화 완료",
		zap.String("database", cfg.Mongo.Database),
		zap.Bool("redis", infrastructure.RedisClient != nil),
	)

	return infrastructure, nil
}

// Close 모든 연결 종료
func (i *Infrastructure) Close() error {
	if i.RedisClient != nil {
		if err := i.RedisClient.Close(); err != nil {
			return fmt.Errorf("Redis 연결 종료 실패: %w", err)
		}
	}

	if i.MongoClient != nil {
		if err := i.MongoClient.Disconnect(context.Background()); err != nil {
			return fmt.Errorf("MongoDB 연결 종료 실패: %w", err)
		}
	}

	i.logger.Info("모든 인프라스트럭처 연결 종료됨")
	return nil
}
