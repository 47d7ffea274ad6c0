package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/repository"
	"go.uber.org/zap"
)

// RedisConfig Redis 설정
type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// RedisRepository Redis 캐시 저장소 구현체
type RedisRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisClient Redis 클라이언트 생성
func NewRedisClient(cfg RedisConfig, logger *zap.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// 연결 테스트
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Redis 연결 실패", zap.Error(err))
		_ = client.Close()
		return nil, fmt.Errorf("Redis 연결 실패: %w", err)
	}

	logger.Info("Redis 연결 성공", zap.String("address", cfg.Address))
	return client, nil
}

// NewRedisRepository Redis 저장소 생성
func NewRedisRepository(client *redis.Client, logger *zap.Logger) repository.CacheRepository {
	return &RedisRepository{
		client: client,
		logger: logger,
	}
}

// Set 키-값 저장
func (r *RedisRepository) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	if err := r.client.Set(ctx, key, value, expiration).Err(); err != nil {
		r.logger.Error("Redis Set 실패", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// Get 키로 값 조회. 키가 없으면 redis.Nil을 반환합니다.
func (r *RedisRepository) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Error("Redis Get 실패", zap.String("key", key), zap.Error(err))
		}
		return "", err
	}
	return value, nil
}

// Delete 키 삭제
func (r *RedisRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Redis Delete 실패", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// IsNotFound 키가 없어서 발생한 에러인지 확인
func (r *RedisRepository) IsNotFound(err error) bool {
	return errors.Is(err, redis.Nil)
}
