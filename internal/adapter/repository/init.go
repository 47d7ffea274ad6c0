package repository

import (
	"github.com/redis/go-redis/v9"
	domainrepo "github.com/wekeepgrowing/hrms-backend/internal/domain/repository"
	"github.com/wekeepgrowing/hrms-backend/internal/infrastructure/db"
	"github.com/wekeepgrowing/hrms-backend/pkg/messaging"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EventConfig 감사 이벤트 발행 설정
type EventConfig struct {
	Enabled bool
	Channel string
}

// InitRepositories 모든 레포지토리를 초기화하고 컬렉션을 반환합니다.
// redisClient가 nil이면 캐시 레포지토리 없이 구성합니다.
func InitRepositories(database *mongo.Database, redisClient *redis.Client, events EventConfig, logger *zap.Logger) *domainrepo.Repositories {
	// 캐시 레포지토리 (Redis 기반, 선택)
	var cacheRepo domainrepo.CacheRepository
	if redisClient != nil {
		cacheRepo = db.NewRedisRepository(redisClient, logger)
	}

	// 감사 이벤트 발행기
	eventPublisher := NewLogEventPublisher(logger)
	if events.Enabled && redisClient != nil {
		eventPublisher = NewRedisEventPublisher(messaging.NewRedisClientFrom(redisClient), events.Channel)
	}

	return domainrepo.NewRepositories(
		NewSuperAdminRepository(database),
		NewOrganizationRepository(database),
		NewOrgAdminRepository(database),
		NewPayrollRepository(database),
		NewSequenceRepository(database),
		cacheRepo,
		eventPublisher,
	)
}
