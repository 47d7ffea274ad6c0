package repository

import (
	"context"

	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/repository"
	"github.com/wekeepgrowing/hrms-backend/pkg/messaging"
	"go.uber.org/zap"
)

// RedisEventPublisher 감사 이벤트를 Redis 채널로 발행합니다.
type RedisEventPublisher struct {
	publisher messaging.Publisher
	channel   string
}

// NewRedisEventPublisher Redis 이벤트 발행기 생성
func NewRedisEventPublisher(publisher messaging.Publisher, channel string) repository.EventPublisher {
	return &RedisEventPublisher{publisher: publisher, channel: channel}
}

// Publish 이벤트 발행
func (p *RedisEventPublisher) Publish(ctx context.Context, event model.DomainEvent) error {
	return p.publisher.Publish(ctx, p.channel, event)
}

// LogEventPublisher 메시징이 꺼져 있을 때 이벤트를 로그로만 남깁니다.
type LogEventPublisher struct {
	logger *zap.Logger
}

// NewLogEventPublisher 로그 이벤트 발행기 생성
func NewLogEventPublisher(logger *zap.Logger) repository.EventPublisher {
	return &LogEventPublisher{logger: logger}
}

// Publish 이벤트를 디버그 로그로 기록
func (p *LogEventPublisher) Publish(_ context.Context, event model.DomainEvent) error {
	p.logger.Debug("감사 이벤트",
		zap.String("event_id", event.ID),
		zap.String("type", event.Type),
		zap.String("actor_id", event.ActorID),
		zap.String("resource_id", event.ResourceID))
	return nil
}
