package repository

import (
	"context"

	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
)

// EventPublisher 감사 이벤트 발행 인터페이스
type EventPublisher interface {
	Publish(ctx context.Context, event model.DomainEvent) error
}
