package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/repository"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase/constants"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// GenerateUsername 이름 소문자와 무작위 접미사로 사용자 이름을 만듭니다. 예: jane_k3f9x0a1bq
func GenerateUsername(firstName string) string {
	base := strings.ToLower(strings.TrimSpace(firstName))
	base = strings.Join(strings.Fields(base), "")
	if base == "" {
		base = "user"
	}

	suffix, err := gonanoid.Generate(constants.UsernameAlphabet, constants.UsernameSuffixLength)
	if err != nil {
		// 난수 생성 실패 시 시간 기반 접미사 사용
		suffix = strings.ToLower(primitive.NewObjectID().Hex()[:constants.UsernameSuffixLength])
	}
	return base + "_" + suffix
}

// NormalizeEmail 이메일 비교용 정규화
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// parseObjectID 빈 문자열이거나 형식이 잘못되면 false를 반환합니다.
func parseObjectID(hex string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(hex))
	return id, err == nil
}

// publishEvent 감사 이벤트를 발행합니다. 실패해도 요청은 성공으로 처리합니다.
func publishEvent(ctx context.Context, logger *zap.Logger, publisher repository.EventPublisher, eventType string, actor model.Actor, resourceID, organizationID primitive.ObjectID) {
	if publisher == nil {
		return
	}

	event := model.DomainEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
		ResourceID: resourceID.Hex(),
		OccurredAt: time.Now().UTC(),
	}
	if !organizationID.IsZero() {
		event.OrganizationID = organizationID.Hex()
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("감사 이벤트 발행 실패",
			zap.String("event_type", eventType),
			zap.String("resource_id", event.ResourceID),
			zap.Error(err))
	}
}
