// audit-tail은 감사 이벤트 채널을 구독해 수신한 이벤트를 로그로 출력합니다.
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/wekeepgrowing/hrms-backend/internal/config"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
	"github.com/wekeepgrowing/hrms-backend/pkg/messaging"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("설정 로드 실패: %v", err)
	}

	logger := cfg.Logger
	defer logger.Sync()

	client, err := messaging.NewRedisClient(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Fatal("Redis 연결 실패", zap.Error(err))
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	messages, err := client.Subscribe(ctx, cfg.Messaging.Channel)
	if err != nil {
		logger.Fatal("채널 구독 실패", zap.String("channel", cfg.Messaging.Channel), zap.Error(err))
	}

	logger.Info("감사 이벤트 구독 시작", zap.String("channel", cfg.Messaging.Channel))

	for msg := range messages {
		var event model.DomainEvent
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			logger.Warn("이벤트 파싱 실패", zap.ByteString("payload", msg.Payload), zap.Error(err))
			continue
		}
		logger.Info("감사 이벤트",
			zap.String("type", event.Type),
			zap.String("actor_id", event.ActorID),
			zap.String("actor_role", event.ActorRole.String()),
			zap.String("resource_id", event.ResourceID),
			zap.String("organization_id", event.OrganizationID),
			zap.Time("occurred_at", event.OccurredAt))
	}

	logger.Info("감사 이벤트 구독 종료")
}
