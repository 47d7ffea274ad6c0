package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// 컬렉션 이름
const (
	CollectionSuperAdmins   = "superadmins"
	CollectionOrganizations = "organizations"
	CollectionOrgAdmins     = "orgadmins"
	CollectionPayrolls      = "payrolls"
	CollectionCounters      = "counters"
)

// MongoConfig MongoDB 연결 설정
type MongoConfig struct {
	URI            string
	Username       string
	Password       string
	Database       string
	ConnectTimeout time.Duration
}

// NewMongoDatabase MongoDB에 연결하고 데이터베이스 핸들을 반환합니다.
func NewMongoDatabase(ctx context.Context, cfg MongoConfig, logger *zap.Logger) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(timeout).
		// 자유 형식 필드(primitive.M)의 중첩 문서를 맵으로 디코딩합니다.
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	if cfg.Username != "" {
		opts.SetAuth(options.Credential{
			Username: cfg.Username,
			Password: cfg.Password,
		})
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("MongoDB 연결 실패: %w", err)
	}

	// 연결 테스트
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("MongoDB 응답 없음: %w", err)
	}

	logger.Info("MongoDB 연결 성공", zap.String("database", cfg.Database))

	return client, client.Database(cfg.Database), nil
}
