package repository

import (
	"context"
	"time"

	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SuperAdminRepository 슈퍼 관리자 저장소 인터페이스
type SuperAdminRepository interface {
	// Create 새 슈퍼 관리자를 저장하고 생성된 ID를 채웁니다.
	Create(ctx context.Context, admin *model.SuperAdmin) error

	// FindByID ID로 조회합니다. 없으면 nil, nil을 반환합니다.
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.SuperAdmin, error)

	// FindByEmail 이메일로 조회합니다. 없으면 nil, nil을 반환합니다.
	FindByEmail(ctx context.Context, email string) (*model.SuperAdmin, error)

	// UpdateLastLogin 마지막 로그인 시각을 기록합니다.
	UpdateLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error

	// AddLinkedOrganization 연결 조직 목록에 항목을 추가합니다.
	AddLinkedOrganization(ctx context.Context, id primitive.ObjectID, link model.LinkedOrganization) error

	// RenameLinkedOrganization 모든 슈퍼 관리자의 연결 조직 이름을 갱신합니다.
	RenameLinkedOrganization(ctx context.Context, orgID primitive.ObjectID, name string) error
}
