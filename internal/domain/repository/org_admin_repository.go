package repository

import (
	"context"

	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrgAdminRepository 조직 관리자 저장소 인터페이스
type OrgAdminRepository interface {
	// Create 새 조직 관리자를 저장합니다. organization_code 중복 시 ErrDuplicateKey.
	Create(ctx context.Context, admin *model.OrgAdmin) error

	// FindByID ID로 조회합니다. 없으면 nil, nil.
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.OrgAdmin, error)

	// FindByOrganizationCode 조직 코드로 조회합니다. 없으면 nil, nil.
	FindByOrganizationCode(ctx context.Context, code string) (*model.OrgAdmin, error)
}
