package repository

import (
	"context"
	"time"

	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrganizationFilter 조직 목록 조회 조건
type OrganizationFilter struct {
	Status *model.OrganizationStatus
}

// OrganizationUpdate 조직 부분 수정 내용. nil 필드는 변경하지 않습니다.
type OrganizationUpdate struct {
	Name         *string
	PasswordHash *string
	Status       *model.OrganizationStatus
	Profile      model.OrganizationProfile
}

// IsEmpty 변경할 필드가 하나도 없는지 확인합니다.
func (u OrganizationUpdate) IsEmpty() bool {
	return u.Name == nil && u.PasswordHash == nil && u.Status == nil && u.Profile.IsZero()
}

// OrganizationRepository 조직 저장소 인터페이스
type OrganizationRepository interface {
	// Create 새 조직을 저장합니다. organization_code 중복 시 ErrDuplicateKey를 감싸 반환합니다.
	Create(ctx context.Context, org *model.Organization) error

	// FindByID ID로 조회합니다. 비활성 조직도 반환합니다.
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Organization, error)

	// FindByIDs 주어진 ID 목록에 해당하는 조직을 생성일 역순으로 조회합니다.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID, filter OrganizationFilter) ([]*model.Organization, error)

	// Update 필드 단위로 병합하고 수정된 문서를 반환합니다. 없으면 nil, nil.
	Update(ctx context.Context, id primitive.ObjectID, update OrganizationUpdate) (*model.Organization, error)

	// SoftDelete status=inactive, deletedAt을 설정하고 수정된 문서를 반환합니다.
	SoftDelete(ctx context.Context, id primitive.ObjectID, at time.Time) (*model.Organization, error)

	// Delete 문서를 제거합니다. 생성 보상 처리에서만 사용합니다.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
