package repository

import (
	"context"
	"time"

	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PayrollFilter 급여 목록 조회 조건
type PayrollFilter struct {
	Status         *model.PayrollStatus
	IncludeDeleted bool
}

// PayrollRepository 급여 저장소 인터페이스
type PayrollRepository interface {
	// Create 새 급여 기록을 저장합니다.
	Create(ctx context.Context, payroll *model.Payroll) error

	// FindByID ID로 조회합니다. 삭제된 기록도 반환합니다.
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Payroll, error)

	// FindByOrganization 조직의 급여 기록을 생성일 역순으로 조회합니다.
	FindByOrganization(ctx context.Context, orgID primitive.ObjectID, filter PayrollFilter) ([]*model.Payroll, error)

	// Update 상세 섹션을 필드 단위로 병합하고 감사 기록을 추가합니다.
	Update(ctx context.Context, id primitive.ObjectID, details model.PayrollDetails, entry model.AuditEntry) (*model.Payroll, error)

	// SoftDelete 삭제 표시, 상태 Cancelled 전환, 감사 기록 추가를 한 번에 수행합니다.
	SoftDelete(ctx context.Context, id primitive.ObjectID, deletedBy primitive.ObjectID, at time.Time, entry model.AuditEntry) (*model.Payroll, error)
}
