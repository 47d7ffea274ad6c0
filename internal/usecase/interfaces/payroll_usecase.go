package interfaces

import (
	"context"

	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/repository"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase/dto"
)

// PayrollUseCase 급여 유스케이스 인터페이스
type PayrollUseCase interface {
	Create(ctx context.Context, actor model.Actor, req dto.CreatePayrollRequest) (*model.Payroll, error)
	Get(ctx context.Context, actor model.Actor, payrollID string) (*model.Payroll, error)
	ListByOrganization(ctx context.Context, actor model.Actor, organizationID string, filter repository.PayrollFilter) (*dto.PayrollListResult, error)
	Update(ctx context.Context, actor model.Actor, payrollID string, req dto.UpdatePayrollRequest) (*model.Payroll, error)
	Delete(ctx context.Context, actor model.Actor, payrollID string) (*dto.DeletePayrollResult, error)
}
