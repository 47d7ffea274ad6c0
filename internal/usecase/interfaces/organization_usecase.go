package interfaces

import (
	"context"

	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/repository"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase/dto"
)

// OrganizationUseCase 조직 유스케이스 인터페이스
type OrganizationUseCase interface {
	Create(ctx context.Context, actor model.Actor, req dto.CreateOrganizationRequest) (*model.Organization, error)
	Login(ctx context.Context, req dto.OrganizationLoginRequest) (*dto.OrganizationLoginResult, error)
	Get(ctx context.Context, actor model.Actor, id string) (*model.Organization, error)
	Update(ctx context.Context, actor model.Actor, id string, req dto.UpdateOrganizationRequest) (*model.Organization, error)
	SoftDelete(ctx context.Context, actor model.Actor, id string) (*dto.DeleteOrganizationResult, error)
	ListForSuperAdmin(ctx context.Context, actor model.Actor, filter repository.OrganizationFilter) (*dto.OrganizationListResult, error)
}
