package interfaces

import (
	"context"

	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase/dto"
)

// OrgAdminUseCase 조직 관리자 유스케이스 인터페이스
type OrgAdminUseCase interface {
	Create(ctx context.Context, actor model.Actor, organizationID string, req dto.CreateOrgAdminRequest) (*model.OrgAdmin, error)
	Login(ctx context.Context, req dto.OrgAdminLoginRequest) (*dto.OrgAdminLoginResult, error)
}
