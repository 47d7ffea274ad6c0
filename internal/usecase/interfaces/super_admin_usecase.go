package interfaces

import (
	"context"

	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase/dto"
)

// SuperAdminUseCase 슈퍼 관리자 유스케이스 인터페이스
type SuperAdminUseCase interface {
	Register(ctx context.Context, req dto.RegisterSuperAdminRequest) (*model.SuperAdmin, error)
	Login(ctx context.Context, req dto.SuperAdminLoginRequest) (*dto.SuperAdminLoginResult, error)
	Profile(ctx context.Context, actor model.Actor) (*model.SuperAdmin, error)
}
