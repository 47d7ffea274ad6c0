package init

import (
	"github.com/wekeepgrowing/hrms-backend/internal/domain/repository"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/service"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// UseCases 애플리케이션의 모든 유스케이스 컨테이너
type UseCases struct {
	TokenUseCase        interfaces.TokenUseCase
	SuperAdminUseCase   interfaces.SuperAdminUseCase
	OrganizationUseCase interfaces.OrganizationUseCase
	OrgAdminUseCase     interfaces.OrgAdminUseCase
	PayrollUseCase      interfaces.PayrollUseCase
}

// NewUseCases 모든 유스케이스 인스턴스 생성 및 초기화
func NewUseCases(
	repos *repository.Repositories,
	hasher service.PasswordHasher,
	tokenConfig usecase.TokenConfig,
	logger *zap.Logger,
) *UseCases {
	useCases := &UseCases{}

	// 1. 토큰 유스케이스 (Redis가 없으면 폐기 기능 비활성화)
	useCases.TokenUseCase = usecase.NewTokenUseCase(
		logger,
		tokenConfig,
		repos.Cache,
	)

	// 2. 모든 리소스 유스케이스가 공유하는 접근 판단기
	resolver := service.NewAccessResolver(
		repos.SuperAdmin,
		repos.Organization,
		repos.OrgAdmin,
		service.DefaultPolicy(),
		logger,
	)

	// 3. 리소스 유스케이스
	useCases.SuperAdminUseCase = usecase.NewSuperAdminUseCase(
		logger,
		repos.SuperAdmin,
		hasher,
		useCases.TokenUseCase,
		resolver,
	)

	useCases.OrganizationUseCase = usecase.NewOrganizationUseCase(
		logger,
		repos.Organization,
		repos.SuperAdmin,
		repos.Sequence,
		repos.Events,
		hasher,
		useCases.TokenUseCase,
		resolver,
	)

	useCases.OrgAdminUseCase = usecase.NewOrgAdminUseCase(
		logger,
		repos.OrgAdmin,
		repos.Organization,
		repos.Events,
		hasher,
		useCases.TokenUseCase,
		resolver,
	)

	useCases.PayrollUseCase = usecase.NewPayrollUseCase(
		logger,
		repos.Payroll,
		repos.Events,
		resolver,
	)

	return useCases
}
