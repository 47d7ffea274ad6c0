package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/repository"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/service"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase/dto"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/hrms-backend/pkg/errors"
	"go.uber.org/zap"
)

// 조직 관리자 에러 메시지
const (
	MsgOrgAdminLoginRequired  = "Organization code and password are required"
	MsgOrgAdminFieldsRequired = "Name and password are required"
	MsgOrgAdminExists         = "An admin already exists for this organization"
)

// OrgAdminUseCase 조직 관리자 유스케이스 구현체
type OrgAdminUseCase struct {
	logger           *zap.Logger
	orgAdminRepo     repository.OrgAdminRepository
	organizationRepo repository.OrganizationRepository
	events           repository.EventPublisher
	hasher           service.PasswordHasher
	tokenUseCase     interfaces.TokenUseCase
	resolver         *service.AccessResolver
}

// NewOrgAdminUseCase 새 조직 관리자 유스케이스 생성
func NewOrgAdminUseCase(
	logger *zap.Logger,
	orgAdminRepo repository.OrgAdminRepository,
	organizationRepo repository.OrganizationRepository,
	events repository.EventPublisher,
	hasher service.PasswordHasher,
	tokenUseCase interfaces.TokenUseCase,
	resolver *service.AccessResolver,
) interfaces.OrgAdminUseCase {
	return &OrgAdminUseCase{
		logger:           logger,
		orgAdminRepo:     orgAdminRepo,
		organizationRepo: organizationRepo,
		events:           events,
		hasher:           hasher,
		tokenUseCase:     tokenUseCase,
		resolver:         resolver,
	}
}

// Create 연결된 조직에 관리자 계정을 만듭니다. 관리자는 조직 코드를 물려받습니다.
func (uc *OrgAdminUseCase) Create(ctx context.Context, actor model.Actor, organizationID string, req dto.CreateOrgAdminRequest) (*model.OrgAdmin, error) {
	scope, err := uc.resolver.Authorize(ctx, actor, service.ResourceOrgAdmin, service.ActionCreate)
	if err != nil {
		return nil, err
	}

	orgID, ok := parseObjectID(organizationID)
	if !ok {
		return nil, apperrors.InvalidArgument(MsgInvalidOrganizationID)
	}
	if err := scope.Require(orgID, MsgOrganizationModifyDenied); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" || req.Password == "" {
		return nil, apperrors.InvalidArgument(MsgOrgAdminFieldsRequired)
	}

	org, err := uc.organizationRepo.FindByID(ctx, orgID)
	if err != nil {
		uc.logger.Error("조직 조회 실패", zap.String("organization_id", organizationID), zap.Error(err))
		return nil, apperrors.Internal("Failed to load organization", err)
	}
	if org == nil || org.IsDeleted() {
		return nil, apperrors.NotFound(service.MsgOrganizationNotFound)
	}

	hash, err := uc.hasher.Hash(req.Password)
	if err != nil {
		uc.logger.Error("비밀번호 해싱 실패", zap.Error(err))
		return nil, apperrors.Internal("Failed to hash password", err)
	}

	now := time.Now().UTC()
	admin := &model.OrgAdmin{
		Name:             name,
		OrganizationCode: org.OrganizationCode,
		OrganizationID:   org.ID,
		Password:         hash,
		Role:             model.RoleOrgAdmin,
		Email:            NormalizeEmail(req.Email),
		CreatedBy:        scope.ActorID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := uc.orgAdminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apperrors.Conflict(MsgOrgAdminExists)
		}
		uc.logger.Error("조직 관리자 저장 실패", zap.String("organization_id", organizationID), zap.Error(err))
		return nil, apperrors.Internal("Failed to create organization admin", err)
	}

	uc.logger.Info("조직 관리자 생성",
		zap.String("org_admin_id", admin.ID.Hex()),
		zap.String("organization_id", organizationID))

	publishEvent(ctx, uc.logger, uc.events, model.EventOrgAdminCreated, actor, admin.ID, org.ID)
	return admin, nil
}

// Login 조직 관리자 로그인
func (uc *OrgAdminUseCase) Login(ctx context.Context, req dto.OrgAdminLoginRequest) (*dto.OrgAdminLoginResult, error) {
	code := strings.TrimSpace(req.OrganizationCode)
	if code == "" || req.Password == "" {
		return nil, apperrors.InvalidArgument(MsgOrgAdminLoginRequired)
	}

	admin, err := uc.orgAdminRepo.FindByOrganizationCode(ctx, code)
	if err != nil {
		uc.logger.Error("조직 관리자 조회 실패", zap.String("organization_code", code), zap.Error(err))
		return nil, apperrors.Internal("Failed to load organization admin", err)
	}
	if admin == nil || !uc.hasher.Verify(req.Password, admin.Password) {
		return nil, apperrors.Unauthenticated(MsgInvalidCredentials)
	}

	token, err := uc.tokenUseCase.GenerateAccessToken(ctx, model.Actor{
		ID:             admin.ID.Hex(),
		Role:           model.RoleOrgAdmin,
		OrganizationID: admin.OrganizationID.Hex(),
		Email:          admin.Email,
	})
	if err != nil {
		return nil, err
	}

	return &dto.OrgAdminLoginResult{
		Token: token,
		Admin: dto.NewOrgAdminView(admin),
	}, nil
}
