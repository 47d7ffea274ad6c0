package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/repository"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/service"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase/constants"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase/dto"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/hrms-backend/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// 조직 에러 메시지
const (
	MsgOrganizationFieldsRequired = "Organization name, password, and official email are required"
	MsgOrganizationLoginRequired  = "Organization ID and password are required"
	MsgInvalidOrganizationID      = "Invalid Organization ID"
	MsgInvalidCredentials         = "Invalid credentials"
	MsgOrganizationInactive       = "Organization is inactive"
	MsgNoDataToUpdate             = "No data provided to update"
	MsgOrganizationNameEmpty      = "Organization name cannot be empty"
	MsgOrganizationCodeExists     = "Organization code already exists"
	MsgOrganizationAccessDenied   = "You are not authorized to access this organization"
	MsgOrganizationModifyDenied   = "You are not authorized to modify this organization"
)

// OrganizationUseCase 조직 유스케이스 구현체
type OrganizationUseCase struct {
	logger           *zap.Logger
	organizationRepo repository.OrganizationRepository
	superAdminRepo   repository.SuperAdminRepository
	sequenceRepo     repository.SequenceRepository
	events           repository.EventPublisher
	hasher           service.PasswordHasher
	tokenUseCase     interfaces.TokenUseCase
	resolver         *service.AccessResolver
}

// NewOrganizationUseCase 새 조직 유스케이스 생성
func NewOrganizationUseCase(
	logger *zap.Logger,
	organizationRepo repository.OrganizationRepository,
	superAdminRepo repository.SuperAdminRepository,
	sequenceRepo repository.SequenceRepository,
	events repository.EventPublisher,
	hasher service.PasswordHasher,
	tokenUseCase interfaces.TokenUseCase,
	resolver *service.AccessResolver,
) interfaces.OrganizationUseCase {
	return &OrganizationUseCase{
		logger:           logger,
		organizationRepo: organizationRepo,
		superAdminRepo:   superAdminRepo,
		sequenceRepo:     sequenceRepo,
		events:           events,
		hasher:           hasher,
		tokenUseCase:     tokenUseCase,
		resolver:         resolver,
	}
}

// Create 슈퍼 관리자가 조직을 생성하고 자신에게 연결합니다.
func (uc *OrganizationUseCase) Create(ctx context.Context, actor model.Actor, req dto.CreateOrganizationRequest) (*model.Organization, error) {
	// 1. 역할 검사
	if err := uc.resolver.CheckRole(actor, service.ResourceOrganization, service.ActionCreate); err != nil {
		return nil, err
	}

	// 2. 필수 항목 확인
	name := strings.TrimSpace(req.Name)
	if name == "" || req.Password == "" || strings.TrimSpace(req.OfficialEmail()) == "" {
		return nil, apperrors.InvalidArgument(MsgOrganizationFieldsRequired)
	}

	// 3. 존재 검사
	scope, err := uc.resolver.Resolve(ctx, actor)
	if err != nil {
		return nil, err
	}

	// 4. 조직 코드 할당
	code := strings.TrimSpace(req.OrganizationCode)
	if code == "" {
		if code, err = uc.nextOrganizationCode(ctx); err != nil {
			return nil, err
		}
	}

	hash, err := uc.hasher.Hash(req.Password)
	if err != nil {
		uc.logger.Error("비밀번호 해싱 실패", zap.Error(err))
		return nil, apperrors.Internal("Failed to hash password", err)
	}

	now := time.Now().UTC()
	org := &model.Organization{
		OrganizationCode:    code,
		Name:                name,
		Password:            hash,
		OrganizationProfile: req.OrganizationProfile,
		CreatedBy:           scope.ActorID,
		Status:              model.OrganizationActive,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	// 5. 저장
	if err := uc.organizationRepo.Create(ctx, org); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apperrors.Conflict(MsgOrganizationCodeExists)
		}
		uc.logger.Error("조직 저장 실패", zap.String("organization_code", code), zap.Error(err))
		return nil, apperrors.Internal("Failed to create organization", err)
	}

	// 6. 슈퍼 관리자 연결. 실패하면 생성한 조직을 제거합니다.
	link := model.LinkedOrganization{
		OrganizationID:   org.ID,
		OrganizationName: org.Name,
		AssignedDate:     now,
		RoleInOrg:        model.LinkRoleAdmin,
	}
	if err := uc.superAdminRepo.AddLinkedOrganization(ctx, scope.ActorID, link); err != nil {
		uc.logger.Error("슈퍼 관리자 연결 실패, 조직 생성 취소",
			zap.String("organization_id", org.ID.Hex()),
			zap.String("super_admin_id", actor.ID),
			zap.Error(err))
		if delErr := uc.organizationRepo.Delete(ctx, org.ID); delErr != nil {
			uc.logger.Error("조직 생성 취소 실패",
				zap.String("organization_id", org.ID.Hex()),
				zap.Error(delErr))
		}
		return nil, apperrors.Internal("Failed to link organization to super admin", err)
	}

	uc.logger.Info("조직 생성",
		zap.String("organization_id", org.ID.Hex()),
		zap.String("organization_code", org.OrganizationCode),
		zap.String("super_admin_id", actor.ID))

	publishEvent(ctx, uc.logger, uc.events, model.EventOrganizationCreated, actor, org.ID, org.ID)
	return org, nil
}

// nextOrganizationCode 원자적 카운터로 ORG-<1000+n> 코드를 만듭니다.
func (uc *OrganizationUseCase) nextOrganizationCode(ctx context.Context) (string, error) {
	seq, err := uc.sequenceRepo.Next(ctx, repository.SequenceOrganizationCode)
	if err != nil {
		uc.logger.Error("조직 코드 할당 실패", zap.Error(err))
		return "", apperrors.Internal("Failed to allocate organization code", err)
	}
	return fmt.Sprintf("%s%d", constants.OrganizationCodePrefix, constants.OrganizationCodeBase+seq), nil
}

// Login 조직 로그인
func (uc *OrganizationUseCase) Login(ctx context.Context, req dto.OrganizationLoginRequest) (*dto.OrganizationLoginResult, error) {
	if strings.TrimSpace(req.OrganizationID) == "" || req.Password == "" {
		return nil, apperrors.InvalidArgument(MsgOrganizationLoginRequired)
	}

	orgID, ok := parseObjectID(req.OrganizationID)
	if !ok {
		return nil, apperrors.InvalidArgument(MsgInvalidOrganizationID)
	}

	org, err := uc.organizationRepo.FindByID(ctx, orgID)
	if err != nil {
		uc.logger.Error("조직 조회 실패", zap.String("organization_id", req.OrganizationID), zap.Error(err))
		return nil, apperrors.Internal("Failed to load organization", err)
	}
	if org == nil {
		return nil, apperrors.NotFound(service.MsgOrganizationNotFound)
	}
	if org.IsDeleted() || org.IsInactive() {
		return nil, apperrors.Unauthorized(MsgOrganizationInactive)
	}
	if !uc.hasher.Verify(req.Password, org.Password) {
		return nil, apperrors.Unauthenticated(MsgInvalidCredentials)
	}

	token, err := uc.tokenUseCase.GenerateAccessToken(ctx, model.Actor{
		ID:             org.ID.Hex(),
		Role:           model.RoleOrganization,
		OrganizationID: org.ID.Hex(),
		Email:          org.OfficialEmail(),
	})
	if err != nil {
		return nil, err
	}

	return &dto.OrganizationLoginResult{
		Token: token,
		Organization: &dto.OrganizationView{
			ID:               org.ID.Hex(),
			Name:             org.Name,
			OrganizationCode: org.OrganizationCode,
			ContactEmail:     org.OfficialEmail(),
			Role:             model.RoleOrganization,
		},
	}, nil
}

// Get 연결된 조직 조회. 비활성 조직도 반환합니다.
func (uc *OrganizationUseCase) Get(ctx context.Context, actor model.Actor, id string) (*model.Organization, error) {
	scope, err := uc.resolver.Authorize(ctx, actor, service.ResourceOrganization, service.ActionRead)
	if err != nil {
		return nil, err
	}

	orgID, ok := parseObjectID(id)
	if !ok {
		return nil, apperrors.InvalidArgument(MsgInvalidOrganizationID)
	}
	if err := scope.Require(orgID, MsgOrganizationAccessDenied); err != nil {
		return nil, err
	}

	return uc.loadOrganization(ctx, orgID)
}

// Update 조직 부분 수정
func (uc *OrganizationUseCase) Update(ctx context.Context, actor model.Actor, id string, req dto.UpdateOrganizationRequest) (*model.Organization, error) {
	if err := uc.resolver.CheckRole(actor, service.ResourceOrganization, service.ActionUpdate); err != nil {
		return nil, err
	}
	if req.IsEmpty() {
		return nil, apperrors.InvalidArgument(MsgNoDataToUpdate)
	}

	scope, err := uc.resolver.Resolve(ctx, actor)
	if err != nil {
		return nil, err
	}

	orgID, ok := parseObjectID(id)
	if !ok {
		return nil, apperrors.InvalidArgument(MsgInvalidOrganizationID)
	}
	if err := scope.Require(orgID, MsgOrganizationModifyDenied); err != nil {
		return nil, err
	}

	update := repository.OrganizationUpdate{Profile: req.OrganizationProfile}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.InvalidArgument(MsgOrganizationNameEmpty)
		}
		update.Name = &name
	}

	// 비밀번호는 요청에 있을 때만 다시 해싱합니다.
	if req.Password != nil && *req.Password != "" {
		hash, err := uc.hasher.Hash(*req.Password)
		if err != nil {
			uc.logger.Error("비밀번호 해싱 실패", zap.Error(err))
			return nil, apperrors.Internal("Failed to hash password", err)
		}
		update.PasswordHash = &hash
	}

	org, err := uc.organizationRepo.Update(ctx, orgID, update)
	if err != nil {
		uc.logger.Error("조직 수정 실패", zap.String("organization_id", id), zap.Error(err))
		return nil, apperrors.Internal("Failed to update organization", err)
	}
	if org == nil {
		return nil, apperrors.NotFound(service.MsgOrganizationNotFound)
	}

	if update.Name != nil {
		if err := uc.superAdminRepo.RenameLinkedOrganization(ctx, orgID, *update.Name); err != nil {
			uc.logger.Warn("연결 조직 이름 갱신 실패",
				zap.String("organization_id", id),
				zap.Error(err))
		}
	}

	uc.logger.Info("조직 수정",
		zap.String("organization_id", id),
		zap.String("super_admin_id", actor.ID))

	publishEvent(ctx, uc.logger, uc.events, model.EventOrganizationUpdated, actor, org.ID, org.ID)
	return org, nil
}

// SoftDelete 조직 비활성화. 이미 비활성이면 변경 없이 성공합니다.
func (uc *OrganizationUseCase) SoftDelete(ctx context.Context, actor model.Actor, id string) (*dto.DeleteOrganizationResult, error) {
	scope, err := uc.resolver.Authorize(ctx, actor, service.ResourceOrganization, service.ActionDelete)
	if err != nil {
		return nil, err
	}

	orgID, ok := parseObjectID(id)
	if !ok {
		return nil, apperrors.InvalidArgument(MsgInvalidOrganizationID)
	}
	if err := scope.Require(orgID, MsgOrganizationModifyDenied); err != nil {
		return nil, err
	}

	org, err := uc.loadOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if org.IsInactive() {
		return &dto.DeleteOrganizationResult{Organization: org, AlreadyInactive: true}, nil
	}

	deleted, err := uc.organizationRepo.SoftDelete(ctx, orgID, time.Now().UTC())
	if err != nil {
		uc.logger.Error("조직 비활성화 실패", zap.String("organization_id", id), zap.Error(err))
		return nil, apperrors.Internal("Failed to deactivate organization", err)
	}
	if deleted == nil {
		return nil, apperrors.NotFound(service.MsgOrganizationNotFound)
	}

	uc.logger.Info("조직 비활성화",
		zap.String("organization_id", id),
		zap.String("super_admin_id", actor.ID))

	publishEvent(ctx, uc.logger, uc.events, model.EventOrganizationDeactivated, actor, deleted.ID, deleted.ID)

	return &dto.DeleteOrganizationResult{
		Organization: deleted,
		PerformedBy: &dto.PerformedBy{
			ID:       scope.SuperAdmin.ID.Hex(),
			Email:    scope.SuperAdmin.Email,
			Username: scope.SuperAdmin.Username,
		},
	}, nil
}

// ListForSuperAdmin 행위자 ID를 슈퍼 관리자로 조회하고 연결된 조직을 반환합니다.
func (uc *OrganizationUseCase) ListForSuperAdmin(ctx context.Context, actor model.Actor, filter repository.OrganizationFilter) (*dto.OrganizationListResult, error) {
	if err := uc.resolver.CheckRole(actor, service.ResourceOrganization, service.ActionList); err != nil {
		return nil, err
	}

	scope, err := uc.resolver.ResolveSuperAdmin(ctx, actor)
	if err != nil {
		return nil, err
	}

	result := &dto.OrganizationListResult{
		Organizations: []*model.Organization{},
		Linked:        len(scope.OrganizationIDs),
	}
	if len(scope.OrganizationIDs) == 0 {
		return result, nil
	}

	orgs, err := uc.organizationRepo.FindByIDs(ctx, scope.OrganizationIDs, filter)
	if err != nil {
		uc.logger.Error("조직 목록 조회 실패", zap.String("super_admin_id", actor.ID), zap.Error(err))
		return nil, apperrors.Internal("Failed to list organizations", err)
	}
	if orgs != nil {
		result.Organizations = orgs
	}
	result.Total = len(result.Organizations)

	return result, nil
}

func (uc *OrganizationUseCase) loadOrganization(ctx context.Context, orgID primitive.ObjectID) (*model.Organization, error) {
	org, err := uc.organizationRepo.FindByID(ctx, orgID)
	if err != nil {
		uc.logger.Error("조직 조회 실패", zap.String("organization_id", orgID.Hex()), zap.Error(err))
		return nil, apperrors.Internal("Failed to load organization", err)
	}
	if org == nil {
		return nil, apperrors.NotFound(service.MsgOrganizationNotFound)
	}
	return org, nil
}
