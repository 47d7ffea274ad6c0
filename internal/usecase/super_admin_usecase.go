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

// 슈퍼 관리자 에러 메시지
const (
	MsgEmailPasswordRequired = "Email and password are required"
	MsgEmailExists           = "Email already exists"
	MsgInvalidEmailPassword  = "Invalid email or password"
	MsgAccountNotActive      = "Account is not active"
)

// SuperAdminUseCase 슈퍼 관리자 유스케이스 구현체
type SuperAdminUseCase struct {
	logger         *zap.Logger
	superAdminRepo repository.SuperAdminRepository
	hasher         service.PasswordHasher
	tokenUseCase   interfaces.TokenUseCase
	resolver       *service.AccessResolver
}

// NewSuperAdminUseCase 새 슈퍼 관리자 유스케이스 생성
func NewSuperAdminUseCase(
	logger *zap.Logger,
	superAdminRepo repository.SuperAdminRepository,
	hasher service.PasswordHasher,
	tokenUseCase interfaces.TokenUseCase,
	resolver *service.AccessResolver,
) interfaces.SuperAdminUseCase {
	return &SuperAdminUseCase{
		logger:         logger,
		superAdminRepo: superAdminRepo,
		hasher:         hasher,
		tokenUseCase:   tokenUseCase,
		resolver:       resolver,
	}
}

// Register 슈퍼 관리자 가입
func (uc *SuperAdminUseCase) Register(ctx context.Context, req dto.RegisterSuperAdminRequest) (*model.SuperAdmin, error) {
	email := NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, apperrors.InvalidArgument(MsgEmailPasswordRequired)
	}

	// 1. 이메일 중복 확인
	existing, err := uc.superAdminRepo.FindByEmail(ctx, email)
	if err != nil {
		uc.logger.Error("이메일 조회 실패", zap.String("email", email), zap.Error(err))
		return nil, apperrors.Internal("Failed to check email", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict(MsgEmailExists)
	}

	// 2. 비밀번호 해싱
	hash, err := uc.hasher.Hash(req.Password)
	if err != nil {
		uc.logger.Error("비밀번호 해싱 실패", zap.Error(err))
		return nil, apperrors.Internal("Failed to hash password", err)
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		username = GenerateUsername(req.FirstName)
	}

	// 3. 저장
	admin := &model.SuperAdmin{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Username:            username,
		Email:               email,
		Password:            hash,
		ContactNumber:       req.ContactNumber,
		ProfilePicture:      req.ProfilePicture,
		Role:                model.RoleSuperAdmin,
		AccessLevel:         "system",
		Permissions:         model.FullPermissions(),
		LinkedOrganizations: []model.LinkedOrganization{},
		Status:              model.SuperAdminActive,
		CreatedBy:           "system",
		CreatedAt:           time.Now().UTC(),
	}

	if err := uc.superAdminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apperrors.Conflict(MsgEmailExists)
		}
		uc.logger.Error("슈퍼 관리자 저장 실패", zap.String("email", email), zap.Error(err))
		return nil, apperrors.Internal("Failed to create super admin", err)
	}

	uc.logger.Info("슈퍼 관리자 가입",
		zap.String("super_admin_id", admin.ID.Hex()),
		zap.String("username", admin.Username))

	return admin, nil
}

// Login 슈퍼 관리자 로그인
func (uc *SuperAdminUseCase) Login(ctx context.Context, req dto.SuperAdminLoginRequest) (*dto.SuperAdminLoginResult, error) {
	email := NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, apperrors.InvalidArgument(MsgEmailPasswordRequired)
	}

	admin, err := uc.superAdminRepo.FindByEmail(ctx, email)
	if err != nil {
		uc.logger.Error("슈퍼 관리자 조회 실패", zap.String("email", email), zap.Error(err))
		return nil, apperrors.Internal("Failed to load super admin", err)
	}
	if admin == nil || admin.IsDeleted() || !uc.hasher.Verify(req.Password, admin.Password) {
		return nil, apperrors.Unauthenticated(MsgInvalidEmailPassword)
	}
	if !admin.IsActive() {
		return nil, apperrors.Unauthorized(MsgAccountNotActive)
	}

	token, err := uc.tokenUseCase.GenerateAccessToken(ctx, model.Actor{
		ID:    admin.ID.Hex(),
		Role:  model.RoleSuperAdmin,
		Email: admin.Email,
	})
	if err != nil {
		return nil, err
	}

	// 마지막 로그인 기록 실패는 로그인 자체를 막지 않습니다.
	now := time.Now().UTC()
	if err := uc.superAdminRepo.UpdateLastLogin(ctx, admin.ID, now); err != nil {
		uc.logger.Warn("마지막 로그인 기록 실패", zap.String("super_admin_id", admin.ID.Hex()), zap.Error(err))
	} else {
		admin.LastLogin = &now
	}

	return &dto.SuperAdminLoginResult{
		Token:      token,
		SuperAdmin: dto.NewSuperAdminView(admin),
	}, nil
}

// Profile 로그인한 슈퍼 관리자 정보
func (uc *SuperAdminUseCase) Profile(ctx context.Context, actor model.Actor) (*model.SuperAdmin, error) {
	scope, err := uc.resolver.ResolveSuperAdmin(ctx, actor)
	if err != nil {
		return nil, err
	}
	return scope.SuperAdmin, nil
}
