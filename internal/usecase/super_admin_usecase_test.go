package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/repository"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase/dto"
	apperrors "github.com/wekeepgrowing/hrms-backend/pkg/errors"
)

func TestSuperAdminUseCase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a bcrypt hash and defaults", func(t *testing.T) {
		f := newFixture()
		uc := f.superAdminUseCase()

		f.superAdmins.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, nil)
		f.superAdmins.On("Create", mock.Anything, mock.MatchedBy(func(a *model.SuperAdmin) bool {
			return a.Password != "secret123" && f.hasher.Verify("secret123", a.Password)
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*model.SuperAdmin).ID = primitive.NewObjectID()
		}).Return(nil)

		admin, err := uc.Register(ctx, dto.RegisterSuperAdminRequest{
			FirstName: "Jane",
			Email:     " Jane@Example.com ",
			Password:  "secret123",
		})
		require.NoError(t, err)

		assert.Equal(t, "jane@example.com", admin.Email)
		assert.True(t, strings.HasPrefix(admin.Username, "jane_"))
		assert.Equal(t, model.RoleSuperAdmin, admin.Role)
		assert.Equal(t, model.SuperAdminActive, admin.Status)
		assert.Equal(t, model.FullPermissions(), admin.Permissions)
		assert.Empty(t, admin.LinkedOrganizations)
		f.superAdmins.AssertExpectations(t)
	})

	t.Run("missing fields", func(t *testing.T) {
		f := newFixture()
		_, err := f.superAdminUseCase().Register(ctx, dto.RegisterSuperAdminRequest{Email: "a@b.co"})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrInvalidArgument))
		f.superAdmins.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("existing email conflicts", func(t *testing.T) {
		f := newFixture()
		f.superAdmins.On("FindByEmail", mock.Anything, "jane@example.com").Return(&model.SuperAdmin{}, nil)

		_, err := f.superAdminUseCase().Register(ctx, dto.RegisterSuperAdminRequest{Email: "jane@example.com", Password: "secret123"})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrConflict))
		f.superAdmins.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("racing insert conflicts", func(t *testing.T) {
		f := newFixture()
		f.superAdmins.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, nil)
		f.superAdmins.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicateKey)

		_, err := f.superAdminUseCase().Register(ctx, dto.RegisterSuperAdminRequest{Email: "jane@example.com", Password: "secret123"})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrConflict))
	})
}

func TestSuperAdminUseCase_Login(t *testing.T) {
	ctx := context.Background()

	newAdmin := func(f *fixture, status string) *model.SuperAdmin {
		hash, err := f.hasher.Hash("secret123")
		require.NoError(t, err)
		return &model.SuperAdmin{
			ID:       primitive.NewObjectID(),
			Email:    "jane@example.com",
			Username: "jane_x",
			Password: hash,
			Role:     model.RoleSuperAdmin,
			Status:   status,
		}
	}

	t.Run("issues a super admin token", func(t *testing.T) {
		f := newFixture()
		admin := newAdmin(f, model.SuperAdminActive)
		f.superAdmins.On("FindByEmail", mock.Anything, "jane@example.com").Return(admin, nil)
		f.superAdmins.On("UpdateLastLogin", mock.Anything, admin.ID, mock.Anything).Return(nil)

		result, err := f.superAdminUseCase().Login(ctx, dto.SuperAdminLoginRequest{Email: "jane@example.com", Password: "secret123"})
		require.NoError(t, err)

		actor, err := f.tokens.ValidateAccessToken(ctx, result.Token)
		require.NoError(t, err)
		assert.Equal(t, admin.ID.Hex(), actor.ID)
		assert.Equal(t, model.RoleSuperAdmin, actor.Role)
		assert.Equal(t, admin.ID.Hex(), result.SuperAdmin.ID)
		assert.NotNil(t, admin.LastLogin)
	})

	t.Run("last login failure does not block", func(t *testing.T) {
		f := newFixture()
		admin := newAdmin(f, model.SuperAdminActive)
		f.superAdmins.On("FindByEmail", mock.Anything, "jane@example.com").Return(admin, nil)
		f.superAdmins.On("UpdateLastLogin", mock.Anything, admin.ID, mock.Anything).Return(errors.New("write failed"))

		result, err := f.superAdminUseCase().Login(ctx, dto.SuperAdminLoginRequest{Email: "jane@example.com", Password: "secret123"})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newFixture()
		f.superAdmins.On("FindByEmail", mock.Anything, "jane@example.com").Return(newAdmin(f, model.SuperAdminActive), nil)

		_, err := f.superAdminUseCase().Login(ctx, dto.SuperAdminLoginRequest{Email: "jane@example.com", Password: "nope"})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrUnauthenticated))
	})

	t.Run("unknown email", func(t *testing.T) {
		f := newFixture()
		f.superAdmins.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

		_, err := f.superAdminUseCase().Login(ctx, dto.SuperAdminLoginRequest{Email: "ghost@example.com", Password: "secret123"})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrUnauthenticated))
	})

	t.Run("suspended account", func(t *testing.T) {
		f := newFixture()
		f.superAdmins.On("FindByEmail", mock.Anything, "jane@example.com").Return(newAdmin(f, model.SuperAdminSuspended), nil)

		_, err := f.superAdminUseCase().Login(ctx, dto.SuperAdminLoginRequest{Email: "jane@example.com", Password: "secret123"})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrUnauthorized))
	})
}

func TestSuperAdminUseCase_Profile(t *testing.T) {
	f := newFixture()
	admin, actor := f.givenSuperAdmin()

	got, err := f.superAdminUseCase().Profile(context.Background(), actor)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, got.ID)
}
