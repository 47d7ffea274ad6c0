package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase/dto"
	apperrors "github.com/wekeepgrowing/hrms-backend/pkg/errors"
)

// MockTokenUseCase is a mock implementation of interfaces.TokenUseCase
type MockTokenUseCase struct {
	mock.Mock
}

func (m *MockTokenUseCase) GenerateAccessToken(ctx context.Context, actor model.Actor) (string, error) {
	args := m.Called(ctx, actor)
	return args.String(0), args.Error(1)
}

func (m *MockTokenUseCase) VerifyAccessToken(token string) (*dto.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TokenClaims), args.Error(1)
}

func (m *MockTokenUseCase) ValidateAccessToken(ctx context.Context, token string) (*model.Actor, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Actor), args.Error(1)
}

func (m *MockTokenUseCase) RevokeAccessToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func serve(t *testing.T, mw echo.MiddlewareFunc, header string, handler echo.HandlerFunc) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/organization/superadmin/all", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return mw(handler)(c)
}

func TestJWTMiddleware_Authenticates(t *testing.T) {
	tokens := new(MockTokenUseCase)
	actor := &model.Actor{ID: "65f1a2b3c4d5e6f708192a3b", Role: model.RoleSuperAdmin}
	tokens.On("ValidateAccessToken", mock.Anything, "good-token").Return(actor, nil)

	mw := JWTMiddleware(JWTConfig{TokenUseCase: tokens, Logger: zap.NewNop()})

	called := false
	err := serve(t, mw, "Bearer good-token", func(c echo.Context) error {
		called = true
		got, err := GetActorFromContext(c)
		require.NoError(t, err)
		assert.Equal(t, actor, got)
		assert.Equal(t, "good-token", GetAccessToken(c))
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, err)
	assert.True(t, called)
}

func TestJWTMiddleware_MissingCredentials(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"basic scheme", "Basic dXNlcjpwYXNz"},
		{"bearer without token", "Bearer "},
		{"lowercase scheme", "bearer token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := new(MockTokenUseCase)
			mw := JWTMiddleware(JWTConfig{TokenUseCase: tokens, Logger: zap.NewNop()})

			err := serve(t, mw, tt.header, func(c echo.Context) error {
				t.Fatal("handler must not run")
				return nil
			})

			require.Error(t, err)
			assert.Equal(t, apperrors.ErrMissingCredentials, apperrors.Code(err))
			assert.Equal(t, http.StatusForbidden, apperrors.ToHTTPStatus(apperrors.Code(err)))
			tokens.AssertNotCalled(t, "ValidateAccessToken", mock.Anything, mock.Anything)
		})
	}
}

func TestJWTMiddleware_InvalidToken(t *testing.T) {
	tokens := new(MockTokenUseCase)
	tokens.On("ValidateAccessToken", mock.Anything, "expired").
		Return(nil, apperrors.Unauthenticated("Invalid or expired token."))

	mw := JWTMiddleware(JWTConfig{TokenUseCase: tokens, Logger: zap.NewNop()})
	err := serve(t, mw, "Bearer expired", func(c echo.Context) error {
		t.Fatal("handler must not run")
		return nil
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperrors.ToHTTPStatus(apperrors.Code(err)))
}

func TestJWTMiddleware_SkipPaths(t *testing.T) {
	tokens := new(MockTokenUseCase)
	mw := JWTMiddleware(JWTConfig{TokenUseCase: tokens, Logger: zap.NewNop(), SkipPaths: []string{"/api/organization"}})

	called := false
	err := serve(t, mw, "", func(c echo.Context) error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}

func TestRequireRole(t *testing.T) {
	tokens := new(MockTokenUseCase)
	tokens.On("ValidateAccessToken", mock.Anything, "org-token").
		Return(&model.Actor{ID: "65f1a2b3c4d5e6f708192a3c", Role: model.RoleOrganization}, nil)

	jwtMW := JWTMiddleware(JWTConfig{TokenUseCase: tokens, Logger: zap.NewNop()})
	chain := func(gate echo.MiddlewareFunc) echo.MiddlewareFunc {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return jwtMW(gate(next)) }
	}

	t.Run("rejects other roles", func(t *testing.T) {
		err := serve(t, chain(RequireRole(MsgSuperAdminOnly, model.RoleSuperAdmin)), "Bearer org-token", func(c echo.Context) error {
			t.Fatal("handler must not run")
			return nil
		})

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrUnauthorized, appErr.Code())
		assert.Equal(t, MsgSuperAdminOnly, appErr.Message())
	})

	t.Run("passes listed roles", func(t *testing.T) {
		err := serve(t, chain(RequireRole(MsgOrganizationOnly, model.RoleOrganization)), "Bearer org-token", func(c echo.Context) error {
			return c.NoContent(http.StatusNoContent)
		})
		assert.NoError(t, err)
	})

	t.Run("without jwt middleware", func(t *testing.T) {
		err := serve(t, RequireRole(MsgSuperAdminOnly, model.RoleSuperAdmin), "Bearer org-token", func(c echo.Context) error {
			return nil
		})
		assert.Equal(t, apperrors.ErrMissingCredentials, apperrors.Code(err))
	})
}
