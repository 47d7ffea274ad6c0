package auth

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/hrms-backend/pkg/errors"
	"go.uber.org/zap"
)

// Response messages of the auth middleware.
const (
	MsgNoToken          = "Access denied. No token provided."
	MsgSuperAdminOnly   = "Access denied. Only super admin can perform this action."
	MsgOrganizationOnly = "Access denied. Only organization can perform this action."
)

// contextKey is used for storing the actor in context
type contextKey string

const (
	actorContextKey contextKey = "authenticated_actor"

	// echo context keys
	ActorKey       = "actor"
	AccessTokenKey = "access_token"
)

// JWTConfig holds the configuration for JWT middleware
type JWTConfig struct {
	TokenUseCase interfaces.TokenUseCase
	Logger       *zap.Logger
	SkipPaths    []string // Paths to skip JWT validation
}

// JWTMiddleware validates the bearer token and stores the verified actor in
// the request context. A missing or malformed header is answered with 403,
// an invalid, expired or revoked token with 401.
func JWTMiddleware(config JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			for _, skipPath := range config.SkipPaths {
				if strings.HasPrefix(path, skipPath) {
					return next(c)
				}
			}

			tokenString, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				config.Logger.Warn("Missing or malformed authorization header",
					zap.String("path", path),
					zap.String("method", c.Request().Method))
				return apperrors.MissingCredentials(MsgNoToken)
			}

			actor, err := config.TokenUseCase.ValidateAccessToken(c.Request().Context(), tokenString)
			if err != nil {
				config.Logger.Warn("JWT validation failed",
					zap.String("path", path),
					zap.Error(err))
				return err
			}

			ctx := context.WithValue(c.Request().Context(), actorContextKey, actor)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Set(ActorKey, actor)
			c.Set(AccessTokenKey, tokenString)

			config.Logger.Debug("Actor authenticated",
				zap.String("actor_id", actor.ID),
				zap.String("role", actor.Role.String()),
				zap.String("path", path))

			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	token, found := strings.CutPrefix(header, "Bearer ")
	token = strings.TrimSpace(token)
	if !found || token == "" {
		return "", false
	}
	return token, true
}

// RequireRole rejects actors whose role is not listed with a 403 carrying message.
// It must run after JWTMiddleware.
func RequireRole(message string, roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, err := GetActorFromContext(c)
			if err != nil {
				return apperrors.MissingCredentials(MsgNoToken)
			}
			for _, role := range roles {
				if actor.Role == role {
					return next(c)
				}
			}
			return apperrors.Unauthorized(message)
		}
	}
}

// GetActorFromContext extracts the authenticated actor from the request context
func GetActorFromContext(c echo.Context) (*model.Actor, error) {
	actor, ok := c.Request().Context().Value(actorContextKey).(*model.Actor)
	if !ok || actor == nil {
		return nil, apperrors.MissingCredentials(MsgNoToken)
	}
	return actor, nil
}

// GetAccessToken returns the raw bearer token accepted by JWTMiddleware.
func GetAccessToken(c echo.Context) string {
	token, _ := c.Get(AccessTokenKey).(string)
	return token
}
