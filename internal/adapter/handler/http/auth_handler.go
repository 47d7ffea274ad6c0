package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/hrms-backend/internal/middleware/auth"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// AuthHandler handles session-level token requests
type AuthHandler struct {
	logger       *zap.Logger
	tokenUseCase interfaces.TokenUseCase
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(logger *zap.Logger, tokenUseCase interfaces.TokenUseCase) *AuthHandler {
	return &AuthHandler{
		logger:       logger,
		tokenUseCase: tokenUseCase,
	}
}

// Logout handles POST /api/auth/logout
// The presented token stays rejected until it would have expired.
func (h *AuthHandler) Logout(c echo.Context) error {
	actor, err := auth.GetActorFromContext(c)
	if err != nil {
		return err
	}

	if err := h.tokenUseCase.RevokeAccessToken(c.Request().Context(), auth.GetAccessToken(c)); err != nil {
		return err
	}

	h.logger.Info("Access token revoked",
		zap.String("actor_id", actor.ID),
		zap.String("role", actor.Role.String()))

	return respond(c, http.StatusOK, "Logged out successfully", nil)
}
