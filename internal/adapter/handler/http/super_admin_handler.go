package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/hrms-backend/internal/middleware/auth"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase/dto"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// SuperAdminHandler handles super admin registration, login and profile requests
type SuperAdminHandler struct {
	logger  *zap.Logger
	usecase interfaces.SuperAdminUseCase
}

// NewSuperAdminHandler creates a new super admin handler instance
func NewSuperAdminHandler(logger *zap.Logger, usecase interfaces.SuperAdminUseCase) *SuperAdminHandler {
	return &SuperAdminHandler{
		logger:  logger,
		usecase: usecase,
	}
}

// Register handles POST /api/superadmin/register
func (h *SuperAdminHandler) Register(c echo.Context) error {
	var req dto.RegisterSuperAdminRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	admin, err := h.usecase.Register(c.Request().Context(), req)
	if err != nil {
		return err
	}

	h.logger.Info("Super admin registered", zap.String("super_admin_id", admin.ID.Hex()))
	return respond(c, http.StatusCreated, "Super admin registered successfully", Envelope{
		"data": dto.NewSuperAdminView(admin),
	})
}

// Login handles POST /api/superadmin/login
func (h *SuperAdminHandler) Login(c echo.Context) error {
	var req dto.SuperAdminLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.usecase.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Login successful", Envelope{
		"token":      result.Token,
		"superAdmin": result.SuperAdmin,
	})
}

// Me handles GET /api/superadmin/me
func (h *SuperAdminHandler) Me(c echo.Context) error {
	actor, err := auth.GetActorFromContext(c)
	if err != nil {
		return err
	}

	admin, err := h.usecase.Profile(c.Request().Context(), *actor)
	if err != nil {
		return err
	}

	// the stored record carries no password in JSON and includes linked organizations
	return respond(c, http.StatusOK, "", Envelope{
		"superAdmin": admin,
	})
}
