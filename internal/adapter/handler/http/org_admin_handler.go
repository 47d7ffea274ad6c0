package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/hrms-backend/internal/middleware/auth"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase/dto"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// OrgAdminHandler handles organization admin requests
type OrgAdminHandler struct {
	logger  *zap.Logger
	usecase interfaces.OrgAdminUseCase
}

// NewOrgAdminHandler creates a new organization admin handler instance
func NewOrgAdminHandler(logger *zap.Logger, usecase interfaces.OrgAdminUseCase) *OrgAdminHandler {
	return &OrgAdminHandler{
		logger:  logger,
		usecase: usecase,
	}
}

// Create handles POST /api/organization/:id/admins
func (h *OrgAdminHandler) Create(c echo.Context) error {
	actor, err := auth.GetActorFromContext(c)
	if err != nil {
		return err
	}

	var req dto.CreateOrgAdminRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	admin, err := h.usecase.Create(c.Request().Context(), *actor, c.Param("id"), req)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "Organization admin created successfully", Envelope{
		"admin": dto.NewOrgAdminView(admin),
	})
}

// Login handles POST /api/orgadmin/login
func (h *OrgAdminHandler) Login(c echo.Context) error {
	var req dto.OrgAdminLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.usecase.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Login successful", Envelope{
		"token": result.Token,
		"admin": result.Admin,
	})
}
