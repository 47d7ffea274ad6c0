package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/repository"
	"github.com/wekeepgrowing/hrms-backend/internal/middleware/auth"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase/dto"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/hrms-backend/pkg/errors"
	"go.uber.org/zap"
)

// Organization response messages
const (
	MsgOrganizationCreated     = "Organization created successfully"
	MsgOrganizationUpdated     = "Organization updated successfully"
	MsgOrganizationDeactivated = "Organization marked as inactive successfully"
	MsgOrganizationWasInactive = "Organization is already inactive"
	MsgNoLinkedOrganizations   = "No organizations linked to this SuperAdmin"
	MsgInvalidOrgStatusFilter  = "Invalid organization status filter"
)

// OrganizationHandler handles organization requests
type OrganizationHandler struct {
	logger  *zap.Logger
	usecase interfaces.OrganizationUseCase
}

// NewOrganizationHandler creates a new organization handler instance
func NewOrganizationHandler(logger *zap.Logger, usecase interfaces.OrganizationUseCase) *OrganizationHandler {
	return &OrganizationHandler{
		logger:  logger,
		usecase: usecase,
	}
}

// Create handles POST /api/organization/create
func (h *OrganizationHandler) Create(c echo.Context) error {
	actor, err := auth.GetActorFromContext(c)
	if err != nil {
		return err
	}

	var req dto.CreateOrganizationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	org, err := h.usecase.Create(c.Request().Context(), *actor, req)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, MsgOrganizationCreated, Envelope{
		"organization": org,
	})
}

// Login handles POST /api/organization/login
func (h *OrganizationHandler) Login(c echo.Context) error {
	var req dto.OrganizationLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.usecase.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Login successful", Envelope{
		"token":        result.Token,
		"organization": result.Organization,
	})
}

// Get handles GET /api/organization/:id
func (h *OrganizationHandler) Get(c echo.Context) error {
	actor, err := auth.GetActorFromContext(c)
	if err != nil {
		return err
	}

	org, err := h.usecase.Get(c.Request().Context(), *actor, c.Param("id"))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "", Envelope{
		"organization": org,
	})
}

// Update handles PUT /api/organization/:id
func (h *OrganizationHandler) Update(c echo.Context) error {
	actor, err := auth.GetActorFromContext(c)
	if err != nil {
		return err
	}

	var req dto.UpdateOrganizationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	org, err := h.usecase.Update(c.Request().Context(), *actor, c.Param("id"), req)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, MsgOrganizationUpdated, Envelope{
		"organization": org,
	})
}

// Delete handles DELETE /api/organization/:id
func (h *OrganizationHandler) Delete(c echo.Context) error {
	actor, err := auth.GetActorFromContext(c)
	if err != nil {
		return err
	}

	result, err := h.usecase.SoftDelete(c.Request().Context(), *actor, c.Param("id"))
	if err != nil {
		return err
	}

	if result.AlreadyInactive {
		return respond(c, http.StatusOK, MsgOrganizationWasInactive, Envelope{
			"organization": result.Organization,
		})
	}

	return respond(c, http.StatusOK, MsgOrganizationDeactivated, Envelope{
		"organization": result.Organization,
		"performedBy":  result.PerformedBy,
	})
}

// ListForSuperAdmin handles GET /api/organization/superadmin/all
func (h *OrganizationHandler) ListForSuperAdmin(c echo.Context) error {
	actor, err := auth.GetActorFromContext(c)
	if err != nil {
		return err
	}

	var filter repository.OrganizationFilter
	if raw := c.QueryParam("status"); raw != "" {
		status := model.OrganizationStatus(raw)
		if !status.Valid() {
			return apperrors.InvalidArgument(MsgInvalidOrgStatusFilter)
		}
		filter.Status = &status
	}

	result, err := h.usecase.ListForSuperAdmin(c.Request().Context(), *actor, filter)
	if err != nil {
		return err
	}

	if result.Linked == 0 {
		return respond(c, http.StatusOK, MsgNoLinkedOrganizations, Envelope{
			"total":         0,
			"organizations": result.Organizations,
		})
	}

	return respond(c, http.StatusOK, "", Envelope{
		"total":         result.Total,
		"organizations": result.Organizations,
	})
}
