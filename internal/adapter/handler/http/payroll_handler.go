package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/repository"
	"github.com/wekeepgrowing/hrms-backend/internal/middleware/auth"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase/dto"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/hrms-backend/pkg/errors"
	"go.uber.org/zap"
)

// Payroll response messages
const (
	MsgPayrollCreated        = "Payroll created successfully"
	MsgPayrollUpdated        = "Payroll updated successfully"
	MsgPayrollDeleted        = "Payroll deleted successfully"
	MsgPayrollAlreadyDeleted = "Payroll is already deleted"
	MsgInvalidIncludeDeleted = "include_deleted must be a boolean"
)

// PayrollHandler handles payroll requests
type PayrollHandler struct {
	logger  *zap.Logger
	usecase interfaces.PayrollUseCase
}

// NewPayrollHandler creates a new payroll handler instance
func NewPayrollHandler(logger *zap.Logger, usecase interfaces.PayrollUseCase) *PayrollHandler {
	return &PayrollHandler{
		logger:  logger,
		usecase: usecase,
	}
}

// Create handles POST /api/payroll/create
func (h *PayrollHandler) Create(c echo.Context) error {
	actor, err := auth.GetActorFromContext(c)
	if err != nil {
		return err
	}

	var req dto.CreatePayrollRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	payroll, err := h.usecase.Create(c.Request().Context(), *actor, req)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, MsgPayrollCreated, Envelope{
		"payroll": payroll,
	})
}

// Get handles GET /api/payroll/:payrollId
func (h *PayrollHandler) Get(c echo.Context) error {
	actor, err := auth.GetActorFromContext(c)
	if err != nil {
		return err
	}

	payroll, err := h.usecase.Get(c.Request().Context(), *actor, c.Param("payrollId"))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "", Envelope{
		"payroll": payroll,
	})
}

// ListByOrganization handles GET /api/payroll/organization/getall/:orgId
func (h *PayrollHandler) ListByOrganization(c echo.Context) error {
	actor, err := auth.GetActorFromContext(c)
	if err != nil {
		return err
	}

	filter, err := payrollFilterFromQuery(c)
	if err != nil {
		return err
	}

	result, err := h.usecase.ListByOrganization(c.Request().Context(), *actor, c.Param("orgId"), filter)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "", Envelope{
		"total":    result.Total,
		"payrolls": result.Payrolls,
	})
}

// Update handles PUT /api/payroll/:payrollId
func (h *PayrollHandler) Update(c echo.Context) error {
	actor, err := auth.GetActorFromContext(c)
	if err != nil {
		return err
	}

	var req dto.UpdatePayrollRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	payroll, err := h.usecase.Update(c.Request().Context(), *actor, c.Param("payrollId"), req)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, MsgPayrollUpdated, Envelope{
		"payroll": payroll,
	})
}

// Delete handles DELETE /api/payroll/:payrollId
func (h *PayrollHandler) Delete(c echo.Context) error {
	actor, err := auth.GetActorFromContext(c)
	if err != nil {
		return err
	}

	result, err := h.usecase.Delete(c.Request().Context(), *actor, c.Param("payrollId"))
	if err != nil {
		return err
	}

	message := MsgPayrollDeleted
	if result.AlreadyDeleted {
		message = MsgPayrollAlreadyDeleted
	}

	return respond(c, http.StatusOK, message, Envelope{
		"payroll": result.Payroll,
	})
}

func payrollFilterFromQuery(c echo.Context) (repository.PayrollFilter, error) {
	var filter repository.PayrollFilter

	if raw := c.QueryParam("include_deleted"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, apperrors.InvalidArgument(MsgInvalidIncludeDeleted)
		}
		filter.IncludeDeleted = include
	}

	// status validity is checked by the use case
	if raw := c.QueryParam("status"); raw != "" {
		status := model.PayrollStatus(raw)
		filter.Status = &status
	}

	return filter, nil
}
