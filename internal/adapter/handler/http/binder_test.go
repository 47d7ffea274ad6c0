package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wekeepgrowing/hrms-backend/internal/usecase/dto"
	apperrors "github.com/wekeepgrowing/hrms-backend/pkg/errors"
)

func newBindContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestStrictBinder_DecodesKnownFields(t *testing.T) {
	var req dto.OrganizationLoginRequest
	err := NewStrictBinder().Bind(&req, newBindContext(`{"organization_id":"65f1a2b3c4d5e6f708192a3b","password":"secret"}`))

	require.NoError(t, err)
	assert.Equal(t, "65f1a2b3c4d5e6f708192a3b", req.OrganizationID)
	assert.Equal(t, "secret", req.Password)
}

func TestStrictBinder_EmptyBody(t *testing.T) {
	var req dto.UpdateOrganizationRequest
	require.NoError(t, NewStrictBinder().Bind(&req, newBindContext("")))
	require.NoError(t, NewStrictBinder().Bind(&req, newBindContext("   ")))
	assert.True(t, req.IsEmpty())
}

func TestStrictBinder_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		target  interface{}
		message string
	}{
		{"identifier overwrite", `{"_id":"65f1a2b3c4d5e6f708192a3b"}`, &dto.UpdateOrganizationRequest{}, `unknown field "_id"`},
		{"payroll soft delete flag", `{"isDeleted":true}`, &dto.UpdatePayrollRequest{}, `unknown field "isDeleted"`},
		{"wrong type", `{"name":42}`, &dto.UpdateOrganizationRequest{}, `field "name"`},
		{"malformed", `{"name":`, &dto.UpdateOrganizationRequest{}, MsgInvalidBody},
		{"trailing data", `{"name":"a"} {"name":"b"}`, &dto.UpdateOrganizationRequest{}, "trailing data"},
		{"bad decimal", `{"earnings":{"basic":"ten"}}`, &dto.UpdatePayrollRequest{}, MsgInvalidBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewStrictBinder().Bind(tt.target, newBindContext(tt.body))
			require.Error(t, err)
			assert.True(t, apperrors.HasCode(err, apperrors.ErrInvalidArgument))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestStrictBinder_RejectsNonJSON(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("name=a"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	var body dto.UpdateOrganizationRequest
	err := NewStrictBinder().Bind(&body, e.NewContext(req, httptest.NewRecorder()))

	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrInvalidArgument))
}

func TestRequestValidator(t *testing.T) {
	v := NewRequestValidator()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(dto.CreatePayrollRequest{
			OrganizationID: "65f1a2b3c4d5e6f708192a3b",
			EmployeeID:     "65f1a2b3c4d5e6f708192a3c",
		}))
	})

	t.Run("objectid tag uses json names", func(t *testing.T) {
		err := v.Validate(dto.CreatePayrollRequest{
			OrganizationID: "not-an-id",
			EmployeeID:     "65f1a2b3c4d5e6f708192a3c",
		})
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrInvalidArgument))
		assert.Contains(t, err.Error(), "organization_id (objectid)")
	})

	t.Run("email", func(t *testing.T) {
		err := v.Validate(dto.RegisterSuperAdminRequest{Email: "nope", Password: "secret1"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "email (email)")
	})

	t.Run("empty optional fields pass", func(t *testing.T) {
		assert.NoError(t, v.Validate(dto.RegisterSuperAdminRequest{}))
	})
}
