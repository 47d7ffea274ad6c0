package http

import (
	"github.com/labstack/echo/v4"
	apperrors "github.com/wekeepgrowing/hrms-backend/pkg/errors"
)

// Envelope is the success response body. Resource payloads are merged in
// under their own keys.
type Envelope map[string]interface{}

// respond writes {status, statusCode, message?} plus the given payload keys.
func respond(c echo.Context, status int, message string, payload Envelope) error {
	body := Envelope{
		"status":     apperrors.StatusLabel(status),
		"statusCode": status,
	}
	if message != "" {
		body["message"] = message
	}
	for k, v := range payload {
		body[k] = v
	}
	return c.JSON(status, body)
}

// bindAndValidate decodes the body into req and runs struct validation.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}
