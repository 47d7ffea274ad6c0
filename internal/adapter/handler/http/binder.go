package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	apperrors "github.com/wekeepgrowing/hrms-backend/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Validation messages
const (
	MsgInvalidBody      = "Invalid request body"
	MsgValidationFailed = "Validation failed"
)

// StrictBinder decodes JSON request bodies and rejects unknown fields.
// Path and query parameters are read explicitly by the handlers.
type StrictBinder struct{}

// NewStrictBinder creates a binder for echo.Echo.Binder
func NewStrictBinder() *StrictBinder {
	return &StrictBinder{}
}

// Bind implements echo.Binder
func (b *StrictBinder) Bind(i interface{}, c echo.Context) error {
	req := c.Request()
	if req.Body == nil || req.ContentLength == 0 {
		return nil
	}

	ctype := req.Header.Get(echo.HeaderContentType)
	if ctype != "" && !strings.HasPrefix(ctype, echo.MIMEApplicationJSON) {
		return apperrors.InvalidArgument(fmt.Sprintf("%s: unsupported content type %q", MsgInvalidBody, ctype))
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return apperrors.InvalidArgument(MsgInvalidBody)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(i); err != nil {
		return decodeError(err)
	}
	if dec.More() {
		return apperrors.InvalidArgument(MsgInvalidBody + ": trailing data")
	}
	return nil
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.Is(err, io.EOF):
		return nil
	case errors.As(err, &typeErr):
		return apperrors.InvalidArgument(fmt.Sprintf("%s: field %q must be %s", MsgInvalidBody, typeErr.Field, typeErr.Type.String()))
	case errors.As(err, &syntaxErr):
		return apperrors.InvalidArgument(fmt.Sprintf("%s: malformed JSON at offset %d", MsgInvalidBody, syntaxErr.Offset))
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.TrimPrefix(err.Error(), "json: unknown field ")
		return apperrors.InvalidArgument(fmt.Sprintf("%s: unknown field %s", MsgInvalidBody, field))
	default:
		// decimal and time values report their own parse errors
		return apperrors.InvalidArgument(fmt.Sprintf("%s: %s", MsgInvalidBody, err.Error()))
	}
}

// RequestValidator adapts validator/v10 to echo.Validator
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator that reports JSON field names
// and understands the objectid tag.
func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return primitive.IsValidObjectID(fl.Field().String())
	})
	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator
func (v *RequestValidator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.InvalidArgument(MsgValidationFailed)
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return apperrors.InvalidArgument(fmt.Sprintf("%s: %s", MsgValidationFailed, strings.Join(fields, ", ")))
}
