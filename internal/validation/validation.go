// Package validation runs struct-tag validation on request payloads and turns
// validator failures into field-level messages clients can act on.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"hrms-lite-backend/internal/errs"
	"hrms-lite-backend/internal/model"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields under their json names, not the Go struct names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Treat DateOnly like its underlying time.Time so `required` checks the
	// value instead of diving into the wrapper struct
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(model.DateOnly); ok {
			return d.Time
		}
		return nil
	}, model.DateOnly{})

	return v
}

// Struct validates payload against its `validate` tags. It returns a 400
// HTTPError carrying one entry per failed field, or nil when the payload is
// clean.
func Struct(payload any) *errs.HTTPError {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errs.NewValidation(nil)
	}

	fields := make([]errs.FieldError, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, errs.FieldError{
			Field: fieldErr.Field(),
			Error: messageFor(fieldErr),
		})
	}
	return errs.NewValidation(fields)
}

func messageFor(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "min":
		if fieldErr.Type().Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fieldErr.Param())
		}
		return fmt.Sprintf("must be at least %s", fieldErr.Param())
	case "max":
		if fieldErr.Type().Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fieldErr.Param())
		}
		return fmt.Sprintf("must not exceed %s", fieldErr.Param())
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fieldErr.Param())
	default:
		return fmt.Sprintf("failed %s validation", fieldErr.Tag())
	}
}
