// Package errs defines the typed errors handlers return to clients.
package errs

import "net/http"

// FieldError points a validation failure at a single request field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is serialized as-is into the error response body.
type HTTPError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Status  int          `json:"status"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

func NewBadRequest(message string) *HTTPError {
	return &HTTPError{
		Code:    "BAD_REQUEST",
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

func NewNotFound(message string) *HTTPError {
	return &HTTPError{
		Code:    "NOT_FOUND",
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewDuplicateKey reports a uniqueness violation, whether caught by a
// precondition check or raised by the database under a race.
func NewDuplicateKey(message string) *HTTPError {
	return &HTTPError{
		Code:    "DUPLICATE_KEY",
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

func NewValidation(fields []FieldError) *HTTPError {
	return &HTTPError{
		Code:    "VALIDATION_ERROR",
		Message: "Validation failed",
		Status:  http.StatusBadRequest,
		Errors:  fields,
	}
}

// NewInternal carries only the generic status text; internal details belong
// in the logs, not the response.
func NewInternal() *HTTPError {
	return &HTTPError{
		Code:    "INTERNAL_SERVER_ERROR",
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}
