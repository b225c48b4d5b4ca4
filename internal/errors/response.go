package errors

import (
	"net/http"

	"github.com/cockroachdb/errors"
)

// ErrorDetail is the wire representation of a single error.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// code returns the machine stable reason for err.
func code(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "validation_error"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrAlreadyExists):
		return "already_exists"
	case errors.Is(err, ErrInvalidOperation):
		return "invalid_operation"
	case errors.Is(err, ErrPermissionDenied):
		return "permission_denied"
	case errors.Is(err, ErrDatabase):
		return "database_error"
	default:
		return "internal_error"
	}
}

// NewErrorResponse shapes err for the HTTP boundary. The hint takes
// precedence over the raw error message so internal wording never leaks.
func NewErrorResponse(err error) *ErrorResponse {
	msg := Hint(err)
	if msg == "" {
		msg = err.Error()
	}
	return &ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Code:    code(err),
			Message: msg,
			Details: ReportableDetails(err),
		},
	}
}

// HTTPStatusFromErr maps a tagged error to its HTTP status code.
func HTTPStatusFromErr(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyExists), errors.Is(err, ErrInvalidOperation):
		return http.StatusConflict
	case errors.Is(err, ErrPermissionDenied):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
