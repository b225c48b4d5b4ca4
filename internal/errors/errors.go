package errors

import (
	"github.com/cockroachdb/errors"
)

// Sentinel marks. Errors raised by the application are tagged with exactly
// one of these via Mark so callers can classify them with errors.Is without
// string matching.
var (
	ErrValidation       = errors.New("validation_error")
	ErrNotFound         = errors.New("not_found")
	ErrAlreadyExists    = errors.New("already_exists")
	ErrInvalidOperation = errors.New("invalid_operation")
	ErrPermissionDenied = errors.New("permission_denied")
	ErrDatabase         = errors.New("database_error")
	ErrInternal         = errors.New("internal_error")
)

// InternalError is the builder used across the codebase:
//
//	ierr.NewError("tariff has no bands").
//		WithHint("Configure at least one consumption band").
//		WithReportableDetails(map[string]interface{}{"tarifa_id": id}).
//		Mark(ierr.ErrInvalidOperation)
type InternalError struct {
	cause   error
	hint    string
	details map[string]interface{}
}

// NewError starts a builder from a fresh error message.
func NewError(msg string) *InternalError {
	return &InternalError{cause: errors.New(msg)}
}

// NewErrorf starts a builder from a formatted error message.
func NewErrorf(format string, args ...interface{}) *InternalError {
	return &InternalError{cause: errors.Newf(format, args...)}
}

// WithError starts a builder wrapping an existing error.
func WithError(err error) *InternalError {
	return &InternalError{cause: err}
}

func (e *InternalError) Error() string {
	if e.cause == nil {
		return ""
	}
	return e.cause.Error()
}

func (e *InternalError) Unwrap() error {
	return e.cause
}

// WithHint attaches a human readable, user facing message.
func (e *InternalError) WithHint(hint string) *InternalError {
	e.hint = hint
	return e
}

// WithHintf attaches a formatted user facing message.
func (e *InternalError) WithHintf(format string, args ...interface{}) *InternalError {
	e.hint = errors.Newf(format, args...).Error()
	return e
}

// WithReportableDetails attaches structured details that are safe to return
// to the caller (ids, attempted amounts, computed balances).
func (e *InternalError) WithReportableDetails(details map[string]interface{}) *InternalError {
	e.details = details
	return e
}

// Mark finalizes the builder, tagging it with the given sentinel.
func (e *InternalError) Mark(mark error) error {
	return errors.Mark(e, mark)
}

// Hint returns the user facing message attached to err, if any.
func Hint(err error) string {
	var ie *InternalError
	if errors.As(err, &ie) {
		return ie.hint
	}
	return ""
}

// ReportableDetails returns the structured details attached to err, if any.
func ReportableDetails(err error) map[string]interface{} {
	var ie *InternalError
	if errors.As(err, &ie) {
		return ie.details
	}
	return nil
}

// Is reports whether err is tagged with mark. Thin re-export so call sites
// only import this package.
func Is(err, mark error) bool {
	return errors.Is(err, mark)
}

func IsNotFound(err error) bool         { return errors.Is(err, ErrNotFound) }
func IsValidation(err error) bool       { return errors.Is(err, ErrValidation) }
func IsAlreadyExists(err error) bool    { return errors.Is(err, ErrAlreadyExists) }
func IsInvalidOperation(err error) bool { return errors.Is(err, ErrInvalidOperation) }
func IsDatabase(err error) bool         { return errors.Is(err, ErrDatabase) }
