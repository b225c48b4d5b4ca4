package types

import "context"

type ContextKey string

const (
	CtxUserID    ContextKey = "ctx_user_id"
	CtxRequestID ContextKey = "ctx_request_id"

	// DefaultUserID is used when no authenticated identity is present,
	// e.g. seed scripts and tests.
	DefaultUserID = "system"
)

// GetUserID returns the authenticated user id from ctx, or DefaultUserID.
func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(CtxUserID).(string); ok && id != "" {
		return id
	}
	return DefaultUserID
}

// GetRequestID returns the request id from ctx, if any.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(CtxRequestID).(string); ok {
		return id
	}
	return ""
}
