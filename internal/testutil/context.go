package testutil

import (
	"context"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/types"
)

// SetupContext returns a context carrying a test identity, mirroring what
// the auth middleware injects in production.
func SetupContext() context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, types.CtxUserID, "user_test")
	ctx = context.WithValue(ctx, types.CtxRequestID, "req_test")
	return ctx
}
