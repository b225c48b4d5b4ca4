package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/types"
)

const headerUserID = "X-User-ID"

// IdentityMiddleware propagates the caller identity from the request header
// into the context so audit columns record who made each change. Requests
// without the header run as the system identity.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(headerUserID)
		if userID == "" {
			userID = types.DefaultUserID
		}

		ctx := context.WithValue(c.Request.Context(), types.CtxUserID, userID)
		c.Request = c.Request.WithContext(ctx)
		c.Set("user_id", userID)

		c.Next()
	}
}
