package middleware

import (
	"github.com/gin-gonic/gin"

	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/logger"
)

// ErrorHandler converts errors attached via c.Error into the uniform JSON
// error body. Handlers never write error responses themselves.
func ErrorHandler(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := ierr.HTTPStatusFromErr(err)
		if status >= 500 {
			log.Errorw("request failed",
				"path", c.Request.URL.Path,
				"error", err,
			)
		}

		c.AbortWithStatusJSON(status, ierr.NewErrorResponse(err))
	}
}
