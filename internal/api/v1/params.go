package v1

import (
	"strconv"

	"github.com/gin-gonic/gin"

	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
)

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c *gin.Context, name string) (int64, error) {
	return parseQueryID(c.Param(name), name)
}

// parseQueryID parses a positive integer identifier.
func parseQueryID(raw, name string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ierr.NewErrorf("invalid %s", name).
			WithHintf("%s must be a positive integer", name).
			WithReportableDetails(map[string]interface{}{name: raw}).
			Mark(ierr.ErrValidation)
	}
	return id, nil
}
