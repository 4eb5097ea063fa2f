package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"gearshop/internal/shared/errors"
)

// ParseIDParam parses and validates a numeric ID from a URL path parameter.
// paramName is the gin route parameter name (e.g. "id", "mechanic_id").
// entityName is used in error messages (e.g. "ticket", "mechanic").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError(
			fmt.Sprintf("invalid %s ID: must be a positive integer", entityName),
		)
	}

	return uint(id), nil
}
