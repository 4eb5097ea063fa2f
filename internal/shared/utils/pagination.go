package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"gearshop/internal/shared/constants"
)

// Pagination holds parsed pagination parameters.
type Pagination struct {
	Page     int
	PageSize int
}

// ParseOptionalPagination parses `page` and `per_page` query parameters.
// Both must be present and valid positive integers for pagination to be
// requested; otherwise the caller should return the full unpaginated set.
func ParseOptionalPagination(c *gin.Context) (Pagination, bool) {
	page, okPage := parsePositiveInt(c.Query("page"))
	perPage, okPerPage := parsePositiveInt(c.Query("per_page"))
	if !okPage || !okPerPage {
		return Pagination{}, false
	}
	if perPage > constants.MaxPageSize {
		perPage = constants.MaxPageSize
	}
	return Pagination{Page: page, PageSize: perPage}, true
}

func parsePositiveInt(val string) (int, bool) {
	if val == "" {
		return 0, false
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// TotalPages calculates total pages for a given total count.
func TotalPages(total int64, pageSize int) int {
	if total == 0 || pageSize == 0 {
		return 1
	}
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pages == 0 {
		return 1
	}
	return pages
}
