package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/enrolldesk/enrolldesk/internal/app/models/dto"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1 // Pages are 1-based
)

// CalculateOffsetLimit converts a 1-based page index into an SQL offset and
// a clamped limit.
func CalculateOffsetLimit(page, size int) (offset uint64, limit int) {
	if size <= 0 || size > MaxPageSize {
		limit = DefaultPageSize
	} else {
		limit = size
	}

	if page < 1 {
		page = DefaultPage
	}

	offset = uint64((page - 1) * limit)
	return offset, limit
}

// NewPaginationInfo creates the standard pagination metadata for a listing.
// page is the requested 1-based page number.
func NewPaginationInfo(total int64, page, size int) dto.PaginationInfo {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(size)))
	} else if page == 1 {
		// An empty set still renders as a single empty page
		totalPages = 1
	}

	currentPage := page
	if totalPages > 0 && currentPage > totalPages {
		currentPage = totalPages
	}

	return dto.PaginationInfo{
		Total:      total,
		TotalPages: totalPages,
		Page:       currentPage,
		PerPage:    size,
	}
}

// ParseListQuery extracts pagination, sorting and search parameters from the
// request query string, applying defaults and bounds.
func ParseListQuery(c *gin.Context) dto.ListQuery {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	if err != nil || perPage <= 0 || perPage > MaxPageSize {
		perPage = DefaultPageSize
	}

	return dto.ListQuery{
		Page:          page,
		PerPage:       perPage,
		SortColumn:    c.Query("sort_column"),
		SortDirection: c.DefaultQuery("sort_direction", "asc"),
		Query:         c.Query("query"),
	}
}
