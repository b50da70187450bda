package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/networknexus/nexushub/internal/app/models/dto"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1 // 1-based

	// MaxPage keeps (page-1)*MaxPageSize inside a Postgres bigint OFFSET
	MaxPage = math.MaxInt32
)

// NormalizePage clamps a requested page/limit pair to usable values.
// Non-positive pages become 1 and pages above MaxPage become MaxPage. Non-positive limits become
// defaultLimit and limits above MaxPageSize are capped.
func NormalizePage(page, limit, defaultLimit int) (int, int) {
	if defaultLimit <= 0 {
		defaultLimit = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}

// CalculateOffsetLimit calculates the offset and limit for SQL queries based on 1-based page index.
func CalculateOffsetLimit(page, limit int) (offset uint64, size uint64) {
	page, limit = NormalizePage(page, limit, DefaultPageSize)
	return uint64(page-1) * uint64(limit), uint64(limit)
}

// ParsePaginationParams extracts page and limit from the query string.
// Malformed values fall back to page 1 and defaultLimit.
func ParsePaginationParams(c *gin.Context, defaultLimit int) (page, limit int) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = DefaultPage
	}

	limit, err = strconv.Atoi(c.Query("limit"))
	if err != nil {
		limit = defaultLimit
	}

	return NormalizePage(page, limit, defaultLimit)
}

// TotalPages returns ceil(total/size); zero items means zero pages
func TotalPages(total int64, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}

// NewPageInfo builds the pagination block shared by the listing endpoints.
// page and size must already be normalized; they are echoed back unchanged.
func NewPageInfo(totalItems int64, page, size int) dto.PageInfo {
	totalPages := TotalPages(totalItems, size)

	return dto.PageInfo{
		TotalItems:   totalItems,
		TotalPages:   totalPages,
		CurrentPage:  page,
		ItemsPerPage: size,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1,
	}
}
