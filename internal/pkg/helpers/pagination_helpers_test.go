package helpers

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name              string
		page, limit       int
		defaultLimit      int
		wantPage, wantLim int
	}{
		{"valid values kept", 3, 20, 6, 3, 20},
		{"zero page", 0, 20, 6, 1, 20},
		{"negative page", -4, 20, 6, 1, 20},
		{"zero limit uses default", 2, 0, 6, 2, 6},
		{"limit capped", 1, 500, 6, 1, MaxPageSize},
		{"missing default falls back", 1, 0, 0, 1, DefaultPageSize},
		{"huge page capped", math.MaxInt64, 6, 6, MaxPage, 6},
		{"page just above cap", MaxPage + 1, 6, 6, MaxPage, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := NormalizePage(tt.page, tt.limit, tt.defaultLimit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLim, limit)
		})
	}
}

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(3, 6)
	assert.Equal(t, uint64(12), offset)
	assert.Equal(t, uint64(6), limit)

	offset, limit = CalculateOffsetLimit(0, 0)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, uint64(DefaultPageSize), limit)

	offset, limit = CalculateOffsetLimit(math.MaxInt64, MaxPageSize)
	assert.Equal(t, uint64(MaxPage-1)*uint64(MaxPageSize), offset)
	assert.LessOrEqual(t, offset, uint64(math.MaxInt64))
	assert.Equal(t, uint64(MaxPageSize), limit)
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query     string
		wantPage  int
		wantLimit int
	}{
		{"", 1, 6},
		{"page=2&limit=3", 2, 3},
		{"page=abc&limit=xyz", 1, 6},
		{"page=-1&limit=-5", 1, 6},
		{"page=4&limit=1000", 4, MaxPageSize},
		{"page=9223372036854775807&limit=6", MaxPage, 6},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/?"+tt.query, nil)

			page, limit := ParsePaginationParams(c, 6)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestNewPageInfo(t *testing.T) {
	t.Run("middle page", func(t *testing.T) {
		info := NewPageInfo(10, 2, 3)
		assert.Equal(t, int64(10), info.TotalItems)
		assert.Equal(t, 4, info.TotalPages)
		assert.Equal(t, 2, info.CurrentPage)
		assert.Equal(t, 3, info.ItemsPerPage)
		assert.True(t, info.HasNextPage)
		assert.True(t, info.HasPrevPage)
	})

	t.Run("last page", func(t *testing.T) {
		info := NewPageInfo(12, 2, 6)
		assert.Equal(t, 2, info.TotalPages)
		assert.False(t, info.HasNextPage)
		assert.True(t, info.HasPrevPage)
	})

	t.Run("no items", func(t *testing.T) {
		info := NewPageInfo(0, 1, 6)
		assert.Equal(t, 0, info.TotalPages)
		assert.False(t, info.HasNextPage)
		assert.False(t, info.HasPrevPage)
	})
}
