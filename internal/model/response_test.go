package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	cases := []struct {
		name       string
		pageSize   int
		total      int64
		totalPages int
	}{
		{"exact multiple", 10, 30, 3},
		{"partial last page", 10, 31, 4},
		{"fewer than one page", 10, 3, 1},
		{"empty collection still one page", 10, 0, 1},
		{"single item", 1, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(1, tc.pageSize, tc.total)
			assert.Equal(t, tc.totalPages, p.TotalPages)
			assert.Equal(t, tc.total, p.Total)
		})
	}
}

func TestNewSuccessResponse(t *testing.T) {
	resp := NewSuccessResponse("created", map[string]string{"id": "1"})
	assert.True(t, resp.Success)
	assert.Equal(t, "created", resp.Message)
	assert.Nil(t, resp.Error)
}

func TestNewErrorResponse(t *testing.T) {
	details := map[string][]string{"email": {"email is required"}}
	resp := NewErrorResponse("VALIDATION_ERROR", "validation failed", details)
	assert.False(t, resp.Success)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, details, resp.Error.Details)
}

func TestNewPaginatedResponse(t *testing.T) {
	resp := NewPaginatedResponse([]int{1, 2, 3}, 2, 10, 23)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Pagination.Page)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
}
