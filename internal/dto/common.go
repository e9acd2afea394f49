// Package dto declares the request shapes for every operation. Binding tags
// drive validation; the middleware aggregates all failures into a single
// field -> messages map. Create/update bodies accept the string encodings a
// multipart admin form submits (newline-joined lists, "true"/"1" booleans,
// JSON-encoded maps); the services decode them with pkg/util.
package dto

import (
	"github.com/forgestack/atlas-backend/internal/config"
)

// ListQuery is the shared pagination/filter query for list endpoints.
// Unknown sort fields are replaced by the default rather than rejected.
type ListQuery struct {
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
	Sort     string `form:"sort"`
	Order    string `form:"order" binding:"omitempty,oneof=asc desc"`
	Search   string `form:"search"`
	Category string `form:"category"`
	Status   string `form:"status"`
	Role     string `form:"role"`
	Type     string `form:"type"`
	Featured string `form:"featured"`
}

// Normalize applies defaults and clamps values to legal ranges. allowedSort
// whitelists sortable fields for the resource.
func (q *ListQuery) Normalize(allowedSort ...string) {
	if q.Page < 1 {
		q.Page = config.DefaultPage
	}
	if q.PageSize < 1 {
		q.PageSize = config.DefaultPageSize
	}
	if q.PageSize > config.MaxPageSize {
		q.PageSize = config.MaxPageSize
	}
	if q.Order != "asc" {
		q.Order = "desc"
	}
	if !contains(allowedSort, q.Sort) {
		q.Sort = "createdAt"
	}
}

// SortDirection returns the mongo sort direction for the normalized order.
func (q *ListQuery) SortDirection() int {
	if q.Order == "asc" {
		return 1
	}
	return -1
}

// FeaturedQuery is the query for /featured endpoints.
type FeaturedQuery struct {
	Limit int `form:"limit"`
}

func (q *FeaturedQuery) Normalize() {
	if q.Limit < 1 {
		q.Limit = 6
	}
	if q.Limit > config.MaxPageSize {
		q.Limit = config.MaxPageSize
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
