package domain

import (
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	MaxPage      = 1_000_000
	DefaultLimit = 10
	MaxLimit     = 100
)

type SortField string

const (
	SortByCreatedAt SortField = "createdAt"
	SortByUpdatedAt SortField = "updatedAt"
	SortByName      SortField = "name"
	SortByEmail     SortField = "email"
	SortByIsActive  SortField = "isActive"
)

type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// ListQuery selects one page of accounts. Build one per request and call
// Normalize before handing it to a store.
type ListQuery struct {
	Page      int
	Limit     int
	SortBy    SortField
	SortOrder SortOrder
	Search    string
	IsActive  *bool
}

// Normalize applies the server-side clamps and defaults.
func (q ListQuery) Normalize() ListQuery {
	q.Page = clamp(q.Page, DefaultPage, 1, MaxPage)
	q.Limit = clamp(q.Limit, DefaultLimit, 1, MaxLimit)

	switch q.SortBy {
	case SortByCreatedAt, SortByUpdatedAt, SortByName, SortByEmail, SortByIsActive:
	default:
		q.SortBy = SortByCreatedAt
	}

	switch SortOrder(strings.ToUpper(string(q.SortOrder))) {
	case SortAsc:
		q.SortOrder = SortAsc
	default:
		q.SortOrder = SortDesc
	}

	q.Search = strings.TrimSpace(q.Search)
	return q
}

// Offset is the number of rows to skip for the query's page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// ParseListQuery builds a normalized query from raw string parameters as they
// arrive on the wire. get returns the value and whether the key was present.
func ParseListQuery(get func(key string) (string, bool)) ListQuery {
	var q ListQuery

	if v, ok := get("page"); ok {
		q.Page, _ = strconv.Atoi(strings.TrimSpace(v))
	}
	if v, ok := get("limit"); ok {
		q.Limit, _ = strconv.Atoi(strings.TrimSpace(v))
	}
	if v, ok := get("sortBy"); ok {
		q.SortBy = SortField(strings.TrimSpace(v))
	}
	if v, ok := get("sortOrder"); ok {
		q.SortOrder = SortOrder(strings.TrimSpace(v))
	}
	if v, ok := get("search"); ok {
		q.Search = v
	}
	if v, ok := get("isActive"); ok {
		active := v == "true"
		q.IsActive = &active
	}

	return q.Normalize()
}

// clamp maps zero (unset or unparsable) to def and bounds n to [lo, hi].
func clamp(n, def, lo, hi int) int {
	if n == 0 {
		return def
	}
	return max(lo, min(n, hi))
}
