// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pagination pages catalog listings.

Handlers read ?page=&limit= with [FromRequest], pass [Params.Limit] and
[Params.Offset] to a repository and wrap the result with [Params.Meta].
Memory repositories cut their sorted matches with [Window].
*/
package pagination

import (
	"net/http"
	"strconv"
)

// Page sizes. Pages are 1-indexed.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params is the requested page.
type Params struct {
	Page  int
	Limit int
}

// Offset is the number of rows before the page.
func (params Params) Offset() int {
	return (params.Page - 1) * params.Limit
}

// Meta describes the page returned next to a listing.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Meta builds the response metadata for a listing of total rows.
func (params Params) Meta(total int) Meta {
	pages := 0
	if params.Limit > 0 {
		pages = (total + params.Limit - 1) / params.Limit
	}
	return Meta{Page: params.Page, Limit: params.Limit, Total: total, TotalPages: pages}
}

// FromRequest reads page and limit from the query string. Missing or
// unparsable values fall back to page 1 and [DefaultLimit]; a limit above
// [MaxLimit] is capped.
func FromRequest(request *http.Request) Params {
	query := request.URL.Query()

	page := atoiOr(query.Get("page"), 1)
	if page < 1 {
		page = 1
	}

	limit := atoiOr(query.Get("limit"), DefaultLimit)
	switch {
	case limit < 1:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}

	return Params{Page: page, Limit: limit}
}

func atoiOr(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// Window returns items[offset:offset+limit] clamped to the slice bounds,
// together with the total item count. A non-positive limit keeps every item
// from offset on.
func Window[T any](items []T, limit, offset int) ([]T, int) {
	total := len(items)
	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return []T{}, total
	}

	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}
	return items[offset:end], total
}
