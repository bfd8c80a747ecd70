// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sdikyarts/musicopedia/pkg/pagination"
)

/*
TestFromRequest checks clamping of page and limit.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  pagination.Params
	}{
		{"defaults", "", pagination.Params{Page: 1, Limit: 20}},
		{"explicit", "?page=3&limit=5", pagination.Params{Page: 3, Limit: 5}},
		{"negative_page", "?page=-2", pagination.Params{Page: 1, Limit: 20}},
		{"limit_over_max", "?limit=1000", pagination.Params{Page: 1, Limit: 100}},
		{"zero_limit", "?limit=0", pagination.Params{Page: 1, Limit: 20}},
		{"garbage", "?page=x&limit=y", pagination.Params{Page: 1, Limit: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/artists"+tt.query, nil)
			assert.Equal(t, tt.want, pagination.FromRequest(request))
		})
	}
}

/*
TestWindow slices in-memory results by limit and offset.
*/
func TestWindow(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name   string
		limit  int
		offset int
		want   []int
	}{
		{"second_page", 2, 2, []int{3, 4}},
		{"tail", 2, 4, []int{5}},
		{"unaligned_offset", 2, 1, []int{2, 3}},
		{"past_end", 2, 9, []int{}},
		{"no_limit", 0, 3, []int{4, 5}},
		{"negative_offset", 2, -1, []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, total := pagination.Window(items, tt.limit, tt.offset)
			assert.Equal(t, tt.want, window)
			assert.Equal(t, 5, total)
		})
	}

}

/*
TestParams_Meta derives the offset and page count of a listing.
*/
func TestParams_Meta(t *testing.T) {
	params := pagination.Params{Page: 3, Limit: 2}

	assert.Equal(t, 4, params.Offset())
	assert.Equal(t, pagination.Meta{Page: 3, Limit: 2, Total: 5, TotalPages: 3}, params.Meta(5))
	assert.Zero(t, pagination.Params{Page: 1}.Meta(5).TotalPages)
}
