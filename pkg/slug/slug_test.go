// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sdikyarts/musicopedia/pkg/slug"
)

/*
TestFrom covers ASCII slug generation for performer names.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Beyoncé", "beyonce"},
		{"Girls' Generation", "girls-generation"},
		{"  Sigur Rós  ", "sigur-ros"},
		{"NCT 127", "nct-127"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}

/*
TestContains verifies accent and case insensitive matching, including non-Latin names.
*/
func TestContains(t *testing.T) {
	assert.True(t, slug.Contains("Beyoncé", "beyonce"))
	assert.True(t, slug.Contains("Sigur Rós", "ROS"))
	assert.True(t, slug.Contains("아이유", "아이"))
	assert.True(t, slug.Contains("Anything", ""))
	assert.False(t, slug.Contains("Blackpink", "twice"))
}

/*
TestPattern folds the query and escapes LIKE wildcards so they match literally.
*/
func TestPattern(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Beyoncé", "%beyonce%"},
		{"percent", "100%", `%100\%%`},
		{"underscore", "mr_big", `%mr\_big%`},
		{"backslash", `a\b`, `%a\\b%`},
		{"empty", "", "%%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.Pattern(tt.input))
		})
	}
}
