// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides query-parameter conversions for list filters.

Unlike plain [strconv] calls, every helper treats an empty string as "filter
not supplied" and returns nil, so handlers can tell an absent filter from a
false or zero one. Malformed input is reported as an error; handlers turn it
into a VALIDATION_ERROR.
*/
package convert

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sdikyarts/musicopedia/pkg/date"
)

// ToBoolPtr parses a boolean string ("true", "1", "false", "0").
// It returns nil on an empty string.
func ToBoolPtr(s string) (*bool, error) {

	// An empty string means the filter was not supplied
	if s == "" {
		return nil, nil
	}

	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil, fmt.Errorf("convert: %q is not a boolean", s)
	}
	return &v, nil
}

// ToDatePtr parses a "YYYY-MM-DD" string into a UTC midnight time.
// It returns nil on an empty string.
func ToDatePtr(s string) (*time.Time, error) {

	// An empty string means the filter was not supplied
	if s == "" {
		return nil, nil
	}

	parsed, err := date.Parse(s)
	if err != nil {
		return nil, err
	}
	return &parsed.Time, nil
}
