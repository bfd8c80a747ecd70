// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema holds table and column names of the catalog database so
// repositories never spell identifiers by hand.
package schema

import "strings"

// List joins column names for a SELECT or INSERT column list.
func List(columns []string) string {
	return strings.Join(columns, ", ")
}

// Qualified prefixes every column with a table alias ("a.id, a.name").
func Qualified(alias string, columns []string) string {
	qualified := make([]string, len(columns))
	for i, column := range columns {
		qualified[i] = alias + "." + column
	}
	return strings.Join(qualified, ", ")
}
