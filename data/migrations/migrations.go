// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migrations embeds the catalog schema migrations into the binary.
package migrations

import "embed"

// FS holds every numbered up/down migration of the catalog schema.
//
//go:embed *.sql
var FS embed.FS
