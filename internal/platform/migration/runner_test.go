// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration_test

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdikyarts/musicopedia/data/migrations"
	"github.com/sdikyarts/musicopedia/internal/platform/migration"
)

/*
TestToMigrateURL rewrites only the postgres schemes.
*/
func TestToMigrateURL(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{"postgres://u:p@db:5432/catalog", "pgx5://u:p@db:5432/catalog"},
		{"postgresql://u:p@db/catalog?sslmode=disable", "pgx5://u:p@db/catalog?sslmode=disable"},
		{"pgx5://db/catalog", "pgx5://db/catalog"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, migration.ToMigrateURL(tt.dsn))
	}
}

/*
TestEmbeddedMigrations pairs every up file with a down file.
*/
func TestEmbeddedMigrations(t *testing.T) {
	ups, err := fs.Glob(migrations.FS, "*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(migrations.FS, "*.down.sql")
	require.NoError(t, err)

	require.NotEmpty(t, ups)
	assert.Len(t, downs, len(ups))
}
