// Package testutil provides helpers shared by integration-style tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/fretlog/fretlog/internal/config"
	"github.com/fretlog/fretlog/internal/database"
)

// OpenTestDB opens a migrated SQLite database in a per-test temp directory.
// The single-connection pool keeps statements serialized the way the
// production single-writer profile does.
func OpenTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{
		Driver:       database.DriverSQLite,
		Path:         filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	require.NoError(t, database.Migrate(context.Background(), db))
	return db
}
