package database

import (
	"context"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jmoiron/sqlx"

	"github.com/fretlog/fretlog/schemas"
)

// Migrate applies the embedded schema migrations for the database's dialect,
// in lexical file order. Statements are idempotent (CREATE ... IF NOT EXISTS)
// so re-running is safe.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	dir := "migrations/" + db.DriverName()

	entries, err := fs.ReadDir(schemas.Migrations, dir)
	if err != nil {
		return fmt.Errorf("read migrations for driver %q: %w", db.DriverName(), err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		contents, err := fs.ReadFile(schemas.Migrations, dir+"/"+name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(contents)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}
	return nil
}
