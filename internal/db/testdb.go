package db

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
)

// NewTestDB returns a migrated database under t.TempDir, closed on cleanup.
func NewTestDB(t testing.TB) *sql.DB {
	t.Helper()

	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "docs.sqlite3"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := EnsureSchema(ctx, db); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return db
}
