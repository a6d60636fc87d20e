package db

import (
	"context"
	"database/sql"
	"fmt"
)

// documentsTable holds one row per named document.
const documentsTable = `
CREATE TABLE IF NOT EXISTS documents (
    name       TEXT PRIMARY KEY,
    body       BLOB NOT NULL,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// EnsureSchema creates the documents table if it is missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, documentsTable); err != nil {
		return fmt.Errorf("creating documents table: %w", err)
	}
	return nil
}
