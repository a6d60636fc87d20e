package docstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/custodian/internal/db"
)

// SQLiteBackend stores documents as rows of the documents table.
type SQLiteBackend struct {
	db    *sql.DB
	owned bool
}

// NewSQLite opens (creating if needed) the database at path.
func NewSQLite(ctx context.Context, path string) (*SQLiteBackend, error) {
	if path == "" {
		path = "custodian.sqlite3"
	}
	database, err := db.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := db.EnsureSchema(ctx, database); err != nil {
		database.Close()
		return nil, err
	}
	return &SQLiteBackend{db: database, owned: true}, nil
}

// NewSQLiteFromDB wraps an already opened database. The caller keeps
// ownership and must close it.
func NewSQLiteFromDB(database *sql.DB) *SQLiteBackend {
	return &SQLiteBackend{db: database}
}

func (b *SQLiteBackend) Driver() Driver { return DriverSQLite }

func (b *SQLiteBackend) Read(ctx context.Context, name string) ([]byte, error) {
	var body []byte
	err := b.db.QueryRowContext(ctx,
		`SELECT body FROM documents WHERE name = ?`, name,
	).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("reading document %s: %w", name, err)
	}
	return body, nil
}

func (b *SQLiteBackend) Write(ctx context.Context, name string, data []byte) error {
	if err := validateName(name); err != nil {
		return err
	}
	_, err := b.db.ExecContext(ctx,
		`INSERT INTO documents (name, body) VALUES (?, ?)
		 ON CONFLICT (name) DO UPDATE SET body = excluded.body, updated_at = CURRENT_TIMESTAMP`,
		name, data,
	)
	if err != nil {
		return fmt.Errorf("writing document %s: %w", name, err)
	}
	return nil
}

func (b *SQLiteBackend) Close() error {
	if !b.owned {
		return nil
	}
	return b.db.Close()
}
