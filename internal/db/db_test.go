package db

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSchemaIdempotent(t *testing.T) {
	database := NewTestDB(t)

	require.NoError(t, EnsureSchema(context.Background(), database))

	var count int
	err := database.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'documents'`,
	).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestOpenInMemory(t *testing.T) {
	ctx := context.Background()
	database, err := Open(ctx, MemoryPath)
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, EnsureSchema(ctx, database))
	_, err = database.Exec(`INSERT INTO documents (name, body) VALUES ('items', '{}')`)
	require.NoError(t, err)

	var body string
	require.NoError(t, database.QueryRow(`SELECT body FROM documents WHERE name = 'items'`).Scan(&body))
	assert.Equal(t, "{}", body)
}

func TestOpenCreatesDirectoryAndAppliesPragmas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "docs.sqlite3")

	database, err := Open(context.Background(), path)
	require.NoError(t, err)
	defer database.Close()

	var mode string
	require.NoError(t, database.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", strings.ToLower(mode))

	var timeout int
	require.NoError(t, database.QueryRow(`PRAGMA busy_timeout`).Scan(&timeout))
	assert.Equal(t, 5000, timeout)
}

func TestDSN(t *testing.T) {
	assert.Equal(t, MemoryPath, dsn(MemoryPath))

	got := dsn("data/docs.sqlite3")
	assert.True(t, strings.HasPrefix(got, "file:data/docs.sqlite3?"))
	assert.Contains(t, got, "_pragma=busy_timeout%285000%29")
}
