package docstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/custodian/internal/db"
)

// exerciseBackend runs the behaviour every backend must share.
func exerciseBackend(t *testing.T, b Backend) {
	t.Helper()
	ctx := context.Background()

	_, err := b.Read(ctx, "items.json")
	require.ErrorIs(t, err, ErrNotExist)

	require.NoError(t, b.Write(ctx, "items.json", []byte(`{"1":{}}`)))
	got, err := b.Read(ctx, "items.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"1":{}}`, string(got))

	// Overwrite replaces the whole document.
	require.NoError(t, b.Write(ctx, "items.json", []byte(`{}`)))
	got, err = b.Read(ctx, "items.json")
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(got))

	// Documents are independent.
	_, err = b.Read(ctx, "owners.json")
	require.ErrorIs(t, err, ErrNotExist)

	assert.Error(t, b.Write(ctx, "../escape.json", []byte(`{}`)))
	assert.Error(t, b.Write(ctx, "", []byte(`{}`)))
}

func TestFileBackend(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	b, err := NewFile(dir)
	require.NoError(t, err)
	defer b.Close()

	exerciseBackend(t, b)

	// No temp files are left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "items.json", entries[0].Name())
}

func TestMemoryBackend(t *testing.T) {
	b := NewMemory()
	exerciseBackend(t, b)

	// Callers cannot mutate stored bytes.
	ctx := context.Background()
	data := []byte(`{"a":1}`)
	require.NoError(t, b.Write(ctx, "owners.json", data))
	data[0] = 'x'
	got, _ := b.Read(ctx, "owners.json")
	assert.Equal(t, `{"a":1}`, string(got))
}

func TestSQLiteBackend(t *testing.T) {
	b := NewSQLiteFromDB(db.NewTestDB(t))
	exerciseBackend(t, b)
	require.NoError(t, b.Close())
}

func TestSQLiteBackendOpensFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.sqlite3")
	b, err := NewSQLite(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, b.Write(context.Background(), "owners.json", []byte(`{}`)))
	require.NoError(t, b.Close())

	reopened, err := NewSQLite(context.Background(), path)
	require.NoError(t, err)
	defer reopened.Close()
	got, err := reopened.Read(context.Background(), "owners.json")
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(got))
}

func TestOpenSelectsDriver(t *testing.T) {
	ctx := context.Background()

	b, err := Open(ctx, Config{Driver: DriverFile, Dir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, DriverFile, b.Driver())

	b, err = Open(ctx, Config{Driver: DriverMemory})
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, b.Driver())

	b, err = Open(ctx, Config{Driver: DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "x.sqlite3")})
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, b.Driver())
	require.NoError(t, b.Close())

	_, err = Open(ctx, Config{Driver: DriverS3})
	assert.Error(t, err, "s3 without a bucket must fail")

	_, err = Open(ctx, Config{Driver: "floppy"})
	assert.Error(t, err)
}

func TestParseDriver(t *testing.T) {
	d, err := ParseDriver("SQLite")
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, d)

	_, err = ParseDriver("postgres")
	assert.Error(t, err)
}
