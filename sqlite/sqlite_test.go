package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/docset/sqlite"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory database with the schema applied.
func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates the searchIndex schema on first open", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()

		var count int
		err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM searchIndex").Scan(&count)
		require.NoError(t, err)
		require.Zero(t, count)
	})

	t.Run("creates no tables beyond searchIndex", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()

		var count int
		err := db.QueryRowContext(ctx, `
			SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		`).Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	t.Run("keeps the index a single file", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(t.TempDir() + "/docSet.dsidx")
		require.NoError(t, db.Open())
		defer db.Close()

		ctx := context.Background()
		var journalMode string
		err := db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&journalMode)
		require.NoError(t, err)
		require.NotEqual(t, "wal", journalMode)
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/docSet.dsidx")
		err := db.Open()
		require.Error(t, err)
	})

	t.Run("is idempotent across reopens", func(t *testing.T) {
		t.Parallel()

		path := t.TempDir() + "/docSet.dsidx"

		db := sqlite.NewDB(path)
		require.NoError(t, db.Open())
		require.NoError(t, db.Close())

		db = sqlite.NewDB(path)
		require.NoError(t, db.Open())
		require.NoError(t, db.Close())
	})
}
