// Package sqlite provides the SQLite-backed docset search index.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a connection to a docSet.dsidx database.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the search index
// schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open index database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one
	// connection. This also serializes the assembler's write path.
	conn.SetMaxOpenConns(1)

	// Verify connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to index database: %w", err)
	}

	// Set busy timeout to wait 5 seconds before failing on lock contention.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// The viewer consumes the index as a single file, so journal_mode
	// stays at the default: WAL would leave -wal/-shm siblings inside
	// the bundle.

	db.db = conn

	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create index schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// createSchema creates the searchIndex relation the viewer expects:
// exactly one table and a uniqueness constraint over (name, type,
// path). Anything else would be schema drift for downstream
// consumers.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS searchIndex (
			id INTEGER PRIMARY KEY,
			name TEXT,
			type TEXT,
			path TEXT
		);

		CREATE UNIQUE INDEX IF NOT EXISTS anchor ON searchIndex (name, type, path);
	`

	_, err := db.db.Exec(schema)
	return err
}
