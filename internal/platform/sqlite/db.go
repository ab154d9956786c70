package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 driver
)

// schema is executed on every Open. AUTOINCREMENT makes row IDs strictly
// increasing and never reused, even after deletes.
const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	title       TEXT NOT NULL,
	description TEXT,
	status      TEXT NOT NULL DEFAULT 'pending'
)`

// Open opens the SQLite database at the given data source name, creates the
// task schema, and returns the connection pool. The pool is restricted to a
// single connection: an in-memory database lives inside its connection, and
// a single connection also serializes writes in arrival order, which is the
// concurrency model the stores rely on.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to sqlite database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create task schema: %w", err)
	}

	return db, nil
}
