// Package db provides SQLite-backed storage for derived color results.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS color_cache (
	id TEXT PRIMARY KEY,
	remote_url TEXT NOT NULL,
	branch TEXT NOT NULL,
	primary_color TEXT NOT NULL,
	branch_color TEXT NOT NULL,
	created_at TEXT NOT NULL,
	UNIQUE(remote_url, branch)
);
CREATE INDEX IF NOT EXISTS idx_color_cache_remote ON color_cache(remote_url);
`

// DB wraps the sqlite connection used by the repositories.
type DB struct {
	*sql.DB
	logger zerolog.Logger
}

// Open opens the cache database at path, creating it (and its directory)
// when missing, and applies the schema.
func Open(path string, logger zerolog.Logger) (*DB, error) {
	if path == "" {
		return nil, fmt.Errorf("database path is required")
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	if _, err := conn.ExecContext(context.Background(), schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &DB{DB: conn, logger: logger}, nil
}
