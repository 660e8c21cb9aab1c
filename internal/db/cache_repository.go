package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Color cache errors.
var (
	ErrCacheEntryNotFound = errors.New("cache entry not found")
	ErrInvalidCacheEntry  = errors.New("invalid cache entry")
)

// ColorCacheEntry is one memoized derivation of repository/branch colors.
type ColorCacheEntry struct {
	ID           string    `json:"id"`
	RemoteURL    string    `json:"remote_url"`
	Branch       string    `json:"branch"`
	PrimaryColor string    `json:"primary_color"`
	BranchColor  string    `json:"branch_color"`
	CreatedAt    time.Time `json:"created_at"`
}

// ColorCacheRepository handles color cache persistence.
type ColorCacheRepository struct {
	db *DB
}

// NewColorCacheRepository creates a new ColorCacheRepository.
func NewColorCacheRepository(db *DB) *ColorCacheRepository {
	return &ColorCacheRepository{db: db}
}

// Put inserts or replaces the cached colors for a remote/branch pair.
func (r *ColorCacheRepository) Put(ctx context.Context, entry *ColorCacheEntry) error {
	if entry == nil || entry.RemoteURL == "" {
		return ErrInvalidCacheEntry
	}

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO color_cache (
			id, remote_url, branch, primary_color, branch_color, created_at
		) VALUES (?, ?, ?, ?, ?, ?)
	`,
		entry.ID,
		entry.RemoteURL,
		entry.Branch,
		entry.PrimaryColor,
		entry.BranchColor,
		entry.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert cache entry: %w", err)
	}

	return nil
}

// Get retrieves the cached colors for a remote/branch pair.
func (r *ColorCacheRepository) Get(ctx context.Context, remoteURL, branch string) (*ColorCacheEntry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, remote_url, branch, primary_color, branch_color, created_at
		FROM color_cache WHERE remote_url = ? AND branch = ?
	`, remoteURL, branch)

	entry, err := scanCacheEntry(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCacheEntryNotFound
		}
		return nil, fmt.Errorf("failed to scan cache entry: %w", err)
	}
	return entry, nil
}

// List returns cache entries, newest first.
func (r *ColorCacheRepository) List(ctx context.Context, limit int) ([]*ColorCacheEntry, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, remote_url, branch, primary_color, branch_color, created_at
		FROM color_cache ORDER BY created_at DESC, remote_url, branch LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query cache entries: %w", err)
	}
	defer rows.Close()

	var entries []*ColorCacheEntry
	for rows.Next() {
		entry, err := scanCacheEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cache entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cache entries: %w", err)
	}

	return entries, nil
}

// Purge removes every cache entry and returns the count removed.
func (r *ColorCacheRepository) Purge(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM color_cache`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge cache: %w", err)
	}
	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get purged count: %w", err)
	}
	return count, nil
}

func scanCacheEntry(scan func(dest ...any) error) (*ColorCacheEntry, error) {
	var entry ColorCacheEntry
	var createdAt string

	if err := scan(
		&entry.ID,
		&entry.RemoteURL,
		&entry.Branch,
		&entry.PrimaryColor,
		&entry.BranchColor,
		&createdAt,
	); err != nil {
		return nil, err
	}

	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		entry.CreatedAt = t
	}
	return &entry, nil
}
