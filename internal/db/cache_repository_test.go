package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := Open(filepath.Join(t.TempDir(), "cache.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestPutAndGet(t *testing.T) {
	repo := NewColorCacheRepository(openTestDB(t))
	ctx := context.Background()

	entry := &ColorCacheEntry{
		RemoteURL:    "git@github.com:acme/widgets.git",
		Branch:       "main",
		PrimaryColor: "#2d4a6b",
		BranchColor:  "#6b8e23",
	}
	require.NoError(t, repo.Put(ctx, entry))
	require.NotEmpty(t, entry.ID)
	require.False(t, entry.CreatedAt.IsZero())

	got, err := repo.Get(ctx, entry.RemoteURL, entry.Branch)
	require.NoError(t, err)
	require.Equal(t, entry.ID, got.ID)
	require.Equal(t, "#2d4a6b", got.PrimaryColor)
	require.Equal(t, "#6b8e23", got.BranchColor)
}

func TestPutReplacesExistingPair(t *testing.T) {
	repo := NewColorCacheRepository(openTestDB(t))
	ctx := context.Background()

	first := &ColorCacheEntry{RemoteURL: "url", Branch: "main", PrimaryColor: "#111111", BranchColor: "#222222"}
	require.NoError(t, repo.Put(ctx, first))

	second := &ColorCacheEntry{RemoteURL: "url", Branch: "main", PrimaryColor: "#333333", BranchColor: "#444444"}
	require.NoError(t, repo.Put(ctx, second))

	got, err := repo.Get(ctx, "url", "main")
	require.NoError(t, err)
	require.Equal(t, "#333333", got.PrimaryColor)

	entries, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestGetMissingEntry(t *testing.T) {
	repo := NewColorCacheRepository(openTestDB(t))

	_, err := repo.Get(context.Background(), "url", "missing")
	require.True(t, errors.Is(err, ErrCacheEntryNotFound))
}

func TestPutRejectsInvalidEntries(t *testing.T) {
	repo := NewColorCacheRepository(openTestDB(t))
	ctx := context.Background()

	require.ErrorIs(t, repo.Put(ctx, nil), ErrInvalidCacheEntry)
	require.ErrorIs(t, repo.Put(ctx, &ColorCacheEntry{Branch: "main"}), ErrInvalidCacheEntry)
}

func TestPurge(t *testing.T) {
	repo := NewColorCacheRepository(openTestDB(t))
	ctx := context.Background()

	for _, branch := range []string{"main", "develop", "feature/x"} {
		require.NoError(t, repo.Put(ctx, &ColorCacheEntry{
			RemoteURL:    "url",
			Branch:       branch,
			PrimaryColor: "#111111",
			BranchColor:  "#222222",
		}))
	}

	count, err := repo.Purge(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, count)

	entries, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("", zerolog.Nop())
	require.Error(t, err)
}
