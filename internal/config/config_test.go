package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "", cfg.Profile)
	require.True(t, cfg.Filtering)
	require.Equal(t, "info", cfg.LogLevel)
	require.NotEmpty(t, cfg.ProfilesPath)
	require.NotEmpty(t, cfg.CachePath)
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
profile: work
profiles_path: /tmp/profiles.yaml
filtering: false
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "work", cfg.Profile)
	require.Equal(t, "/tmp/profiles.yaml", cfg.ProfilesPath)
	require.False(t, cfg.Filtering)
	require.Equal(t, "debug", cfg.LogLevel)
	// Unset keys keep their defaults.
	require.NotEmpty(t, cfg.CachePath)
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
