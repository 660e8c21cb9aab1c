// Package config loads repohue tool settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds tool settings. Palette profiles themselves live in a
// separate profiles file (see internal/profile).
type Config struct {
	// Profile selects the active profile. It may also be a raw color
	// string, which stands in for a single-color profile.
	Profile string `mapstructure:"profile"`

	// ProfilesPath is the profiles file location.
	ProfilesPath string `mapstructure:"profiles_path"`

	// Filtering enables slot compatibility filtering for slot listings.
	Filtering bool `mapstructure:"filtering"`

	// CachePath is the derived-color cache database location.
	CachePath string `mapstructure:"cache_path"`

	// LogLevel sets the default logger level.
	LogLevel string `mapstructure:"log_level"`
}

// Load reads configuration from the given file (optional), the default
// config directory, and REPOHUE_* environment variables. A missing config
// file yields the defaults; an explicit path that cannot be read is an
// error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("REPOHUE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configDir := defaultConfigDir()
	v.SetDefault("profile", "")
	v.SetDefault("profiles_path", filepath.Join(configDir, "profiles.yaml"))
	v.SetDefault("filtering", true)
	v.SetDefault("cache_path", filepath.Join(configDir, "cache.db"))
	v.SetDefault("log_level", "info")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

func defaultConfigDir() string {
	if base, err := os.UserConfigDir(); err == nil {
		return filepath.Join(base, "repohue")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".repohue")
}
