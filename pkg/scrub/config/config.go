package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// RotationConfig configures log file rotation.
type RotationConfig struct {
	MaxSizeMB  int `mapstructure:"max_size_mb"`
	MaxAge     int `mapstructure:"max_age"`
	MaxBackups int `mapstructure:"max_backups"`
}

// LoggingConfig configures application logging.
type LoggingConfig struct {
	Level    string         `mapstructure:"level"`
	Path     string         `mapstructure:"path"`
	Rotation RotationConfig `mapstructure:"rotation"`
}

// CacheConfig configures last-result persistence.
type CacheConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// HistoryConfig configures run history logging.
type HistoryConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	Path          string `mapstructure:"path"`
	RetentionDays int    `mapstructure:"retention_days"`
}

// CustomTarget defines a user-supplied cleanup target matched by wildcard
// file patterns under a directory.
type CustomTarget struct {
	ID          string   `mapstructure:"id"`
	Name        string   `mapstructure:"name"`
	Description string   `mapstructure:"description"`
	Path        string   `mapstructure:"path"`
	Patterns    []string `mapstructure:"patterns"`
	Enabled     bool     `mapstructure:"enabled"`
}

// Config represents the application configuration.
type Config struct {
	FailurePolicy string         `mapstructure:"failure_policy"`
	DebounceMS    int            `mapstructure:"debounce_ms"`
	CustomTargets []CustomTarget `mapstructure:"custom_targets"`
	Logging       LoggingConfig  `mapstructure:"logging"`
	Cache         CacheConfig    `mapstructure:"cache"`
	History       HistoryConfig  `mapstructure:"history"`
}

// Load loads configuration from file and environment variables.
// Config file locations (in order of precedence):
//   - $XDG_CONFIG_HOME/scrub/config.yaml
//   - $HOME/.config/scrub/config.yaml
//
// Environment variables are prefixed with SCRUB_ (e.g. SCRUB_DEBOUNCE_MS).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		v.AddConfigPath(filepath.Join(xdgConfigHome, "scrub"))
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(homeDir, ".config", "scrub"))
	}

	v.SetEnvPrefix("SCRUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// A missing config file is fine; everything has a default.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("failure_policy", DefaultFailurePolicy)
	v.SetDefault("debounce_ms", DefaultDebounceMS)
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.path", "") // empty means the XDG state dir
	v.SetDefault("logging.rotation.max_size_mb", DefaultRotationMaxSizeMB)
	v.SetDefault("logging.rotation.max_age", DefaultRotationMaxAge)
	v.SetDefault("logging.rotation.max_backups", DefaultRotationMaxBackups)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.path", "") // empty means the XDG cache dir
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", "") // empty means the XDG state dir
	v.SetDefault("history.retention_days", DefaultHistoryRetentionDays)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		if path == "~" {
			return homeDir, nil
		}
		return filepath.Join(homeDir, path[2:]), nil
	}
	return path, nil
}
