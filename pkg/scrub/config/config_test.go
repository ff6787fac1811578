package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultFailurePolicy, cfg.FailurePolicy)
	assert.Equal(t, DefaultDebounceMS, cfg.DebounceMS)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultRotationMaxSizeMB, cfg.Logging.Rotation.MaxSizeMB)
	assert.True(t, cfg.Cache.Enabled)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, DefaultHistoryRetentionDays, cfg.History.RetentionDays)
	assert.Empty(t, cfg.CustomTargets)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	configDir := filepath.Join(dir, "scrub")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	yaml := `
failure_policy: collect
debounce_ms: 200
custom_targets:
  - id: old_logs
    name: Old logs
    path: /var/log/myapp
    patterns: ["*.log", "*.log.*"]
    enabled: true
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "collect", cfg.FailurePolicy)
	assert.Equal(t, 200, cfg.DebounceMS)
	require.Len(t, cfg.CustomTargets, 1)
	assert.Equal(t, "old_logs", cfg.CustomTargets[0].ID)
	assert.Equal(t, []string{"*.log", "*.log.*"}, cfg.CustomTargets[0].Patterns)
	assert.True(t, cfg.CustomTargets[0].Enabled)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	configDir := filepath.Join(dir, "scrub")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("{not yaml"), 0o644))

	_, err := Load()
	assert.Error(t, err)
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		in   string
		want string
	}{
		{"~", homeDir},
		{"~/caches", filepath.Join(homeDir, "caches")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ExpandPath(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
