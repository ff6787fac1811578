// Package config provides configuration management for scrub.
package config

// Default configuration values.
const (
	// DefaultFailurePolicy controls deletion failure handling.
	DefaultFailurePolicy = "silent"

	// DefaultDebounceMS is the input debounce cooldown in milliseconds.
	DefaultDebounceMS = 150

	// DefaultLogLevel is the default logging verbosity.
	DefaultLogLevel = "info"

	// DefaultRotationMaxSizeMB rotates the log file past this size.
	DefaultRotationMaxSizeMB = 10

	// DefaultRotationMaxAge removes rotated logs older than this many days.
	DefaultRotationMaxAge = 30

	// DefaultRotationMaxBackups caps the number of rotated logs kept.
	DefaultRotationMaxBackups = 5

	// DefaultHistoryRetentionDays is how long run history entries are kept.
	DefaultHistoryRetentionDays = 30
)
