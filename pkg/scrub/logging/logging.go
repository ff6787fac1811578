// Package logging provides file-backed structured logging for scrub.
// The interactive TUI owns the terminal, so logs always go to a rotated
// file; console echo is opt-in for the non-interactive CLI.
//
// Basic usage:
//
//	if err := logging.Init(logging.Config{Level: "info"}); err != nil {
//	    // fall back to silent logging
//	}
//	defer logging.Close()
//
//	logger := logging.Get("session")
//	logger.Info("scan complete", "targets", 8)
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// RotationConfig configures log file rotation.
type RotationConfig struct {
	// MaxSizeMB rotates the file once it exceeds this many megabytes.
	MaxSizeMB int

	// MaxAge removes rotated files older than this many days.
	MaxAge int

	// MaxBackups caps the number of rotated files kept.
	MaxBackups int
}

// Config configures the logging system.
type Config struct {
	// Level is the default log level (debug, info, warn, error).
	Level string

	// Path is the log file path. Empty uses DefaultLogPath().
	Path string

	// Rotation configures log file rotation.
	Rotation RotationConfig

	// ConsoleEcho mirrors log output to stderr. Must stay false while the
	// TUI owns the screen.
	ConsoleEcho bool
}

var (
	mu          sync.Mutex
	writer      io.WriteCloser
	baseLevel   log.Level
	echo        bool
	loggers     map[string]*log.Logger
	initialized bool
)

// DefaultLogPath returns the default log file location under the XDG state
// directory.
func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, "scrub", "scrub.log")
}

// Init opens the log file and configures the package. Calling Init again
// replaces the previous configuration.
func Init(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	level, err := parseLevel(cfg.Level)
	if err != nil {
		return err
	}

	path := cfg.Path
	if path == "" {
		path = DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	rot := cfg.Rotation
	if rot.MaxSizeMB <= 0 {
		rot.MaxSizeMB = 10
	}

	if writer != nil {
		_ = writer.Close()
	}
	writer = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    rot.MaxSizeMB,
		MaxAge:     rot.MaxAge,
		MaxBackups: rot.MaxBackups,
	}

	baseLevel = level
	echo = cfg.ConsoleEcho
	loggers = make(map[string]*log.Logger)
	initialized = true
	return nil
}

// Get returns the named component logger. Before Init is called, loggers
// discard everything so library code can log unconditionally.
func Get(component string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()

	if !initialized {
		return log.New(io.Discard)
	}
	if l, ok := loggers[component]; ok {
		return l
	}

	var out io.Writer = writer
	if echo {
		out = io.MultiWriter(writer, os.Stderr)
	}
	l := log.NewWithOptions(out, log.Options{
		Level:           baseLevel,
		Prefix:          component,
		ReportTimestamp: true,
	})
	loggers[component] = l
	return l
}

// Close flushes and closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	initialized = false
	loggers = nil
	if writer == nil {
		return nil
	}
	err := writer.Close()
	writer = nil
	return err
}

func parseLevel(s string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return log.InfoLevel, nil
	case "debug":
		return log.DebugLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("invalid log level %q", s)
	}
}
