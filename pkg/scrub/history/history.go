// Package history records scrub runs to the filesystem, one JSON file per
// scan or clean pass, so users can review what a run measured or deleted.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/google/uuid"
)

// Operation is the kind of run being recorded.
type Operation string

const (
	// OpScan records a measurement-only pass.
	OpScan Operation = "scan"

	// OpClean records a deletion pass.
	OpClean Operation = "clean"
)

// TargetRecord captures one target's outcome within a run.
type TargetRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Files int64  `json:"files"`
	Dirs  int64  `json:"dirs"`
	Bytes int64  `json:"bytes"`
}

// Summary totals a run across its targets.
type Summary struct {
	TotalFiles int64 `json:"total_files"`
	TotalBytes int64 `json:"total_bytes"`
}

// Entry is one recorded run.
type Entry struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Operation Operation      `json:"operation"`
	DryRun    bool           `json:"dry_run,omitempty"`
	Targets   []TargetRecord `json:"targets"`
	Summary   Summary        `json:"summary"`
}

// Log manages run entries in a directory.
type Log struct {
	dir string
	mu  sync.Mutex
}

// DefaultDir returns the default history location under the XDG state dir.
func DefaultDir() string {
	return filepath.Join(xdg.StateHome, "scrub", "history")
}

// New creates a Log rooted at dir. The directory is created lazily on the
// first Record call.
func New(dir string) (*Log, error) {
	if dir == "" {
		return nil, errors.New("history directory cannot be empty")
	}
	return &Log{dir: dir}, nil
}

// Record persists a run and returns the created entry.
func (l *Log) Record(op Operation, dryRun bool, targets []TargetRecord) (*Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var summary Summary
	for _, t := range targets {
		summary.TotalFiles += t.Files
		summary.TotalBytes += t.Bytes
	}

	entry := &Entry{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Operation: op,
		DryRun:    dryRun,
		Targets:   targets,
		Summary:   summary,
	}

	if err := l.writeEntry(entry); err != nil {
		return nil, fmt.Errorf("failed to write history entry: %w", err)
	}
	return entry, nil
}

// writeEntry writes an entry atomically via temp file and rename.
func (l *Log) writeEntry(entry *Entry) error {
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(l.dir, entryFilename(entry))
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

// entryFilename keeps entries lexically sortable by time.
func entryFilename(entry *Entry) string {
	ts := entry.Timestamp.Format("20060102T150405Z")
	return fmt.Sprintf("%s-%s-%s.json", ts, entry.Operation, entry.ID)
}

// List returns all recorded entries, newest first. A missing history
// directory yields an empty list.
func (l *Log) List() ([]*Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	files, err := os.ReadDir(l.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []*Entry
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(l.dir, f.Name()))
		if err != nil {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(data, &entry); err != nil {
			// A corrupt entry should not hide the rest of the history.
			continue
		}
		entries = append(entries, &entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries, nil
}

// Prune removes entries older than the retention period and returns how
// many were deleted.
func (l *Log) Prune(retention time.Duration) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	files, err := os.ReadDir(l.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	cutoff := time.Now().UTC().Add(-retention)
	removed := 0
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}
		path := filepath.Join(l.dir, f.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(data, &entry); err != nil {
			continue
		}
		if entry.Timestamp.Before(cutoff) {
			if err := os.Remove(path); err == nil {
				removed++
			}
		}
	}
	return removed, nil
}
