// Package output provides formatters for displaying scrub run reports
// in various output formats (pretty, plain, json).
//
// The package uses a registry pattern to allow registration of multiple
// formatter implementations that can be selected at runtime.
//
// Basic usage:
//
//	formatter, err := output.Get("pretty")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	var buf bytes.Buffer
//	if err := formatter.Format(&buf, report); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(buf.String())
package output

import (
	"bytes"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/wxlv/scrub/pkg/scrub/logging"
)

// logger is the package-level logger for output operations.
var logger = logging.Get("output")

// TargetReport contains per-target results for a single run.
type TargetReport struct {
	// ID is the stable target identifier (e.g., "temp_dir").
	ID string `json:"id"`

	// Name is the human-readable target name.
	Name string `json:"name"`

	// Enabled indicates whether the target was selected for this run.
	Enabled bool `json:"enabled"`

	// Files is the number of files found (or removed, for a clean run).
	Files int64 `json:"files"`

	// Dirs is the number of directories found.
	Dirs int64 `json:"dirs"`

	// Bytes is the total size in bytes.
	Bytes int64 `json:"bytes"`

	// SizeHuman is the human-readable size (e.g., "1.5 GiB").
	SizeHuman string `json:"size_human"`

	// Err holds a failure message when the run could not fully
	// process this target.
	Err string `json:"error,omitempty"`
}

// Report contains the complete output data for formatting.
type Report struct {
	// Operation is "scan" or "clean".
	Operation string `json:"operation"`

	// DryRun indicates that nothing was actually removed.
	DryRun bool `json:"dry_run"`

	// Targets contains per-target results in catalog order.
	Targets []TargetReport `json:"targets"`

	// TotalFiles is the sum of Files across enabled targets.
	TotalFiles int64 `json:"total_files"`

	// TotalBytes is the sum of Bytes across enabled targets.
	TotalBytes int64 `json:"total_bytes"`

	// Duration is the total time taken by the run.
	Duration time.Duration `json:"duration"`

	// FreeBytes is the free space on the volume holding the
	// primary target root, when available. Zero when unknown.
	FreeBytes uint64 `json:"free_bytes,omitempty"`

	// TrashEmptied indicates the system trash was emptied as part
	// of the run.
	TrashEmptied bool `json:"trash_emptied"`

	// Warnings contains non-fatal messages generated during the run.
	Warnings []string `json:"warnings,omitempty"`
}

// EnabledTargets returns the reports for targets that took part in the run.
func (r *Report) EnabledTargets() []TargetReport {
	var out []TargetReport
	for _, t := range r.Targets {
		if t.Enabled {
			out = append(out, t)
		}
	}
	return out
}

// Formatter formats a report into a buffer.
type Formatter interface {
	Format(w *bytes.Buffer, r *Report) error
}

// FormatterFactory creates a new formatter instance.
type FormatterFactory func() Formatter

var (
	registryMu sync.RWMutex
	registry   = make(map[string]FormatterFactory)
)

// Register adds a formatter factory to the registry under the given name.
// Registering a duplicate name overwrites the previous entry.
func Register(name string, factory FormatterFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// Get returns a new formatter instance for the given name.
func Get(name string) (Formatter, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		logger.Debug("unknown formatter requested", "name", name)
		return nil, fmt.Errorf("unknown output format %q (available: %v)", name, Names())
	}
	return factory(), nil
}

// Names returns the registered formatter names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
