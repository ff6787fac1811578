package output

import (
	"bytes"
	"encoding/json"
)

// jsonReport mirrors Report with a human-readable duration.
type jsonReport struct {
	Operation    string         `json:"operation"`
	DryRun       bool           `json:"dry_run"`
	Targets      []TargetReport `json:"targets"`
	TotalFiles   int64          `json:"total_files"`
	TotalBytes   int64          `json:"total_bytes"`
	Duration     string         `json:"duration"`
	FreeBytes    uint64         `json:"free_bytes,omitempty"`
	TrashEmptied bool           `json:"trash_emptied"`
	Warnings     []string       `json:"warnings,omitempty"`
}

// JSONFormatter formats output as indented JSON suitable for scripting.
type JSONFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *JSONFormatter) Format(w *bytes.Buffer, r *Report) error {
	out := jsonReport{
		Operation:    r.Operation,
		DryRun:       r.DryRun,
		Targets:      r.Targets,
		TotalFiles:   r.TotalFiles,
		TotalBytes:   r.TotalBytes,
		Duration:     r.Duration.String(),
		FreeBytes:    r.FreeBytes,
		TrashEmptied: r.TrashEmptied,
		Warnings:     r.Warnings,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&out)
}

func init() {
	Register("json", func() Formatter {
		return &JSONFormatter{}
	})
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)
