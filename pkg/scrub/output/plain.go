package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
)

// PlainFormatter formats output as a simple tab-separated table.
// It produces plain text output suitable for scripting and piping.
// No colors or styling are applied.
type PlainFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PlainFormatter) Format(w *bytes.Buffer, r *Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := tw.Write([]byte("TARGET\tFILES\tSIZE\tSTATUS\n")); err != nil {
		return err
	}

	for _, t := range r.EnabledTargets() {
		status := "ok"
		if t.Err != "" {
			status = "error: " + t.Err
		}
		row := fmt.Sprintf("%s\t%d\t%s\t%s\n", t.Name, t.Files, t.SizeHuman, status)
		if _, err := tw.Write([]byte(row)); err != nil {
			return err
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	verb := "found"
	if r.Operation == "clean" {
		verb = "removed"
		if r.DryRun {
			verb = "would remove"
		}
	}
	fmt.Fprintf(w, "total: %s %d files, %s\n", verb, r.TotalFiles, humanize.IBytes(uint64(r.TotalBytes)))

	for _, warning := range r.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}

	return nil
}

func init() {
	Register("plain", func() Formatter {
		return &PlainFormatter{}
	})
}

// Ensure PlainFormatter implements Formatter.
var _ Formatter = (*PlainFormatter)(nil)
