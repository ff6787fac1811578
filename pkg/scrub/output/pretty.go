package output

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
)

// PrettyFormatter formats output with colors and styling using lipgloss.
// It produces a visually appealing report suitable for terminal display.
type PrettyFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PrettyFormatter) Format(w *bytes.Buffer, r *Report) error {
	w.WriteString(f.formatHeader(r))
	w.WriteString("\n")
	w.WriteString(f.formatTable(r))
	w.WriteString(f.formatFooter(r))

	if len(r.Warnings) > 0 {
		w.WriteString("\n")
		w.WriteString(f.formatWarnings(r.Warnings))
	}

	return nil
}

// formatHeader builds the header box with run metadata.
func (f *PrettyFormatter) formatHeader(r *Report) string {
	title := r.Operation
	if title != "" {
		title = strings.ToUpper(title[:1]) + title[1:]
	}
	if r.DryRun {
		title += WarningStyle.Render(" (dry run)")
	}

	var parts []string
	parts = append(parts, LabelStyle.Render(title))
	parts = append(parts, MutedStyle.Render(fmt.Sprintf("%d targets in %s",
		len(r.EnabledTargets()), formatDuration(r.Duration))))

	if r.FreeBytes > 0 {
		parts = append(parts, LabelStyle.Render("Free:")+" "+
			ValueStyle.Render(humanize.IBytes(r.FreeBytes)))
	}

	return HeaderBox.Render(strings.Join(parts, "  "))
}

// formatTable builds the per-target table.
func (f *PrettyFormatter) formatTable(r *Report) string {
	enabled := r.EnabledTargets()
	if len(enabled) == 0 {
		return MutedStyle.Render("  No targets enabled\n")
	}

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "  %s\t%s\t%s\n",
		LabelStyle.Render("TARGET"),
		LabelStyle.Render("FILES"),
		LabelStyle.Render("SIZE"))

	for _, t := range enabled {
		line := fmt.Sprintf("  %s\t%d\t%s", t.Name, t.Files, t.SizeHuman)
		if t.Err != "" {
			line += "\t" + ErrorStyle.Render(t.Err)
		}
		fmt.Fprintln(tw, line)
	}

	tw.Flush()
	return sb.String()
}

// formatFooter builds the footer box with totals.
func (f *PrettyFormatter) formatFooter(r *Report) string {
	verb := "reclaimable"
	if r.Operation == "clean" {
		verb = "reclaimed"
		if r.DryRun {
			verb = "would reclaim"
		}
	}

	total := fmt.Sprintf("%s %s across %s",
		SuccessStyle.Render(humanize.IBytes(uint64(r.TotalBytes))),
		MutedStyle.Render(verb),
		ValueStyle.Render(fmt.Sprintf("%d files", r.TotalFiles)))

	if r.TrashEmptied {
		total += MutedStyle.Render("  (trash emptied)")
	}

	return FooterBox.Render(total)
}

// formatWarnings builds the list of non-fatal messages.
func (f *PrettyFormatter) formatWarnings(warnings []string) string {
	var sb strings.Builder
	for _, warning := range warnings {
		sb.WriteString(WarningStyle.Render("warning: " + warning))
		sb.WriteString("\n")
	}
	return sb.String()
}

// formatDuration renders a duration with sub-second precision trimmed.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(10 * time.Millisecond).String()
}

func init() {
	Register("pretty", func() Formatter {
		return &PrettyFormatter{}
	})
}

// Ensure PrettyFormatter implements Formatter.
var _ Formatter = (*PrettyFormatter)(nil)
