package tui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/wxlv/scrub/pkg/scrub/session"
	"github.com/wxlv/scrub/pkg/scrub/target"
)

// View renders the target list with per-phase framing.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTargets())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return outerBoxStyle.Width(m.width - 2).Render(b.String())
}

// renderHeader shows the title, phase and any advisory notes.
func (m Model) renderHeader() string {
	title := titleStyle.Render("scrub")
	phase := phaseStyle.Render(m.sess.Phase().String())

	parts := []string{title, phase}
	if m.opts.FreeBytes > 0 {
		parts = append(parts, mutedTextStyle.Render("free "+humanize.IBytes(m.opts.FreeBytes)))
	}
	if m.opts.DryRun {
		parts = append(parts, warningTextStyle.Render("dry run"))
	}
	if m.stale {
		parts = append(parts, warningTextStyle.Render("changed on disk, re-scan for fresh sizes"))
	}

	return strings.Join(parts, "  ")
}

// renderTargets shows one row per target with cursor, checkbox and sizes.
func (m Model) renderTargets() string {
	targets := m.sess.Targets()
	if len(targets) == 0 {
		return mutedTextStyle.Render("  no cleanup targets for this platform")
	}

	var b strings.Builder
	for i, t := range targets {
		b.WriteString(m.renderRow(i, t))
		b.WriteString("\n")
	}
	return b.String()
}

// renderRow renders a single target line.
func (m Model) renderRow(i int, t *target.Target) string {
	cursor := "  "
	if i == m.sess.SelectedIndex() {
		cursor = cursorStyle.Render("> ")
	}

	box := mutedTextStyle.Render("[ ]")
	if t.Enabled {
		box = selectedStyle.Render("[x]")
	}

	name := t.Name
	if i == m.sess.SelectedIndex() {
		name = cursorStyle.Render(name)
	}

	return cursor + box + " " + name + "  " + m.renderSize(i, t)
}

// renderSize picks the most relevant figure for the current phase: clean
// results after a clean, scan results after a scan, otherwise the
// last-known size from a previous run when the cache has one.
func (m Model) renderSize(i int, t *target.Target) string {
	switch m.sess.Phase() {
	case session.PhaseCleaned:
		if res := m.sess.CleanResult(i); res != nil {
			s := fmt.Sprintf("freed %s (%d files)", humanize.IBytes(uint64(res.Bytes)), res.Files)
			if m.opts.DryRun {
				s = fmt.Sprintf("would free %s (%d files)", humanize.IBytes(uint64(res.Bytes)), res.Files)
			}
			if err := m.sess.CleanError(i); err != nil {
				return errorTextStyle.Render(s + " with failures")
			}
			return successTextStyle.Render(s)
		}
	case session.PhaseScanned:
		if res := m.sess.ScanResult(i); res != nil {
			if !res.HasData {
				return mutedTextStyle.Render("empty")
			}
			return fmt.Sprintf("%s (%d files)", humanize.IBytes(uint64(res.Bytes)), res.Files)
		}
	default:
		if res, at, ok := m.sess.LastKnown(t.ID); ok {
			return mutedTextStyle.Render(fmt.Sprintf("~%s as of %s",
				humanize.IBytes(uint64(res.Bytes)), humanize.Time(at)))
		}
	}
	return mutedTextStyle.Render("not scanned")
}

// renderFooter shows totals, the trash note and the help line.
func (m Model) renderFooter() string {
	var lines []string

	switch m.sess.Phase() {
	case session.PhaseScanned:
		lines = append(lines, totalStyle.Render(fmt.Sprintf("reclaimable: %s across %d files",
			humanize.IBytes(uint64(m.sess.TotalBytes(false))), m.sess.TotalFiles(false))))
	case session.PhaseCleaned:
		verb := "reclaimed"
		if m.opts.DryRun {
			verb = "would reclaim"
		}
		lines = append(lines, totalStyle.Render(fmt.Sprintf("%s: %s across %d files",
			verb, humanize.IBytes(uint64(m.sess.TotalBytes(true))), m.sess.TotalFiles(true))))
	}

	if m.trashNote != "" {
		lines = append(lines, mutedTextStyle.Render(m.trashNote))
	}

	lines = append(lines, dividerStyle.Render(strings.Repeat("─", max(0, m.width-6))))
	if m.showHelp {
		lines = append(lines, m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		lines = append(lines, m.help.ShortHelpView(m.keys.ShortHelp()))
	}

	return strings.Join(lines, "\n")
}
