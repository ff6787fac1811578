// Package session drives a collection of cleanup targets through the
// scan/clean lifecycle. A session owns the target list, the per-target
// result slots and the interactive selection state, and enforces the phase
// machine that keeps at most one pass in flight:
//
//	Idle --Scan--> Scanning --(completes)--> Scanned
//	Scanned --Clean--> Cleaning --(completes)--> Cleaned
//	any phase --Reset--> Idle (fresh catalog, all results cleared)
//
// All methods must be called from a single goroutine; the intended caller
// is one synchronous control loop.
package session

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/wxlv/scrub/pkg/scrub/cache"
	"github.com/wxlv/scrub/pkg/scrub/logging"
	"github.com/wxlv/scrub/pkg/scrub/target"
)

// Phase is the session's current stage in the scan/clean lifecycle.
type Phase int

const (
	// PhaseIdle means no results exist yet for the current cycle.
	PhaseIdle Phase = iota

	// PhaseScanning means a scan pass is in flight.
	PhaseScanning

	// PhaseScanned means scan results are available.
	PhaseScanned

	// PhaseCleaning means a clean pass is in flight.
	PhaseCleaning

	// PhaseCleaned means clean results are available.
	PhaseCleaned
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseScanning:
		return "scanning"
	case PhaseScanned:
		return "scanned"
	case PhaseCleaning:
		return "cleaning"
	case PhaseCleaned:
		return "cleaned"
	default:
		return "unknown"
	}
}

// CatalogFunc produces a fresh ordered target list. The session calls it at
// construction and on every Reset, so platform state changes between cycles
// are picked up.
type CatalogFunc func() []*target.Target

// Options configures a session.
type Options struct {
	// Catalog supplies the target list. Required.
	Catalog CatalogFunc

	// DryRun makes Clean report without deleting.
	DryRun bool

	// Policy controls how deletion failures are handled during Clean.
	Policy target.FailurePolicy

	// Cache, when set, receives each target's scan result so the next run
	// can show last-known sizes. Persistence failures are logged and
	// otherwise ignored.
	Cache *cache.Store
}

// Session orchestrates cleanup targets through the phase machine.
// It is not safe for concurrent use.
type Session struct {
	opts   Options
	logger *log.Logger

	targets      []*target.Target
	scanResults  []*target.Result
	cleanResults []*target.Result
	cleanErrs    []error
	phase        Phase
	selected     int
}

// New creates a session and pulls the initial target list from the catalog.
func New(opts Options) *Session {
	if opts.Catalog == nil {
		opts.Catalog = func() []*target.Target { return nil }
	}
	s := &Session{opts: opts, logger: logging.Get("session")}
	s.Reset()
	return s
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Targets returns the ordered target list. The order is the display and
// selection order.
func (s *Session) Targets() []*target.Target { return s.targets }

// SelectedIndex returns the cursor position within the target list.
func (s *Session) SelectedIndex() int { return s.selected }

// ScanResult returns the scan result slot for the target at index i, or nil
// if that target has not been scanned this cycle.
func (s *Session) ScanResult(i int) *target.Result {
	if i < 0 || i >= len(s.scanResults) {
		return nil
	}
	return s.scanResults[i]
}

// CleanResult returns the clean result slot for the target at index i, or
// nil if that target has not been cleaned this cycle.
func (s *Session) CleanResult(i int) *target.Result {
	if i < 0 || i >= len(s.cleanResults) {
		return nil
	}
	return s.cleanResults[i]
}

// CleanError returns the failure recorded for the target at index i during
// the last clean, or nil. Only the collect and abort policies produce one.
func (s *Session) CleanError(i int) error {
	if i < 0 || i >= len(s.cleanErrs) {
		return nil
	}
	return s.cleanErrs[i]
}

// selectionAllowed reports whether selection and navigation may mutate
// state. Blocking them mid-pass is what makes duplicate input events and
// toggle-during-scan races impossible.
func (s *Session) selectionAllowed() bool {
	return s.phase != PhaseScanning && s.phase != PhaseCleaning
}

// Toggle flips the enabled flag of the target under the cursor.
func (s *Session) Toggle() {
	if !s.selectionAllowed() || len(s.targets) == 0 {
		return
	}
	t := s.targets[s.selected]
	t.Enabled = !t.Enabled
	s.logger.Debug("toggled target", "id", t.ID, "enabled", t.Enabled)
}

// SelectAll enables every target.
func (s *Session) SelectAll() {
	if !s.selectionAllowed() {
		return
	}
	for _, t := range s.targets {
		t.Enabled = true
	}
}

// DeselectAll disables every target.
func (s *Session) DeselectAll() {
	if !s.selectionAllowed() {
		return
	}
	for _, t := range s.targets {
		t.Enabled = false
	}
}

// InvertSelection flips every target's enabled flag.
func (s *Session) InvertSelection() {
	if !s.selectionAllowed() {
		return
	}
	for _, t := range s.targets {
		t.Enabled = !t.Enabled
	}
}

// MoveNext advances the cursor, wrapping past the end of the list.
func (s *Session) MoveNext() {
	if !s.selectionAllowed() || len(s.targets) == 0 {
		return
	}
	s.selected = (s.selected + 1) % len(s.targets)
}

// MovePrev moves the cursor backwards, wrapping before the start.
func (s *Session) MovePrev() {
	if !s.selectionAllowed() || len(s.targets) == 0 {
		return
	}
	s.selected--
	if s.selected < 0 {
		s.selected = len(s.targets) - 1
	}
}

// Scan measures every enabled target in catalog order and fills the scan
// result slots. It is a no-op while a pass is in flight. Re-scanning from
// Scanned simply overwrites the previous results. Scanning after a clean
// resets the session first, so a new cycle starts against a fresh catalog.
func (s *Session) Scan() {
	switch s.phase {
	case PhaseCleaned:
		s.Reset()
	case PhaseIdle, PhaseScanned:
	default:
		return
	}

	s.phase = PhaseScanning
	s.scanResults = make([]*target.Result, len(s.targets))
	for i, t := range s.targets {
		if !t.Enabled {
			// Skipped, not zero: a nil slot means "not considered".
			continue
		}
		res := t.Scan()
		s.scanResults[i] = &res
		s.logger.Debug("scanned target",
			"id", t.ID, "files", res.Files, "dirs", res.Dirs, "bytes", res.Bytes)
		s.storeLastKnown(t.ID, res)
	}
	s.phase = PhaseScanned
	s.logger.Info("scan complete",
		"targets", len(s.targets), "bytes", s.TotalBytes(false), "files", s.TotalFiles(false))
}

// Clean deletes what the enabled targets match and fills the clean result
// slots. It is permitted only from Scanned: cleaning without a scan in the
// current cycle is disallowed so the reported totals always correspond to
// a scan the user has seen. From any other phase it is a no-op.
func (s *Session) Clean() {
	if s.phase != PhaseScanned {
		return
	}

	s.phase = PhaseCleaning
	opts := target.CleanOptions{DryRun: s.opts.DryRun, Policy: s.opts.Policy}
	for i, t := range s.targets {
		if !t.Enabled {
			continue
		}
		res, err := t.Clean(opts)
		if err != nil {
			s.logger.Warn("clean finished with failures", "id", t.ID, "error", err)
			s.cleanErrs[i] = err
		}
		s.cleanResults[i] = &res
	}
	s.phase = PhaseCleaned
	s.logger.Info("clean complete",
		"dry_run", s.opts.DryRun, "bytes", s.TotalBytes(true), "files", s.TotalFiles(true))
}

// Reset discards all results, rebuilds the target list from the catalog and
// returns the session to Idle. Valid from any phase.
func (s *Session) Reset() {
	s.targets = s.opts.Catalog()
	s.scanResults = make([]*target.Result, len(s.targets))
	s.cleanResults = make([]*target.Result, len(s.targets))
	s.cleanErrs = make([]error, len(s.targets))
	s.selected = 0
	s.phase = PhaseIdle
}

// TotalBytes sums the populated slots of the scan results, or of the clean
// results when useClean is true. Totals are always derived on demand so
// they can never go stale relative to the per-target data.
func (s *Session) TotalBytes(useClean bool) int64 {
	var total int64
	for _, r := range s.results(useClean) {
		if r != nil {
			total += r.Bytes
		}
	}
	return total
}

// TotalFiles sums the file counts of the populated result slots.
func (s *Session) TotalFiles(useClean bool) int64 {
	var total int64
	for _, r := range s.results(useClean) {
		if r != nil {
			total += r.Files
		}
	}
	return total
}

// TotalSizeMB returns TotalBytes in mebibytes.
func (s *Session) TotalSizeMB(useClean bool) float64 {
	return float64(s.TotalBytes(useClean)) / (1024.0 * 1024.0)
}

func (s *Session) results(useClean bool) []*target.Result {
	if useClean {
		return s.cleanResults
	}
	return s.scanResults
}

// EnabledRoots returns the existing filesystem roots of the enabled
// targets, for callers that want to watch them for changes after a scan.
func (s *Session) EnabledRoots() []string {
	var roots []string
	for _, t := range s.targets {
		if !t.Enabled {
			continue
		}
		roots = append(roots, t.Roots()...)
	}
	return roots
}

// LastKnown returns the persisted result of a previous run's scan for the
// given target, or false when none is recorded or no cache is configured.
func (s *Session) LastKnown(targetID string) (target.Result, time.Time, bool) {
	if s.opts.Cache == nil {
		return target.Result{}, time.Time{}, false
	}
	entry, err := s.opts.Cache.Get(targetID)
	if err != nil {
		return target.Result{}, time.Time{}, false
	}
	return entry.Result, entry.ScannedAt, true
}

func (s *Session) storeLastKnown(targetID string, res target.Result) {
	if s.opts.Cache == nil {
		return
	}
	entry := &cache.Entry{Result: res, ScannedAt: time.Now().UTC()}
	if err := s.opts.Cache.Put(targetID, entry); err != nil {
		s.logger.Warn("failed to persist scan result", "id", targetID, "error", err)
	}
}
