// Package target models one independently toggleable cleanup candidate:
// its matching rule, the read-only scan that measures it, and the
// best-effort clean that deletes what it matched.
package target

import (
	"fmt"
	"strings"

	"github.com/wxlv/scrub/pkg/scrub/sizer"
)

// Target is a named cleanup candidate. ID and Rule are fixed at
// construction; only Enabled mutates, toggled by the user to include or
// exclude the target from scan and clean passes.
type Target struct {
	ID          string
	Name        string
	Description string
	Rule        Rule
	Enabled     bool
}

// Result describes what a scan found, or what a clean affected. For a clean
// it is the pre-deletion measurement, so the reported figure is
// deterministic even when individual deletions fail.
type Result struct {
	Files   int64 `json:"files"`
	Dirs    int64 `json:"dirs"`
	Bytes   int64 `json:"bytes"`
	HasData bool  `json:"has_data"`
}

// SizeMB returns the total size in mebibytes.
func (r Result) SizeMB() float64 {
	return float64(r.Bytes) / (1024.0 * 1024.0)
}

// TotalItems returns the combined file and directory count.
func (r Result) TotalItems() int64 {
	return r.Files + r.Dirs
}

// add merges another result into r. HasData is the logical OR, so a
// multi-path target has data when any of its paths do.
func (r *Result) add(other Result) {
	r.Files += other.Files
	r.Dirs += other.Dirs
	r.Bytes += other.Bytes
	r.HasData = r.HasData || other.HasData
}

// Roots returns the directory roots the target's rule operates on.
func (t *Target) Roots() []string {
	return t.Rule.roots()
}

// Scan measures the target without touching anything. A target whose paths
// do not exist yields an all-zero result with HasData false; that is a
// normal state, not an error.
func (t *Target) Scan() Result {
	switch r := t.Rule.(type) {
	case WholeDir:
		return scanDir(r.Path)
	case DirSet:
		var res Result
		for _, p := range r.Paths {
			res.add(scanDir(p))
		}
		return res
	case TempPattern:
		return scanMatching(r.Path, IsTransientName)
	case FilePattern:
		return scanMatching(r.Path, r.matches)
	default:
		return Result{}
	}
}

func scanDir(path string) Result {
	s := sizer.Aggregate(path)
	return Result{
		Files:   s.Files,
		Dirs:    s.Dirs,
		Bytes:   s.Bytes,
		HasData: s.Files+s.Dirs > 0,
	}
}

// scanMatching counts only matching files. Directories are traversed but
// not counted: a pattern clean deletes files, never directories.
func scanMatching(path string, match func(string) bool) Result {
	s := sizer.AggregateMatching(path, match)
	return Result{
		Files:   s.Files,
		Bytes:   s.Bytes,
		HasData: s.Files > 0,
	}
}

// FailurePolicy controls how Clean treats individual deletion failures.
type FailurePolicy int

const (
	// PolicySilent discards deletion failures. The clean is best-effort
	// and never reports an error.
	PolicySilent FailurePolicy = iota

	// PolicyCollect gathers deletion failures and returns them joined,
	// without aborting the remaining deletions.
	PolicyCollect

	// PolicyAbort stops at the first deletion failure.
	PolicyAbort
)

// String returns the policy's configuration name.
func (p FailurePolicy) String() string {
	switch p {
	case PolicySilent:
		return "silent"
	case PolicyCollect:
		return "collect"
	case PolicyAbort:
		return "abort"
	default:
		return "unknown"
	}
}

// ParsePolicy parses a configuration string into a FailurePolicy.
func ParsePolicy(s string) (FailurePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "silent":
		return PolicySilent, nil
	case "collect":
		return PolicyCollect, nil
	case "abort":
		return PolicyAbort, nil
	default:
		return PolicySilent, fmt.Errorf("unknown failure policy %q", s)
	}
}

// CleanOptions configures a clean pass.
type CleanOptions struct {
	// DryRun computes and reports the same result as a real clean but
	// performs zero deletions.
	DryRun bool

	// Policy controls how individual deletion failures are handled.
	Policy FailurePolicy
}
