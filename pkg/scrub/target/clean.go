package target

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Clean measures the target, then deletes what it matched. The returned
// Result is the pre-deletion scan: the user-visible "freed N MB" figure
// reflects intended effect, not verified post-state, so it stays
// deterministic even when some deletions fail.
//
// With PolicySilent the error is always nil. With PolicyCollect all
// deletion failures are joined into the returned error but never abort the
// batch. With PolicyAbort the first failure stops the remaining deletions
// for this target.
func (t *Target) Clean(opts CleanOptions) (Result, error) {
	res := t.Scan()
	if opts.DryRun {
		return res, nil
	}

	f := &failures{policy: opts.Policy}
	var abort error
	switch r := t.Rule.(type) {
	case WholeDir:
		abort = removeEntries(r.Path, f)
	case DirSet:
		for _, p := range r.Paths {
			if abort = removeEntries(p, f); abort != nil {
				break
			}
		}
	case TempPattern:
		abort = removeMatching(r.Path, IsTransientName, f)
	case FilePattern:
		abort = removeMatching(r.Path, r.matches, f)
	}

	if abort != nil {
		return res, abort
	}
	return res, errors.Join(f.errs...)
}

// failures accumulates deletion failures according to the active policy.
type failures struct {
	policy FailurePolicy
	errs   []error
}

// record handles one deletion failure. A non-nil return means the clean
// must abort.
func (f *failures) record(path string, err error) error {
	wrapped := fmt.Errorf("delete %s: %w", path, err)
	switch f.policy {
	case PolicyAbort:
		return wrapped
	case PolicyCollect:
		f.errs = append(f.errs, wrapped)
	}
	return nil
}

// removeEntries deletes the direct entries of dir: files individually,
// subdirectories recursively. The directory itself is kept. A missing or
// unreadable directory means there is nothing to do.
func removeEntries(dir string, f *failures) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	for _, e := range entries {
		p := filepath.Join(dir, e.Name())
		var derr error
		if e.IsDir() {
			derr = os.RemoveAll(p)
		} else {
			derr = os.Remove(p)
		}
		if derr != nil {
			if abort := f.record(p, derr); abort != nil {
				return abort
			}
		}
	}
	return nil
}

// removeMatching deletes regular files whose names satisfy match,
// descending into every subdirectory regardless of its name.
// Directories themselves are never removed.
func removeMatching(dir string, match func(string) bool, f *failures) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	for _, e := range entries {
		p := filepath.Join(dir, e.Name())
		if e.IsDir() {
			if abort := removeMatching(p, match, f); abort != nil {
				return abort
			}
			continue
		}
		if !e.Type().IsRegular() || !match(e.Name()) {
			continue
		}
		if err := os.Remove(p); err != nil {
			if abort := f.record(p, err); abort != nil {
				return abort
			}
		}
	}
	return nil
}
