package target

import (
	"strings"

	wildcard "github.com/IGLOU-EU/go-wildcard"
)

// Rule describes what a cleanup target matches on disk. It is a sealed sum
// type: exactly one of WholeDir, DirSet, TempPattern or FilePattern. A rule
// never changes after the target is constructed.
type Rule interface {
	// roots returns the directory roots the rule operates on.
	roots() []string

	rule()
}

// WholeDir matches everything beneath a single directory. The directory
// itself is kept; cleaning removes its direct entries.
type WholeDir struct {
	Path string
}

// DirSet matches everything beneath each of a fixed set of directories.
// Scanning and cleaning treat each path independently and sum the results.
type DirSet struct {
	Paths []string
}

// TempPattern matches transiently-named files beneath a directory.
// Subdirectories are always descended into regardless of their own names,
// but only matching files within them count.
type TempPattern struct {
	Path string
}

// FilePattern matches files beneath a directory whose base names match any
// of the given wildcard patterns (e.g. "*.log"). It backs user-defined
// targets from the configuration file.
type FilePattern struct {
	Path     string
	Patterns []string
}

func (r WholeDir) rule()    {}
func (r DirSet) rule()      {}
func (r TempPattern) rule() {}
func (r FilePattern) rule() {}

func (r WholeDir) roots() []string    { return []string{r.Path} }
func (r DirSet) roots() []string      { return r.Paths }
func (r TempPattern) roots() []string { return []string{r.Path} }
func (r FilePattern) roots() []string { return []string{r.Path} }

// matches reports whether a file name matches any of the patterns.
func (r FilePattern) matches(name string) bool {
	for _, pat := range r.Patterns {
		if wildcard.Match(pat, name) {
			return true
		}
	}
	return false
}

// IsTransientName reports whether a file name signals a temporary or cache
// file: it contains "tmp", "temp" or "cache", or begins or ends with "~".
// Matching is case-insensitive since the usual sources of such files
// (editors, installers, browsers) are inconsistent about casing.
func IsTransientName(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "tmp") ||
		strings.Contains(lower, "temp") ||
		strings.Contains(lower, "cache") ||
		strings.HasPrefix(lower, "~") ||
		strings.HasSuffix(lower, "~")
}
