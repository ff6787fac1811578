// Package sizer computes aggregate disk usage beneath a filesystem path.
// It is the measurement primitive behind target scanning: every scan and
// every pre-clean measurement reduces to one or more Aggregate calls.
//
// Missing paths are a normal steady state for cleanup targets (a cache
// directory that was never created, a browser that is not installed), so
// aggregation never returns an error: unreadable or vanished entries simply
// contribute nothing to the totals.
package sizer

import (
	"io/fs"
	"os"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"
)

// Stats holds the aggregate totals for a filesystem subtree.
type Stats struct {
	// Bytes is the sum of the sizes of the counted regular files.
	Bytes int64

	// Files is the number of regular files counted.
	Files int64

	// Dirs is the number of directories strictly beneath the root.
	Dirs int64
}

// IsZero reports whether the stats count nothing at all.
func (s Stats) IsZero() bool {
	return s.Bytes == 0 && s.Files == 0 && s.Dirs == 0
}

// Aggregate returns the total size, file count and directory count beneath
// path. A missing path yields zero Stats. A regular file yields its own size
// and a file count of one. Symbolic links are not followed, so aggregation
// terminates even on cyclic link graphs.
func Aggregate(path string) Stats {
	return AggregateMatching(path, nil)
}

// AggregateMatching is Aggregate restricted to regular files whose base name
// satisfies match. Directories are always descended into regardless of their
// own names; only matching files within them are counted. A nil match
// accepts every file.
func AggregateMatching(path string, match func(name string) bool) Stats {
	info, err := os.Lstat(path)
	if err != nil {
		return Stats{}
	}
	if !info.IsDir() {
		if !info.Mode().IsRegular() {
			return Stats{}
		}
		if match != nil && !match(info.Name()) {
			return Stats{}
		}
		return Stats{Bytes: info.Size(), Files: 1}
	}

	var bytes, files, dirs atomic.Int64
	conf := fastwalk.Config{Follow: false}
	// Walk errors are per-entry; returning nil keeps the walk going so a
	// single unreadable entry cannot abort the whole aggregation.
	_ = fastwalk.Walk(&conf, path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if p != path {
				dirs.Add(1)
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if match != nil && !match(d.Name()) {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return nil
		}
		files.Add(1)
		bytes.Add(fi.Size())
		return nil
	})

	return Stats{Bytes: bytes.Load(), Files: files.Load(), Dirs: dirs.Load()}
}
