//go:build !linux && !darwin && !windows

package catalog

import (
	"path/filepath"

	"github.com/wxlv/scrub/pkg/scrub/target"
)

// platformTargets returns no extra targets on unrecognized platforms; the
// cross-platform temp and cache targets still apply.
func platformTargets() []*target.Target {
	return nil
}

// npmCachePaths returns the conventional npm cache location.
func npmCachePaths(homeDir string) []string {
	return []string{filepath.Join(homeDir, ".npm", "_cacache")}
}
