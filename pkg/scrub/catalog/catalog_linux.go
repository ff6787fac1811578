//go:build linux

package catalog

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/wxlv/scrub/pkg/scrub/target"
)

// platformTargets returns the Linux-specific cleanup targets.
func platformTargets() []*target.Target {
	return []*target.Target{
		{
			ID:          "thumbnails",
			Name:        "Thumbnail cache",
			Description: "Freedesktop thumbnail cache",
			Rule:        target.WholeDir{Path: filepath.Join(xdg.CacheHome, "thumbnails")},
			Enabled:     false,
		},
		{
			ID:          "chrome_cache",
			Name:        "Chrome cache",
			Description: "Google Chrome browser cache",
			Rule: target.DirSet{Paths: []string{
				filepath.Join(xdg.CacheHome, "google-chrome", "Default", "Cache"),
				filepath.Join(xdg.CacheHome, "chromium", "Default", "Cache"),
			}},
			Enabled: false,
		},
	}
}

// npmCachePaths returns the npm cache locations on Linux.
func npmCachePaths(homeDir string) []string {
	return []string{filepath.Join(homeDir, ".npm", "_cacache")}
}
