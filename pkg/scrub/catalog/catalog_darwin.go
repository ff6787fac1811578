//go:build darwin

package catalog

import (
	"os"
	"path/filepath"

	"github.com/wxlv/scrub/pkg/scrub/target"
)

// platformTargets returns the macOS-specific cleanup targets.
func platformTargets() []*target.Target {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	caches := filepath.Join(homeDir, "Library", "Caches")

	return []*target.Target{
		{
			ID:          "chrome_cache",
			Name:        "Chrome cache",
			Description: "Google Chrome browser cache",
			Rule:        target.WholeDir{Path: filepath.Join(caches, "Google", "Chrome", "Default", "Cache")},
			Enabled:     false,
		},
		{
			ID:          "xcode_derived",
			Name:        "Xcode DerivedData",
			Description: "Xcode build products and indexes",
			Rule:        target.WholeDir{Path: filepath.Join(homeDir, "Library", "Developer", "Xcode", "DerivedData")},
			Enabled:     false,
		},
	}
}

// npmCachePaths returns the npm cache locations on macOS.
func npmCachePaths(homeDir string) []string {
	return []string{filepath.Join(homeDir, ".npm", "_cacache")}
}
