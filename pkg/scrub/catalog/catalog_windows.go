//go:build windows

package catalog

import (
	"os"
	"path/filepath"

	"github.com/wxlv/scrub/pkg/scrub/target"
)

// platformTargets returns the Windows-specific cleanup targets.
func platformTargets() []*target.Target {
	targets := []*target.Target{
		{
			ID:          "prefetch",
			Name:        "Windows Prefetch",
			Description: "Application launch prefetch cache",
			Rule:        target.WholeDir{Path: `C:\Windows\Prefetch`},
			Enabled:     true,
		},
	}

	localAppData := os.Getenv("LOCALAPPDATA")
	if localAppData == "" {
		return targets
	}

	targets = append(targets,
		&target.Target{
			ID:          "chrome_cache",
			Name:        "Chrome cache",
			Description: "Google Chrome browser cache",
			Rule:        target.WholeDir{Path: filepath.Join(localAppData, "Google", "Chrome", "User Data", "Default", "Cache")},
			Enabled:     false,
		},
		&target.Target{
			ID:          "thumbnail_cache",
			Name:        "Thumbnail cache",
			Description: "Explorer thumbnail cache files",
			Rule:        target.FilePattern{Path: filepath.Join(localAppData, "Microsoft", "Windows", "Explorer"), Patterns: []string{"thumbcache_*.db", "iconcache_*.db"}},
			Enabled:     false,
		},
		&target.Target{
			ID:          "recent_docs",
			Name:        "Recent documents",
			Description: "Recently accessed document shortcuts",
			Rule:        target.WholeDir{Path: filepath.Join(localAppData, "Microsoft", "Windows", "Recent")},
			Enabled:     false,
		},
	)
	return targets
}

// npmCachePaths returns the npm cache locations on Windows.
func npmCachePaths(homeDir string) []string {
	paths := []string{filepath.Join(homeDir, "AppData", "Roaming", "npm-cache")}
	if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
		paths = append(paths, filepath.Join(localAppData, "npm-cache"))
	}
	return paths
}
