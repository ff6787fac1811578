// Package catalog builds the ordered, platform-conditioned list of cleanup
// targets available on the current host. The session treats it as an opaque
// factory: every call returns a freshly constructed list with default
// enabled flags, so a reset picks up platform state changes.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/wxlv/scrub/pkg/scrub/config"
	"github.com/wxlv/scrub/pkg/scrub/target"
)

// Build returns the cleanup targets for this host, in display order.
// Conservative targets (system temp, stray temp files) are enabled by
// default; anything that could hold data the user cares about starts
// disabled. Custom targets from the configuration are appended last.
func Build(custom []config.CustomTarget) []*target.Target {
	tempDir := os.TempDir()

	targets := []*target.Target{
		{
			ID:          "temp_dir",
			Name:        "Temporary files",
			Description: fmt.Sprintf("System temp directory: %s", tempDir),
			Rule:        target.WholeDir{Path: tempDir},
			Enabled:     true,
		},
	}

	targets = append(targets, platformTargets()...)

	targets = append(targets, &target.Target{
		ID:          "vscode_cache",
		Name:        "VS Code cache",
		Description: "Visual Studio Code cached data",
		Rule:        target.WholeDir{Path: filepath.Join(xdg.CacheHome, "Code")},
		Enabled:     false,
	})

	if homeDir, err := os.UserHomeDir(); err == nil {
		targets = append(targets, &target.Target{
			ID:          "cargo_cache",
			Name:        "Cargo registry cache",
			Description: "Downloaded Rust crate archives",
			Rule:        target.WholeDir{Path: filepath.Join(homeDir, ".cargo", "registry", "cache")},
			Enabled:     false,
		})
		targets = append(targets, &target.Target{
			ID:          "npm_cache",
			Name:        "npm cache",
			Description: "Node.js package manager cache",
			Rule:        target.DirSet{Paths: npmCachePaths(homeDir)},
			Enabled:     false,
		})
	}

	targets = append(targets, &target.Target{
		ID:          "temp_patterns",
		Name:        "Stray temp files",
		Description: fmt.Sprintf("Files named like temporaries under %s", tempDir),
		Rule:        target.TempPattern{Path: tempDir},
		Enabled:     true,
	})

	for _, c := range custom {
		t, err := fromCustom(c)
		if err != nil {
			continue
		}
		targets = append(targets, t)
	}

	return targets
}

// fromCustom converts a configured custom target. Entries without an id or
// path are rejected.
func fromCustom(c config.CustomTarget) (*target.Target, error) {
	if c.ID == "" || c.Path == "" {
		return nil, fmt.Errorf("custom target needs id and path")
	}
	path, err := config.ExpandPath(c.Path)
	if err != nil {
		return nil, err
	}

	name := c.Name
	if name == "" {
		name = c.ID
	}
	desc := c.Description
	if desc == "" {
		desc = fmt.Sprintf("Custom target: %s", path)
	}

	var rule target.Rule
	if len(c.Patterns) > 0 {
		rule = target.FilePattern{Path: path, Patterns: c.Patterns}
	} else {
		rule = target.WholeDir{Path: path}
	}

	return &target.Target{
		ID:          c.ID,
		Name:        name,
		Description: desc,
		Rule:        rule,
		Enabled:     c.Enabled,
	}, nil
}
