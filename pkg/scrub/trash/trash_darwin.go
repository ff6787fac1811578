//go:build darwin

package trash

import (
	"context"
	"fmt"
	"os/exec"
)

// empty empties the macOS Trash through Finder, the same mechanism the
// desktop uses.
func empty(dryRun bool) error {
	if dryRun {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "osascript", "-e",
		`tell application "Finder" to empty trash`)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("emptying Trash via Finder: %w", err)
	}
	return nil
}
