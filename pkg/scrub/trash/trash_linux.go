//go:build linux

package trash

import (
	"context"
	"fmt"
	"os/exec"
)

// empty empties the XDG trash using whichever desktop tool is available:
// gio (GNOME/GTK) first, then trash-cli. With neither installed there is
// no safe way to locate every mount's trash, so this reports
// ErrNotSupported.
func empty(dryRun bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if gioPath, err := exec.LookPath("gio"); err == nil {
		if dryRun {
			return nil
		}
		cmd := exec.CommandContext(ctx, gioPath, "trash", "--empty")
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("emptying trash via gio: %w", err)
		}
		return nil
	}

	if trashPath, err := exec.LookPath("trash-empty"); err == nil {
		if dryRun {
			return nil
		}
		cmd := exec.CommandContext(ctx, trashPath)
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("emptying trash via trash-cli: %w", err)
		}
		return nil
	}

	return fmt.Errorf("%w: no trash utility found (tried gio, trash-empty)", ErrNotSupported)
}
