// Package trash empties the platform trash or recycle bin. It is a thin
// wrapper over platform facilities; there is no unified trash on every
// system, so unsupported platforms report ErrNotSupported, which callers
// should treat as informational rather than fatal.
package trash

import (
	"errors"
	"time"
)

// commandTimeout is the maximum time to wait for external trash commands.
const commandTimeout = 30 * time.Second

// ErrNotSupported indicates the platform has no trash facility to empty.
var ErrNotSupported = errors.New("trash emptying is not supported on this platform")

// Empty empties the system trash. With dryRun set it verifies support and
// performs no deletion. There is no per-item reporting: the operation is a
// single opaque call into the platform.
func Empty(dryRun bool) error {
	return empty(dryRun)
}
