//go:build !windows && !darwin && !linux

package trash

// empty reports that no trash facility exists on this platform.
func empty(bool) error {
	return ErrNotSupported
}
