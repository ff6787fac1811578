package session

import "time"

// DefaultCooldown is the minimum interval between accepted repeated inputs.
const DefaultCooldown = 150 * time.Millisecond

// Debouncer gates noisy, auto-repeatable inputs (navigation, toggles) to
// one accepted event per cooldown window, so terminal key auto-repeat
// cannot corrupt the selection state. One-shot commands (scan, clean,
// reset, quit) do not need it: the session phase already makes them
// idempotent.
type Debouncer struct {
	cooldown time.Duration
	last     time.Time
}

// NewDebouncer creates a debouncer. A non-positive cooldown uses
// DefaultCooldown.
func NewDebouncer(cooldown time.Duration) *Debouncer {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Debouncer{cooldown: cooldown}
}

// Allow reports whether an event observed at now should be processed.
// The first event is always allowed; later events are allowed once the
// cooldown has elapsed since the last accepted event.
func (d *Debouncer) Allow(now time.Time) bool {
	if !d.last.IsZero() && now.Sub(d.last) < d.cooldown {
		return false
	}
	d.last = now
	return true
}
