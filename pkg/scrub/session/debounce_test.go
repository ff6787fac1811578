package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncerFirstEventAllowed(t *testing.T) {
	d := NewDebouncer(DefaultCooldown)
	assert.True(t, d.Allow(time.Now()))
}

func TestDebouncerCooldownWindow(t *testing.T) {
	d := NewDebouncer(150 * time.Millisecond)
	base := time.Now()

	assert.True(t, d.Allow(base))
	assert.False(t, d.Allow(base.Add(50*time.Millisecond)))
	assert.True(t, d.Allow(base.Add(250*time.Millisecond)))
}

func TestDebouncerRejectedEventDoesNotResetWindow(t *testing.T) {
	d := NewDebouncer(150 * time.Millisecond)
	base := time.Now()

	assert.True(t, d.Allow(base))
	assert.False(t, d.Allow(base.Add(100*time.Millisecond)))
	// 160ms after the last ACCEPTED event, not the rejected one.
	assert.True(t, d.Allow(base.Add(160*time.Millisecond)))
}

func TestDebouncerExactBoundaryAllowed(t *testing.T) {
	d := NewDebouncer(150 * time.Millisecond)
	base := time.Now()

	assert.True(t, d.Allow(base))
	assert.True(t, d.Allow(base.Add(150*time.Millisecond)))
}

func TestDebouncerDefaultsCooldown(t *testing.T) {
	d := NewDebouncer(0)
	base := time.Now()

	assert.True(t, d.Allow(base))
	assert.False(t, d.Allow(base.Add(149*time.Millisecond)))
	assert.True(t, d.Allow(base.Add(301*time.Millisecond)))
}
