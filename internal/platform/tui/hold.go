package tui

import (
	"slices"
	"time"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// holdTracker synthesizes key releases. Terminals only report presses and
// auto-repeat, so a key counts as held until hold has passed since its
// last press.
type holdTracker struct {
	hold  time.Duration
	until map[core.Key]time.Time
}

func newHoldTracker(hold time.Duration) *holdTracker {
	if hold <= 0 {
		hold = 120 * time.Millisecond
	}
	return &holdTracker{hold: hold, until: make(map[core.Key]time.Time)}
}

// Press extends k's hold and reports whether k was up before.
func (h *holdTracker) Press(k core.Key, now time.Time) bool {
	_, held := h.until[k]
	h.until[k] = now.Add(h.hold)
	return !held
}

// Expire forgets and returns the keys whose hold ran out, in key order.
func (h *holdTracker) Expire(now time.Time) []core.Key {
	var released []core.Key
	for k, t := range h.until {
		if !now.Before(t) {
			released = append(released, k)
			delete(h.until, k)
		}
	}
	slices.Sort(released)
	return released
}

// Reset forgets every held key.
func (h *holdTracker) Reset() {
	clear(h.until)
}
