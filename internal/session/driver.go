package session

import (
	"context"
	"time"
)

// DefaultMaxDelta caps one frame's dt in seconds.
const DefaultMaxDelta = 0.033

// Framer advances one frame.
type Framer interface {
	Frame(dt float64)
}

// Driver turns wall-clock ticks into clamped frame deltas.
type Driver struct {
	target   Framer
	maxDelta float64
	last     time.Time
	started  bool
}

// NewDriver creates a driver. A non-positive maxDelta uses DefaultMaxDelta.
func NewDriver(target Framer, maxDelta float64) *Driver {
	if maxDelta <= 0 {
		maxDelta = DefaultMaxDelta
	}
	return &Driver{target: target, maxDelta: maxDelta}
}

// ClampDelta bounds dt to [0, limit].
func ClampDelta(dt, limit float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > limit {
		return limit
	}
	return dt
}

// Tick runs one frame using the time since the previous tick. The first
// tick runs with dt 0.
func (d *Driver) Tick(now time.Time) {
	dt := 0.0
	if d.started {
		dt = now.Sub(d.last).Seconds()
	}
	d.started = true
	d.last = now
	d.target.Frame(ClampDelta(dt, d.maxDelta))
}

// Step runs one frame with an explicit elapsed time.
func (d *Driver) Step(elapsed time.Duration) {
	d.target.Frame(ClampDelta(elapsed.Seconds(), d.maxDelta))
}

// Reset forgets the previous tick, so the next one runs with dt 0.
func (d *Driver) Reset() {
	d.started = false
}

// Run ticks every interval until ctx is done.
func (d *Driver) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			d.Tick(now)
		}
	}
}
