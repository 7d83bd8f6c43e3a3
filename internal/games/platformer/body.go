// Package platformer holds the gravity and landing rules shared by the
// jumping variants.
package platformer

import "github.com/vovakirdan/neon-arcade/internal/core"

// Body is a box with a per-frame velocity.
type Body struct {
	core.Box
	VX, VY   float64
	OnGround bool
}

// Fall applies gravity and moves the body vertically. It clears OnGround;
// Land sets it again when the body settles on a platform.
func (b *Body) Fall(gravity float64) {
	b.VY += gravity
	b.Y += b.VY
	b.OnGround = false
}

// Jump launches the body with velocity v if it is standing on something.
func (b *Body) Jump(v float64) bool {
	if !b.OnGround {
		return false
	}
	b.VY = v
	b.OnGround = false
	return true
}

// OverPlatform reports whether the body's horizontal span overlaps p.
func (b *Body) OverPlatform(p core.Box) bool {
	return b.X+b.W > p.X && b.X < p.X+p.W
}

// Landing returns the first platform the falling body's feet are within
// depth units below the top of.
func (b *Body) Landing(platforms []core.Box, depth float64) (core.Box, bool) {
	if b.VY <= 0 {
		return core.Box{}, false
	}
	feet := b.Y + b.H
	for _, p := range platforms {
		if b.OverPlatform(p) && feet >= p.Y && feet <= p.Y+depth {
			return p, true
		}
	}
	return core.Box{}, false
}

// Land settles a falling body on the platform under its feet.
func (b *Body) Land(platforms []core.Box, depth float64) bool {
	p, ok := b.Landing(platforms, depth)
	if !ok {
		return false
	}
	b.Y = p.Y - b.H
	b.VY = 0
	b.OnGround = true
	return true
}

// DrawPlatforms emits one rect per platform.
func DrawPlatforms(c core.Canvas, platforms []core.Box, color core.Color) {
	for _, p := range platforms {
		c.Rect(p.X, p.Y, p.W, p.H, color, color)
	}
}
