package breakout

import "github.com/vovakirdan/neon-arcade/internal/core"

// wallMargin is the distance from the surface edge where the ball reflects.
const wallMargin = 8

// Ball is the ball state, centered on (X, Y).
type Ball struct {
	X, Y   float64
	VX, VY float64
	R      float64
}

// Move updates the ball position by its per-frame velocity.
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// ReflectWalls bounces the ball off the side walls and the ceiling.
func (b *Ball) ReflectWalls(w float64) {
	if b.X < wallMargin || b.X > w-wallMargin {
		b.VX = -b.VX
	}
	if b.Y < wallMargin {
		b.VY = -b.VY
	}
}

// Paddle is the player's paddle.
type Paddle struct {
	core.Box
	Speed float64
}

// Steer moves the paddle by dir*Speed and keeps it inside the walls.
func (p *Paddle) Steer(dir int, w float64) {
	p.X += float64(dir) * p.Speed
	p.X = core.ClampF(p.X, wallMargin, w-p.W-wallMargin)
}

// Deflect reflects the ball upward if its center is inside the paddle.
// The horizontal velocity gains spin proportional to the contact offset
// from the paddle center.
func (p *Paddle) Deflect(b *Ball, spin float64) bool {
	if !p.Contains(b.X, b.Y) {
		return false
	}
	if b.VY > 0 {
		b.VY = -b.VY
	}
	off := (b.X - p.CenterX()) / p.W
	b.VX += off * spin
	return true
}
