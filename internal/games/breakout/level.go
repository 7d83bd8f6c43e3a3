// Package breakout implements a single-wall brick breaker.
package breakout

import "github.com/vovakirdan/neon-arcade/internal/core"

// Wall layout in surface units.
const (
	wallSide = 50 // left and right margin of the wall
	wallTop  = 70
	rowPitch = 26
	brickH   = 18
	brickGap = 6
)

// Brick is one destructible block.
type Brick struct {
	core.Box
	Row   int
	Alive bool
}

// Level is the brick wall.
type Level struct {
	Rows, Cols int
	Bricks     []Brick
}

// NewLevel lays out rows x cols bricks across a surface of width w.
func NewLevel(rows, cols int, w float64) *Level {
	rows, cols = max(rows, 1), max(cols, 1)
	pitch := (w - 2*wallSide) / float64(cols)
	l := &Level{Rows: rows, Cols: cols, Bricks: make([]Brick, 0, rows*cols)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			l.Bricks = append(l.Bricks, Brick{
				Box: core.Box{
					X: wallSide + float64(c)*pitch,
					Y: wallTop + float64(r)*rowPitch,
					W: pitch - brickGap,
					H: brickH,
				},
				Row:   r,
				Alive: true,
			})
		}
	}
	return l
}

// CountAlive returns the number of remaining bricks.
func (l *Level) CountAlive() int {
	count := 0
	for _, b := range l.Bricks {
		if b.Alive {
			count++
		}
	}
	return count
}

// Hit clears the first alive brick containing (x, y).
func (l *Level) Hit(x, y float64) bool {
	for i := range l.Bricks {
		b := &l.Bricks[i]
		if b.Alive && b.Contains(x, y) {
			b.Alive = false
			return true
		}
	}
	return false
}
