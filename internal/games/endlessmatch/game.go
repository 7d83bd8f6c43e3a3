// Package endlessmatch implements a timed match-3 where runs clear both
// across and down.
package endlessmatch

import (
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/games/grid"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

const (
	size      = 8
	kinds     = 4
	cell      = 36
	boardOY   = 60
	timeScore = 2 // per second
)

// Game implements Endless Match.
type Game struct {
	score  core.Score
	board  *grid.Grid
	cursor grid.Point
}

// New creates an Endless Match game.
func New() *Game {
	return &Game{board: grid.New(size, size)}
}

func init() {
	registry.Register("endlessmatch", func(config.Config) registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "endlessmatch" }

// Title returns the display name.
func (g *Game) Title() string { return "Endless Match" }

// Score returns the current score.
func (g *Game) Score() int { return g.score.Int() }

// Reset deals a random board.
func (g *Game) Reset(env *core.Env) {
	g.score = 0
	g.board.Clear()
	g.board.Refill(env.Rand, kinds)
	g.cursor = grid.Point{X: 3, Y: 3}
}

// Update moves the cursor, swaps on Space and accrues time score.
func (g *Game) Update(env *core.Env, dt float64) {
	if env.Paused() {
		return
	}

	dx, dy := env.Input.PressedAxis()
	g.cursor.X = core.Clamp(g.cursor.X+dx, 0, size-1)
	g.cursor.Y = core.Clamp(g.cursor.Y+dy, 0, size-1)

	if env.Input.Pressed(core.KeySpace) {
		g.board.Swap(g.cursor, grid.Point{X: min(g.cursor.X+1, size-1), Y: g.cursor.Y})
		g.score += core.Score(g.board.Resolve(env.Rand, kinds, true, true))
	}

	g.score += core.Score(dt * timeScore)
}

// Draw renders the board and the cursor.
func (g *Game) Draw(env *core.Env) {
	c := env.Canvas
	ox := (env.W - size*cell) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			color := core.TokenColor(g.board.Get(x, y))
			c.Rect(ox+float64(x*cell), boardOY+float64(y*cell), cell-6, cell-6, color, color)
		}
	}
	x0 := ox + float64(g.cursor.X*cell)
	y0 := boardOY + float64(g.cursor.Y*cell)
	c.Rect(x0-2, y0-2, cell-2, cell-2, core.ColorMagenta, core.ColorDefault)
}
