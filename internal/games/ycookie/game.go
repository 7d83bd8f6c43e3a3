// Package ycookie implements a swap-and-match puzzle: swap a cookie with its
// right neighbor and horizontal runs of three or more crumble.
package ycookie

import (
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/games/grid"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

const (
	size    = 7
	kinds   = 3
	cell    = 36
	boardOY = 60
)

// Game implements Yoshi's Cookie.
type Game struct {
	score  core.Score
	board  *grid.Grid
	cursor grid.Point
}

// New creates a Yoshi's Cookie game.
func New() *Game {
	return &Game{board: grid.New(size, size)}
}

func init() {
	registry.Register("ycookie", func(config.Config) registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "ycookie" }

// Title returns the display name.
func (g *Game) Title() string { return "Yoshi's Cookie" }

// Score returns the current score.
func (g *Game) Score() int { return g.score.Int() }

// Reset deals a random board and centers the cursor.
func (g *Game) Reset(env *core.Env) {
	g.score = 0
	g.board.Clear()
	g.board.Refill(env.Rand, kinds)
	g.cursor = grid.Point{X: size / 2, Y: size / 2}
}

// Update moves the cursor and swaps on Space.
func (g *Game) Update(env *core.Env, _ float64) {
	if env.Paused() {
		return
	}

	dx, dy := env.Input.PressedAxis()
	g.cursor.X = core.Clamp(g.cursor.X+dx, 0, size-1)
	g.cursor.Y = core.Clamp(g.cursor.Y+dy, 0, size-1)

	if env.Input.Pressed(core.KeySpace) {
		g.swap(env)
	}
}

func (g *Game) swap(env *core.Env) {
	right := grid.Point{X: min(g.cursor.X+1, size-1), Y: g.cursor.Y}
	g.board.Swap(g.cursor, right)
	g.score += core.Score(g.board.Resolve(env.Rand, kinds, true, false))
}

// Draw renders the board and the cursor outline.
func (g *Game) Draw(env *core.Env) {
	ox := (env.W - size*cell) / 2
	drawBoard(env.Canvas, g.board, ox, boardOY)
	drawCursor(env.Canvas, g.cursor, ox, boardOY)
}

func drawBoard(c core.Canvas, b *grid.Grid, ox, oy float64) {
	for y := 0; y < b.Rows; y++ {
		for x := 0; x < b.Cols; x++ {
			color := core.TokenColor(b.Get(x, y))
			c.Rect(ox+float64(x*cell), oy+float64(y*cell), cell-6, cell-6, color, color)
		}
	}
}

func drawCursor(c core.Canvas, p grid.Point, ox, oy float64) {
	x0, y0 := ox+float64(p.X*cell), oy+float64(p.Y*cell)
	x1, y1 := x0+cell, y0+cell
	c.Line(x0, y0, x1, y0, core.ColorMagenta)
	c.Line(x0, y1, x1, y1, core.ColorMagenta)
	c.Line(x0, y0, x0, y1, core.ColorMagenta)
	c.Line(x1, y0, x1, y1, core.ColorMagenta)
}
