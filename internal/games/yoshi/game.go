// Package yoshi implements a row-flipping puzzle: toggle rows until they
// fill up and clear.
package yoshi

import (
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/games/grid"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

const (
	cols     = 6
	rows     = 8
	cell     = 28
	boardOY  = 60
	rowScore = 8
)

// Game implements Yoshi.
type Game struct {
	score core.Score
	board *grid.Grid
}

// New creates a Yoshi game.
func New() *Game {
	return &Game{board: grid.New(rows, cols)}
}

func init() {
	registry.Register("yoshi", func(config.Config) registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "yoshi" }

// Title returns the display name.
func (g *Game) Title() string { return "Yoshi" }

// Score returns the current score.
func (g *Game) Score() int { return g.score.Int() }

// Reset fills about half the board at random.
func (g *Game) Reset(env *core.Env) {
	g.score = 0
	g.board.Fill(func(int, int) int {
		if env.Chance(0.5) {
			return 1
		}
		return 0
	})
}

// Update toggles a random row on Space and clears full rows.
func (g *Game) Update(env *core.Env, _ float64) {
	if env.Paused() {
		return
	}

	if env.Input.Pressed(core.KeySpace) {
		y := env.Rand.Intn(rows)
		for x := 0; x < cols; x++ {
			g.board.Set(x, y, 1-g.board.Get(x, y))
		}
	}

	for y := 0; y < rows; y++ {
		if g.board.RowFull(y) {
			g.board.ClearRow(y)
			g.score += rowScore
		}
	}
}

// Draw renders the board.
func (g *Game) Draw(env *core.Env) {
	c := env.Canvas
	ox := (env.W - cols*cell) / 2
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			color := core.ColorDim
			if g.board.Get(x, y) != 0 {
				color = core.ColorGreen
			}
			c.Rect(ox+float64(x*cell)+1, boardOY+float64(y*cell)+1, cell-2, cell-2, color, color)
		}
	}
}
