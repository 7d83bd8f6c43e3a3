// Package blockpuzzle implements a place-and-clear block puzzle: pick a
// shape from the bank, aim it with the arrows and drop it on the board.
package blockpuzzle

import (
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/games/grid"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

const (
	size        = 10
	cell        = 30
	boardOY     = 60
	placeScore  = 3
	lineScore   = 10
	filledValue = 1
)

var bank = []grid.Shape{
	{{1, 1, 1}},
	{{1}, {1}, {1}},
	{{1, 1}, {1, 1}},
	{{1, 1, 1}, {0, 1, 0}},
	{{1, 1, 0}, {0, 1, 1}},
}

// Game implements Block Puzzle.
type Game struct {
	score core.Score
	board *grid.Grid
	held  grid.Shape // nil when no shape is picked
	cx    int
	cy    int
}

// New creates a Block Puzzle game.
func New() *Game {
	return &Game{board: grid.New(size, size)}
}

func init() {
	registry.Register("blockpuzzle", func(config.Config) registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "blockpuzzle" }

// Title returns the display name.
func (g *Game) Title() string { return "Block Puzzle" }

// Score returns the current score.
func (g *Game) Score() int { return g.score.Int() }

// Reset empties the board and the hand.
func (g *Game) Reset(*core.Env) {
	g.score = 0
	g.board.Clear()
	g.held = nil
	g.cx, g.cy = size/2, size/2
}

// Update picks, rotates, aims and places the held shape.
func (g *Game) Update(env *core.Env, _ float64) {
	if env.Paused() {
		return
	}

	in := env.Input
	if in.Pressed(core.KeySpace) && g.held == nil {
		g.held = bank[env.Rand.Intn(len(bank))]
	}
	if in.Pressed(core.KeyUp, core.KeyW) && g.held != nil {
		g.held = g.held.RotateCCW()
	}

	dx, dy := in.Axis()
	g.cx, g.cy = size/2+dx, size/2+dy

	if in.Pressed(core.KeyX) && g.held != nil && !g.board.Collides(g.held, g.cx, g.cy) {
		g.place()
	}
}

// place merges the held shape, then removes full rows and shifts the rows
// above them down.
func (g *Game) place() {
	g.board.Merge(g.held, g.cx, g.cy, filledValue)
	g.held = nil

	lines := g.board.ClearFullRows()
	g.score += core.Score(lines*lineScore + placeScore)
}

// Draw renders the board and the held shape at the cursor.
func (g *Game) Draw(env *core.Env) {
	c := env.Canvas
	ox := (env.W - size*cell) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			color := core.ColorDim
			if g.board.Get(x, y) != 0 {
				color = core.ColorCyan
			}
			c.Rect(ox+float64(x*cell)+1, boardOY+float64(y*cell)+1, cell-2, cell-2, color, color)
		}
	}
	if g.held == nil {
		c.Text("SPACE: pick a shape", env.W/2, boardOY+size*cell+30, 16)
		return
	}
	color := core.ColorMagenta
	if g.board.Collides(g.held, g.cx, g.cy) {
		color = core.ColorRed
	}
	g.held.Cells(g.cx, g.cy, func(x, y int) {
		c.Rect(ox+float64(x*cell)+4, boardOY+float64(y*cell)+4, cell-8, cell-8, color, color)
	})
}
