// Package drmario implements a capsule dropper that clears horizontal
// triples.
package drmario

import (
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/games/grid"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

const (
	cols        = 8
	rows        = 16
	cell        = 24
	boardOY     = 40
	fallEvery   = 0.7
	softDrop    = 0.25
	tripleScore = 6
	colors      = 3
)

var (
	horizontal = grid.Shape{{1, 1}}
	vertical   = grid.Shape{{1}, {1}}
)

// Game implements Dr. Mario.
type Game struct {
	score core.Score
	board *grid.Grid

	capsule grid.Shape
	color   int
	x, y    int
	fall    float64
}

// New creates a Dr. Mario game.
func New() *Game {
	return &Game{board: grid.New(rows, cols)}
}

func init() {
	registry.Register("drmario", func(config.Config) registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "drmario" }

// Title returns the display name.
func (g *Game) Title() string { return "Dr. Mario" }

// Score returns the current score.
func (g *Game) Score() int { return g.score.Int() }

// Reset empties the bottle and spawns a capsule.
func (g *Game) Reset(env *core.Env) {
	g.score = 0
	g.fall = 0
	g.board.Clear()
	g.spawn(env)
}

func (g *Game) spawn(env *core.Env) {
	g.capsule = horizontal
	g.color = 1 + env.Rand.Intn(colors)
	g.x, g.y = cols/2-1, 0
	if g.board.Collides(g.capsule, g.x, g.y) {
		env.GameOver(g.Score())
	}
}

// Update shifts and turns the capsule on key presses and drops it on its timer.
func (g *Game) Update(env *core.Env, dt float64) {
	if env.Paused() {
		return
	}

	if dx, _ := env.Input.PressedAxis(); dx != 0 && !g.board.Collides(g.capsule, g.x+dx, g.y) {
		g.x += dx
	}
	if env.Input.Pressed(core.KeyUp, core.KeyW) && !g.board.Collides(vertical, g.x, g.y) {
		g.capsule = vertical
	}

	g.fall += dt
	if env.Input.Down() {
		g.fall += softDrop
	}
	if g.fall <= fallEvery {
		return
	}
	g.fall = 0

	if !g.board.Collides(g.capsule, g.x, g.y+1) {
		g.y++
		return
	}
	g.board.Merge(g.capsule, g.x, g.y, g.color)
	g.score += core.Score(clearTriples(g.board) * tripleScore)
	g.spawn(env)
}

// clearTriples scans each row left to right and empties every run of three
// occupied cells, regardless of color. It returns the number of triples.
func clearTriples(b *grid.Grid) int {
	n := 0
	for y := 0; y < b.Rows; y++ {
		for x := 0; x+2 < b.Cols; x++ {
			if b.Get(x, y) != 0 && b.Get(x+1, y) != 0 && b.Get(x+2, y) != 0 {
				b.Set(x, y, 0)
				b.Set(x+1, y, 0)
				b.Set(x+2, y, 0)
				n++
			}
		}
	}
	return n
}

// Draw renders the bottle and the falling capsule.
func (g *Game) Draw(env *core.Env) {
	c := env.Canvas
	ox := (env.W - cols*cell) / 2
	c.Rect(ox-2, boardOY-2, cols*cell+4, rows*cell+4, core.ColorDim, core.ColorDefault)
	drawCell := func(x, y, v int) {
		color := core.TokenColor(v)
		c.Rect(ox+float64(x*cell)+2, boardOY+float64(y*cell)+2, cell-4, cell-4, color, color)
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if v := g.board.Get(x, y); v != 0 {
				drawCell(x, y, v)
			}
		}
	}
	g.capsule.Cells(g.x, g.y, func(x, y int) { drawCell(x, y, g.color) })
}
