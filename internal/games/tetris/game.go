// Package tetris implements the falling-block line clearer.
package tetris

import (
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/games/grid"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

// Board layout.
const (
	Cols    = 10
	Rows    = 20
	cell    = 22
	boardOY = 50
)

// Game implements Tetris.
type Game struct {
	cfg   config.TetrisConfig
	score core.Score
	board *grid.Grid
	piece Piece
	fall  float64 // time accumulated toward the next drop
}

// New creates a Tetris game.
func New(cfg config.TetrisConfig) *Game {
	return &Game{cfg: cfg, board: grid.New(Rows, Cols)}
}

func init() {
	registry.Register("tetris", func(cfg config.Config) registry.Game {
		return New(cfg.Tetris)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "tetris" }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris" }

// Score returns the current score.
func (g *Game) Score() int { return g.score.Int() }

// Reset empties the board and spawns the first piece.
func (g *Game) Reset(env *core.Env) {
	g.score = 0
	g.fall = 0
	g.board.Clear()
	g.spawn(env)
}

// spawn puts a random piece at the top. A piece that collides immediately
// ends the game.
func (g *Game) spawn(env *core.Env) {
	kind := env.Rand.Intn(len(tetrominoes))
	g.piece = Piece{Shape: tetrominoes[kind], Kind: kind, X: Cols/2 - 1, Y: 0}
	if g.board.Collides(g.piece.Shape, g.piece.X, g.piece.Y) {
		env.GameOver(g.Score())
	}
}

// try moves or rotates the piece if the result fits.
func (g *Game) try(shape grid.Shape, x, y int) bool {
	if g.board.Collides(shape, x, y) {
		return false
	}
	g.piece.Shape, g.piece.X, g.piece.Y = shape, x, y
	return true
}

// Update shifts and rotates on key presses and drops the piece on its timer.
func (g *Game) Update(env *core.Env, dt float64) {
	if env.Paused() {
		return
	}

	p := g.piece
	dx, _ := env.Input.PressedAxis()
	if dx != 0 {
		g.try(p.Shape, p.X+dx, p.Y)
	}
	if env.Input.Pressed(core.KeyUp, core.KeyW) {
		g.try(g.piece.Shape.Rotate(), g.piece.X, g.piece.Y)
	}

	g.fall += dt
	if env.Input.Down() {
		g.fall += g.cfg.SoftDrop
	}
	if g.fall <= g.cfg.FallEvery {
		return
	}
	g.fall = 0

	p = g.piece
	if g.try(p.Shape, p.X, p.Y+1) {
		return
	}
	g.lock(env)
}

// lock merges the piece, clears full rows and spawns the next piece.
func (g *Game) lock(env *core.Env) {
	p := g.piece
	g.board.Merge(p.Shape, p.X, p.Y, p.Kind+1)
	lines := g.board.ClearFullRows()
	g.score += core.Score(lines * g.cfg.LineScore)
	g.spawn(env)
}

// Draw renders the well, the settled cells and the falling piece.
func (g *Game) Draw(env *core.Env) {
	c := env.Canvas
	ox := (env.W - Cols*cell) / 2
	c.Rect(ox-2, boardOY-2, Cols*cell+4, Rows*cell+4, core.ColorDim, core.ColorDefault)
	drawCell := func(x, y, v int) {
		color := core.TokenColor(v)
		c.Rect(ox+float64(x*cell)+1, boardOY+float64(y*cell)+1, cell-2, cell-2, color, color)
	}
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if v := g.board.Get(x, y); v != 0 {
				drawCell(x, y, v)
			}
		}
	}
	g.piece.Shape.Cells(g.piece.X, g.piece.Y, func(x, y int) {
		drawCell(x, y, g.piece.Kind+1)
	})
}
