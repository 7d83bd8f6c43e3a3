// Package pipemania implements an endless pipe flow: the water follows the
// tile arrows and the player can only turn the center tile.
package pipemania

import (
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/games/grid"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

const (
	size     = 8
	cell     = 50
	boardOY  = 60
	flowRate = 2 // steps per second
)

// Tile directions, clockwise from right.
const (
	dirRight = iota
	dirDown
	dirLeft
	dirUp
	dirCount
)

var steps = [dirCount]grid.Point{{X: 1}, {Y: 1}, {X: -1}, {Y: -1}}

// Game implements Pipe Mania.
type Game struct {
	score   core.Score
	tiles   *grid.Grid
	flow    []grid.Point
	pointer float64
}

// New creates a Pipe Mania game.
func New() *Game {
	return &Game{tiles: grid.New(size, size)}
}

func init() {
	registry.Register("pipemania", func(config.Config) registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "pipemania" }

// Title returns the display name.
func (g *Game) Title() string { return "Pipe Mania" }

// Score returns the current score.
func (g *Game) Score() int { return g.score.Int() }

// Reset randomizes the tiles and starts the flow at the middle of the left
// edge.
func (g *Game) Reset(env *core.Env) {
	g.score = 0
	g.tiles.Fill(func(int, int) int { return env.Rand.Intn(dirCount) })
	g.flow = append(g.flow[:0], grid.Point{X: 0, Y: size / 2})
	g.pointer = 0
}

// Update turns the center tile on Space and advances the flow on its timer.
func (g *Game) Update(env *core.Env, dt float64) {
	if env.Paused() {
		return
	}

	if env.Input.Pressed(core.KeySpace) {
		c := size / 2
		g.tiles.Set(c, c, (g.tiles.Get(c, c)+1)%dirCount)
	}

	g.pointer += dt * flowRate
	if g.pointer < 1 {
		return
	}
	g.pointer = 0

	head := g.flow[len(g.flow)-1]
	step := steps[g.tiles.Get(head.X, head.Y)]
	next := grid.Point{X: head.X + step.X, Y: head.Y + step.Y}
	if !g.tiles.In(next.X, next.Y) {
		env.GameOver(g.Score())
		return
	}
	g.flow = append(g.flow, next)
	g.score++
}

// Draw renders the tiles with their arrows and the water.
func (g *Game) Draw(env *core.Env) {
	c := env.Canvas
	ox := (env.W - size*cell) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			tx, ty := ox+float64(x*cell), boardOY+float64(y*cell)
			c.Rect(tx, ty, cell-4, cell-4, core.ColorCyan, core.ColorDim)
			s := steps[g.tiles.Get(x, y)]
			mx, my := tx+cell/2, ty+cell/2
			c.Line(mx, my, mx+float64(s.X)*cell/2, my+float64(s.Y)*cell/2, core.ColorMagenta)
		}
	}
	for _, p := range g.flow {
		c.Rect(ox+float64(p.X*cell)+cell/4, boardOY+float64(p.Y*cell)+cell/4, cell/2, cell/2, core.ColorYellow, core.ColorYellow)
	}
}
