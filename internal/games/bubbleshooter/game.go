// Package bubbleshooter implements a bubble shooter: aim, fire, and pop
// same-color groups of three or more hanging from the ceiling.
package bubbleshooter

import (
	"math"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/games/grid"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

const (
	cols       = 12
	rows       = 10
	cell       = 34
	top        = 70 // ceiling, in units from the top of the surface
	colors     = 4
	filledRows = 3

	aimStep   = 0.06
	aimLimit  = 1.2 // radians from vertical
	shotSpeed = 9
	radius    = 12
	snapReach = cell * 0.45
	minGroup  = 3
	timeScore = 2 // per second
)

// bubble is the shot in the cannon or in flight.
type bubble struct {
	x, y   float64
	vx, vy float64
	color  int
	flying bool
}

// Game implements Bubble Shooter.
type Game struct {
	score core.Score
	board *grid.Grid
	aim   float64
	shot  bubble
	left  float64 // left wall x
}

// New creates a Bubble Shooter game.
func New() *Game {
	return &Game{board: grid.New(rows, cols)}
}

func init() {
	registry.Register("bubbleshooter", func(config.Config) registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "bubbleshooter" }

// Title returns the display name.
func (g *Game) Title() string { return "Bubble Shooter" }

// Score returns the current score.
func (g *Game) Score() int { return g.score.Int() }

// Reset fills the top rows and loads the cannon.
func (g *Game) Reset(env *core.Env) {
	g.score = 0
	g.aim = 0
	g.left = (env.W - cols*cell) / 2
	g.board.Fill(func(_, y int) int {
		if y < filledRows {
			return 1 + env.Rand.Intn(colors)
		}
		return 0
	})
	g.load(env)
}

func (g *Game) load(env *core.Env) {
	g.shot = bubble{x: env.W / 2, y: env.H - 80, color: 1 + env.Rand.Intn(colors)}
}

func (g *Game) center(p grid.Point) (float64, float64) {
	return g.left + float64(p.X*cell) + cell/2, top + float64(p.Y*cell) + cell/2
}

// Update aims, fires and moves the shot.
func (g *Game) Update(env *core.Env, dt float64) {
	if env.Paused() {
		return
	}

	in := env.Input
	if in.Left() {
		g.aim -= aimStep
	}
	if in.Right() {
		g.aim += aimStep
	}
	g.aim = core.ClampF(g.aim, -aimLimit, aimLimit)

	if in.Pressed(core.KeySpace) && !g.shot.flying {
		g.shot.vx = math.Sin(g.aim) * shotSpeed
		g.shot.vy = -math.Cos(g.aim) * shotSpeed
		g.shot.flying = true
	}

	if g.shot.flying {
		g.fly(env)
	}

	g.score += core.Score(dt * timeScore)
}

func (g *Game) fly(env *core.Env) {
	b := &g.shot
	b.x += b.vx
	b.y += b.vy

	right := g.left + cols*cell
	if b.x-radius < g.left {
		b.x = g.left + radius
		b.vx = math.Abs(b.vx)
	}
	if b.x+radius > right {
		b.x = right - radius
		b.vx = -math.Abs(b.vx)
	}

	if b.y-radius < top || g.touchesBoard(b.x, b.y) {
		g.snap(env, b.x, b.y, b.color)
		if !env.Over() {
			g.load(env)
		}
	}
}

func (g *Game) touchesBoard(x, y float64) bool {
	for gy := 0; gy < rows; gy++ {
		for gx := 0; gx < cols; gx++ {
			if g.board.Get(gx, gy) == 0 {
				continue
			}
			cx, cy := g.center(grid.Point{X: gx, Y: gy})
			if core.Dist(x, y, cx, cy) < radius+snapReach {
				return true
			}
		}
	}
	return false
}

// nearestFree returns the empty cell whose center is closest to (x, y).
func (g *Game) nearestFree(x, y float64) (grid.Point, bool) {
	var best grid.Point
	bestDist := math.Inf(1)
	for gy := 0; gy < rows; gy++ {
		for gx := 0; gx < cols; gx++ {
			if g.board.Get(gx, gy) != 0 {
				continue
			}
			p := grid.Point{X: gx, Y: gy}
			cx, cy := g.center(p)
			if d := core.Dist(x, y, cx, cy); d < bestDist {
				best, bestDist = p, d
			}
		}
	}
	return best, !math.IsInf(bestDist, 1)
}

// snap places a bubble of color at the free cell nearest to (x, y), pops
// its group and drops whatever no longer hangs from the ceiling.
func (g *Game) snap(env *core.Env, x, y float64, color int) {
	p, ok := g.nearestFree(x, y)
	if !ok {
		env.GameOver(g.Score())
		return
	}
	g.board.Set(p.X, p.Y, color)

	group := g.board.FloodFill(p, func(v int) bool { return v == color })
	if len(group) >= minGroup {
		for _, q := range group {
			g.board.Set(q.X, q.Y, 0)
		}
		g.score += core.Score(len(group))
		g.board.DropFloating()
	}

	if p.Y == rows-1 {
		env.GameOver(g.Score())
	}
}

// Draw renders the bubbles, the cannon and its aim line.
func (g *Game) Draw(env *core.Env) {
	c := env.Canvas
	c.Line(g.left, top, g.left+cols*cell, top, core.ColorDim)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if v := g.board.Get(x, y); v != 0 {
				cx, cy := g.center(grid.Point{X: x, Y: y})
				c.Circle(cx, cy, cell*0.42, core.TokenColor(v))
			}
		}
	}

	ox, oy := env.W/2, env.H-80
	c.Line(ox, oy, ox+math.Sin(g.aim)*60, oy-math.Cos(g.aim)*60, core.ColorWhite)
	c.Circle(g.shot.x, g.shot.y, radius, core.TokenColor(g.shot.color))
}
