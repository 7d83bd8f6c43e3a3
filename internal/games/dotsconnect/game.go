// Package dotsconnect implements a dot-collecting game: steer the cursor
// over every dot to connect them into a path.
package dotsconnect

import (
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

const (
	dotCount    = 20
	cursorSpeed = 4
	reach       = 16
	margin      = 20
	dotScore    = 2
	boardBonus  = 10
)

type dot struct {
	x, y float64
	used bool
}

// Game implements Dots Connect.
type Game struct {
	score  core.Score
	dots   []dot
	path   []int // indexes into dots, in connection order
	cx, cy float64
}

// New creates a Dots Connect game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("dotsconnect", func(config.Config) registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "dotsconnect" }

// Title returns the display name.
func (g *Game) Title() string { return "Dots Connect" }

// Score returns the current score.
func (g *Game) Score() int { return g.score.Int() }

// Reset scatters a new board and zeroes the score.
func (g *Game) Reset(env *core.Env) {
	g.score = 0
	g.scatter(env)
}

// scatter lays out fresh dots and centers the cursor. The score is kept.
func (g *Game) scatter(env *core.Env) {
	g.dots = g.dots[:0]
	for i := 0; i < dotCount; i++ {
		g.dots = append(g.dots, dot{x: env.Rand.Float64() * env.W, y: env.Rand.Float64() * env.H})
	}
	g.path = g.path[:0]
	g.cx, g.cy = env.W/2, env.H/2
}

// Update moves the cursor and collects dots within reach.
func (g *Game) Update(env *core.Env, _ float64) {
	if env.Paused() {
		return
	}

	dx, dy := env.Input.Axis()
	g.cx = core.ClampF(g.cx+float64(dx*cursorSpeed), margin, env.W-margin)
	g.cy = core.ClampF(g.cy+float64(dy*cursorSpeed), margin, env.H-margin)

	for i := range g.dots {
		d := &g.dots[i]
		if !d.used && core.Dist(g.cx, g.cy, d.x, d.y) < reach {
			d.used = true
			g.path = append(g.path, i)
			g.score += dotScore
		}
	}

	if len(g.path) == len(g.dots) {
		g.score += boardBonus
		g.scatter(env)
	}
}

// Draw renders the dots, the path through the used ones and the cursor.
func (g *Game) Draw(env *core.Env) {
	c := env.Canvas
	for _, d := range g.dots {
		color := core.ColorCyan
		if d.used {
			color = core.ColorMagenta
		}
		c.Circle(d.x, d.y, 8, color)
	}
	for i := 1; i < len(g.path); i++ {
		a, b := g.dots[g.path[i-1]], g.dots[g.path[i]]
		c.Line(a.x, a.y, b.x, b.y, core.ColorWhite)
	}
	c.Rect(g.cx-6, g.cy-6, 12, 12, core.ColorYellow, core.ColorYellow)
}
