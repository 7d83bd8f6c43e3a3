// Package dk3 implements a bug-dodging variant: bugs rain down and the
// player slides along the bottom.
package dk3

import (
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

const (
	moveSpeed  = 3.2
	bugSize    = 14
	bugOdds    = 0.04
	bugStartY  = 40
	pointsRate = 12
)

type bug struct {
	x, y, vy float64
}

// Game implements Donkey Kong 3.
type Game struct {
	score  core.Score
	player core.Box
	bugs   []bug
}

// New creates a Donkey Kong 3 game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("dk3", func(config.Config) registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "dk3" }

// Title returns the display name.
func (g *Game) Title() string { return "Donkey Kong 3" }

// Score returns the points accrued over time.
func (g *Game) Score() int { return g.score.Int() }

// Reset centers the player on the bottom row.
func (g *Game) Reset(env *core.Env) {
	g.score = 0
	g.player = core.Box{X: env.W/2 - 16, Y: env.H - 50, W: 32, H: 12}
	g.bugs = g.bugs[:0]
}

// Update slides the player, drops bugs and checks contacts.
func (g *Game) Update(env *core.Env, dt float64) {
	if env.Paused() {
		return
	}

	dx, _ := env.Input.Axis()
	g.player.X = core.ClampF(g.player.X+float64(dx)*moveSpeed, 20, env.W-g.player.W-20)

	if env.Chance(bugOdds) {
		g.bugs = append(g.bugs, bug{x: env.Rand.Float64() * env.W, y: bugStartY, vy: 2 + env.Rand.Float64()*1.2})
	}
	kept := g.bugs[:0]
	for _, b := range g.bugs {
		b.y += b.vy
		if b.y < env.H+20 {
			kept = append(kept, b)
		}
	}
	g.bugs = kept

	g.score += core.Score(dt * pointsRate)

	for _, b := range g.bugs {
		if g.player.Touches(core.Box{X: b.x, Y: b.y, W: bugSize, H: bugSize}) {
			env.GameOver(g.Score())
			return
		}
	}
}

// Draw renders the bugs and the player.
func (g *Game) Draw(env *core.Env) {
	c := env.Canvas
	for _, b := range g.bugs {
		c.Rect(b.x, b.y, bugSize, bugSize, core.ColorYellow, core.ColorYellow)
	}
	c.Rect(g.player.X, g.player.Y, g.player.W, g.player.H, core.ColorCyan, core.ColorWhite)
}
