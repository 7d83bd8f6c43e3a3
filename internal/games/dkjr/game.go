// Package dkjr implements a vine-climbing dodger: the player moves freely
// while foes drop from above.
package dkjr

import (
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

const (
	moveSpeed  = 2.2
	foeSpeed   = 2.4
	foeSize    = 10
	foeOdds    = 0.02
	foeStartY  = 80
	pointsRate = 9
)

type foe struct {
	x, y float64
}

// Game implements Donkey Kong Jr.
type Game struct {
	score  core.Score
	player core.Box
	foes   []foe
}

// New creates a Donkey Kong Jr. game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("dkjr", func(config.Config) registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "dkjr" }

// Title returns the display name.
func (g *Game) Title() string { return "Donkey Kong Jr." }

// Score returns the points accrued over time.
func (g *Game) Score() int { return g.score.Int() }

// Reset places the player near the bottom center.
func (g *Game) Reset(env *core.Env) {
	g.score = 0
	g.player = core.Box{X: env.W / 2, Y: env.H - 80, W: 18, H: 20}
	g.foes = g.foes[:0]
}

// Update moves the player in four directions, drops foes and checks contacts.
func (g *Game) Update(env *core.Env, dt float64) {
	if env.Paused() {
		return
	}

	dx, dy := env.Input.Axis()
	g.player.X = core.ClampF(g.player.X+float64(dx)*moveSpeed, 20, env.W-20)
	g.player.Y = core.ClampF(g.player.Y+float64(dy)*moveSpeed, 40, env.H-40)

	if env.Chance(foeOdds) {
		g.foes = append(g.foes, foe{x: env.Rand.Float64() * env.W, y: foeStartY})
	}
	kept := g.foes[:0]
	for _, f := range g.foes {
		f.y += foeSpeed
		if f.y < env.H+20 {
			kept = append(kept, f)
		}
	}
	g.foes = kept

	g.score += core.Score(dt * pointsRate)

	for _, f := range g.foes {
		if g.player.Touches(core.Box{X: f.x, Y: f.y, W: foeSize, H: foeSize}) {
			env.GameOver(g.Score())
			return
		}
	}
}

// Draw renders the vines, the foes and the player.
func (g *Game) Draw(env *core.Env) {
	c := env.Canvas
	for _, x := range []float64{env.W / 3, 2 * env.W / 3} {
		c.Line(x, 40, x, env.H-40, core.ColorGreen)
	}
	for _, f := range g.foes {
		c.Rect(f.x, f.y, foeSize, foeSize, core.ColorRed, core.ColorRed)
	}
	c.Rect(g.player.X, g.player.Y, g.player.W, g.player.H, core.ColorCyan, core.ColorWhite)
}
