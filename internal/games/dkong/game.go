// Package dkong implements a barrel-dodging platformer.
package dkong

import (
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/games/platformer"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

const (
	runSpeed    = 2.4
	jumpSpeed   = -7.8
	gravity     = 0.46
	landDepth   = 12
	barrelR     = 10
	barrelVX    = -2.2
	barrelVY    = 0.3
	barrelOdds  = 0.02 // spawn chance per frame
	pointsRate  = 8
	fallMargin  = 60
	spawnOffset = 60 // barrel spawn distance from the right edge
)

type barrel struct {
	x, y float64
}

func (b barrel) box() core.Box {
	return core.Box{X: b.x - barrelR, Y: b.y - barrelR, W: 2 * barrelR, H: 2 * barrelR}
}

// Game implements Donkey Kong.
type Game struct {
	score     core.Score
	player    platformer.Body
	platforms []core.Box
	barrels   []barrel
}

// New creates a Donkey Kong game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("dkong", func(config.Config) registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "dkong" }

// Title returns the display name.
func (g *Game) Title() string { return "Donkey Kong" }

// Score returns the points accrued over time.
func (g *Game) Score() int { return g.score.Int() }

// Reset builds the girders and places the player at the bottom left.
func (g *Game) Reset(env *core.Env) {
	w, h := env.W, env.H
	g.score = 0
	g.platforms = []core.Box{
		{X: 30, Y: h - 40, W: w - 60, H: 8},
		{X: 50, Y: h - 120, W: w - 100, H: 8},
		{X: 30, Y: h - 200, W: w - 60, H: 8},
	}
	g.player = platformer.Body{Box: core.Box{X: 60, Y: h - 80, W: 18, H: 20}}
	g.barrels = g.barrels[:0]
}

// Update moves the player, rolls the barrels and checks contacts.
func (g *Game) Update(env *core.Env, dt float64) {
	if env.Paused() {
		return
	}

	p := &g.player
	dx, _ := env.Input.Axis()
	p.X = core.ClampF(p.X+float64(dx)*runSpeed, 20, env.W-20)
	if env.Input.Held(core.KeySpace, core.KeyUp, core.KeyW) {
		p.Jump(jumpSpeed)
	}
	p.Fall(gravity)
	p.Land(g.platforms, landDepth)

	if env.Chance(barrelOdds) {
		g.barrels = append(g.barrels, barrel{x: env.W - spawnOffset, y: env.H - 200})
	}
	kept := g.barrels[:0]
	for _, b := range g.barrels {
		b.x += barrelVX
		b.y += barrelVY
		if b.x > -20 && b.y < env.H+20 {
			kept = append(kept, b)
		}
	}
	g.barrels = kept

	g.score += core.Score(dt * pointsRate)

	if p.Y > env.H+fallMargin {
		env.GameOver(g.Score())
		return
	}
	for _, b := range g.barrels {
		if p.Touches(b.box()) {
			env.GameOver(g.Score())
			return
		}
	}
}

// Draw renders the girders, the barrels and the player.
func (g *Game) Draw(env *core.Env) {
	c := env.Canvas
	platformer.DrawPlatforms(c, g.platforms, core.ColorMagenta)
	for _, b := range g.barrels {
		c.Circle(b.x, b.y, barrelR, core.ColorOrange)
	}
	c.Rect(g.player.X, g.player.Y, g.player.W, g.player.H, core.ColorCyan, core.ColorWhite)
}
