// Package mario implements a single-screen platformer with a patrolling enemy.
package mario

import (
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/games/platformer"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

const (
	runSpeed   = 2.6
	jumpSpeed  = -7.8
	gravity    = 0.45
	landDepth  = 12
	enemySpeed = 1.2
	pointsRate = 10 // score per second survived
)

// Game implements Mario.
type Game struct {
	score     core.Score
	player    platformer.Body
	enemy     platformer.Body
	platforms []core.Box
}

// New creates a Mario game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("mario", func(config.Config) registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "mario" }

// Title returns the display name.
func (g *Game) Title() string { return "Mario" }

// Score returns the points accrued over time.
func (g *Game) Score() int { return g.score.Int() }

// Reset builds the three floors and places the player and the enemy.
func (g *Game) Reset(env *core.Env) {
	w, h := env.W, env.H
	g.score = 0
	g.platforms = []core.Box{
		{X: 40, Y: h - 40, W: w - 80, H: 10},
		{X: 60, Y: h - 120, W: w - 120, H: 10},
		{X: 80, Y: h - 200, W: w - 160, H: 10},
	}
	g.player = platformer.Body{Box: core.Box{X: w / 2, Y: h - 60, W: 18, H: 22}}
	g.enemy = platformer.Body{Box: core.Box{X: 80, Y: h - 60, W: 18, H: 18}, VX: enemySpeed}
}

// Update runs, jumps and lands the player, patrols the enemy and accrues score.
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

	e := &g.enemy
	e.X += e.VX
	if e.X < 40 || e.X > env.W-40 {
		e.VX = -e.VX
	}

	g.score += core.Score(dt * pointsRate)

	if p.Y > env.H+60 || p.Touches(e.Box) {
		env.GameOver(g.Score())
	}
}

// Draw renders the floors, the enemy and the player.
func (g *Game) Draw(env *core.Env) {
	c := env.Canvas
	platformer.DrawPlatforms(c, g.platforms, core.ColorOrange)
	c.Rect(g.enemy.X, g.enemy.Y, g.enemy.W, g.enemy.H, core.ColorRed, core.ColorRed)
	c.Rect(g.player.X, g.player.Y, g.player.W, g.player.H, core.ColorCyan, core.ColorWhite)
}
