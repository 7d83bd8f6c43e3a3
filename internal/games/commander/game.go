// Package commander implements a side-scrolling shooter: the ship holds the
// left side while foes stream in from the right.
package commander

import (
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

const (
	shipSpeed    = 4
	fireCooldown = 0.12
	bulletSpeed  = 8
	spawnEvery   = 0.6
	foeSpeed     = 2.4
	hitScore     = 5
)

type bullet struct {
	x, y  float64
	spent bool
}

type foe struct {
	core.Box
	dead bool
}

// Game implements Commander.
type Game struct {
	score core.Score

	ship     core.Box
	cooldown float64
	spawn    float64 // time since the last foe
	bullets  []bullet
	foes     []foe
}

// New creates a Commander game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("commander", func(config.Config) registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "commander" }

// Title returns the display name.
func (g *Game) Title() string { return "Commander" }

// Score returns the current score.
func (g *Game) Score() int { return g.score.Int() }

// Reset parks the ship on the left and clears the sky.
func (g *Game) Reset(env *core.Env) {
	g.score = 0
	g.ship = core.Box{X: 80, Y: env.H / 2, W: 28, H: 16}
	g.cooldown = 0
	g.spawn = 0
	g.bullets = g.bullets[:0]
	g.foes = g.foes[:0]
}

// Update moves the ship, fires, spawns foes and resolves collisions.
func (g *Game) Update(env *core.Env, dt float64) {
	if env.Paused() {
		return
	}

	_, dy := env.Input.Axis()
	g.ship.Y = core.ClampF(g.ship.Y+float64(dy)*shipSpeed, 20, env.H-20)

	g.cooldown -= dt
	if env.Input.Held(core.KeySpace, core.KeyX) && g.cooldown <= 0 {
		g.bullets = append(g.bullets, bullet{x: g.ship.X + g.ship.W, y: g.ship.Y})
		g.cooldown = fireCooldown
	}

	g.spawn += dt
	if g.spawn >= spawnEvery {
		g.spawn = 0
		g.foes = append(g.foes, foe{Box: core.Box{X: env.W + 20, Y: 40 + env.Rand.Float64()*(env.H-80), W: 24, H: 18}})
	}

	for i := range g.bullets {
		g.bullets[i].x += bulletSpeed
	}
	for i := range g.foes {
		g.foes[i].X -= foeSpeed
	}

	for i := range g.bullets {
		b := &g.bullets[i]
		for j := range g.foes {
			f := &g.foes[j]
			if !f.dead && f.Contains(b.x, b.y) {
				f.dead = true
				b.spent = true
				g.score += hitScore
				break
			}
		}
	}
	g.filter(env.W)

	for _, f := range g.foes {
		if g.ship.Overlaps(f.Box) {
			env.GameOver(g.Score())
			return
		}
	}
}

// filter drops spent or off-screen bullets and destroyed or passed foes.
func (g *Game) filter(w float64) {
	bullets := g.bullets[:0]
	for _, b := range g.bullets {
		if !b.spent && b.x < w+20 {
			bullets = append(bullets, b)
		}
	}
	g.bullets = bullets

	foes := g.foes[:0]
	for _, f := range g.foes {
		if !f.dead && f.X > -30 {
			foes = append(foes, f)
		}
	}
	g.foes = foes
}

// Draw renders the ship, bullets and foes.
func (g *Game) Draw(env *core.Env) {
	c := env.Canvas
	c.Rect(g.ship.X, g.ship.Y, g.ship.W, g.ship.H, core.ColorCyan, core.ColorCyan)
	for _, b := range g.bullets {
		c.Rect(b.x, b.y-2, 10, 4, core.ColorYellow, core.ColorYellow)
	}
	for _, f := range g.foes {
		c.Rect(f.X, f.Y, f.W, f.H, core.ColorRed, core.ColorRed)
	}
}
