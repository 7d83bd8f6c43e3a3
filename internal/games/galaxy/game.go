// Package galaxy implements a vertical shooter against falling foes.
package galaxy

import (
	"math"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

const (
	shipSpeed    = 4
	fireCooldown = 0.2
	bulletSpeed  = 6
	spawnEvery   = 0.8
	foeSpeed     = 2
	hitRange     = 20 // per-axis distance that counts as contact
	hitScore     = 2
)

type point struct {
	x, y float64
	dead bool
}

// Game implements Galaxy.
type Game struct {
	score core.Score

	shipX, shipY float64
	cooldown     float64
	spawn        float64
	bullets      []point
	foes         []point
}

// New creates a Galaxy game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("galaxy", func(config.Config) registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "galaxy" }

// Title returns the display name.
func (g *Game) Title() string { return "Galaxy" }

// Score returns the current score.
func (g *Game) Score() int { return g.score.Int() }

// Reset centers the ship at the bottom and clears the sky.
func (g *Game) Reset(env *core.Env) {
	g.score = 0
	g.shipX, g.shipY = env.W/2, env.H-60
	g.cooldown = 0
	g.spawn = 0
	g.bullets = g.bullets[:0]
	g.foes = g.foes[:0]
}

func near(a, b point) bool {
	return math.Abs(a.x-b.x) < hitRange && math.Abs(a.y-b.y) < hitRange
}

// Update moves the ship, fires, spawns foes and resolves contacts.
func (g *Game) Update(env *core.Env, dt float64) {
	if env.Paused() {
		return
	}

	dx, _ := env.Input.Axis()
	g.shipX = core.ClampF(g.shipX+float64(dx)*shipSpeed, 20, env.W-20)

	g.cooldown -= dt
	if env.Input.Held(core.KeySpace) && g.cooldown <= 0 {
		g.bullets = append(g.bullets, point{x: g.shipX, y: g.shipY - 10})
		g.cooldown = fireCooldown
	}

	g.spawn += dt
	if g.spawn >= spawnEvery {
		g.spawn = 0
		g.foes = append(g.foes, point{x: env.Rand.Float64() * env.W, y: 40})
	}

	for i := range g.bullets {
		g.bullets[i].y -= bulletSpeed
	}
	for i := range g.foes {
		g.foes[i].y += foeSpeed
	}

	for i := range g.bullets {
		b := &g.bullets[i]
		for j := range g.foes {
			f := &g.foes[j]
			if !f.dead && near(*b, *f) {
				f.dead, b.dead = true, true
				g.score += hitScore
				break
			}
		}
	}
	g.bullets = keep(g.bullets, func(p point) bool { return p.y > -20 })
	g.foes = keep(g.foes, func(p point) bool { return p.y < env.H+20 })

	ship := point{x: g.shipX, y: g.shipY}
	for _, f := range g.foes {
		if near(f, ship) {
			env.GameOver(g.Score())
			return
		}
	}
}

// keep filters ps in place, dropping dead points and those failing inside.
func keep(ps []point, inside func(point) bool) []point {
	out := ps[:0]
	for _, p := range ps {
		if !p.dead && inside(p) {
			out = append(out, p)
		}
	}
	return out
}

// Draw renders the ship, bullets and foes.
func (g *Game) Draw(env *core.Env) {
	c := env.Canvas
	c.Rect(g.shipX-12, g.shipY-8, 24, 16, core.ColorCyan, core.ColorCyan)
	for _, b := range g.bullets {
		c.Rect(b.x-2, b.y-6, 4, 12, core.ColorYellow, core.ColorYellow)
	}
	for _, f := range g.foes {
		c.Circle(f.x, f.y, 10, core.ColorMagenta)
	}
}
