// Package invaders implements a Space Invaders-style shooter with a
// marching enemy formation.
package invaders

import (
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

// Formation layout in surface units.
const (
	formationRows = 4
	formationCols = 10
	enemyW        = 36
	enemyH        = 22
	formationX    = 60
	formationY    = 90
	pitchX        = 56
	pitchY        = 36
	edgeLeft      = 20
	edgeRight     = 56 // distance from the right edge that turns the formation
)

type bullet struct {
	x, y  float64
	spent bool
}

type enemy struct {
	core.Box
	alive bool
}

// Game implements Invaders.
type Game struct {
	cfg   config.InvadersConfig
	score core.Score

	ship     core.Box
	cooldown float64
	bullets  []bullet
	enemies  []enemy
	dir      float64 // formation direction, ±1
}

// New creates an Invaders game.
func New(cfg config.InvadersConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register("invaders", func(cfg config.Config) registry.Game {
		return New(cfg.Invaders)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "invaders" }

// Title returns the display name.
func (g *Game) Title() string { return "Space Invaders" }

// Score returns the current score.
func (g *Game) Score() int { return g.score.Int() }

// Reset puts the ship at the bottom and spawns a fresh formation.
func (g *Game) Reset(env *core.Env) {
	g.score = 0
	g.ship = core.Box{X: env.W/2 - 18, Y: env.H - 50, W: 36, H: 14}
	g.cooldown = 0
	g.bullets = g.bullets[:0]
	g.spawnWave()
}

func (g *Game) spawnWave() {
	g.dir = 1
	g.enemies = g.enemies[:0]
	for r := 0; r < formationRows; r++ {
		for c := 0; c < formationCols; c++ {
			g.enemies = append(g.enemies, enemy{
				Box:   core.Box{X: formationX + float64(c)*pitchX, Y: formationY + float64(r)*pitchY, W: enemyW, H: enemyH},
				alive: true,
			})
		}
	}
}

// Update moves the ship, fires, advances bullets and the formation, then
// resolves hits.
func (g *Game) Update(env *core.Env, dt float64) {
	if env.Paused() {
		return
	}

	dx, _ := env.Input.Axis()
	g.ship.X = core.ClampF(g.ship.X+float64(dx)*g.cfg.ShipSpeed, 10, env.W-g.ship.W-10)

	g.cooldown = max(g.cooldown-dt, 0)
	if env.Input.Held(core.KeySpace, core.KeyW, core.KeyUp) && g.cooldown <= 0 {
		g.bullets = append(g.bullets, bullet{x: g.ship.CenterX(), y: g.ship.Y})
		g.cooldown = g.cfg.FireCooldown
	}
	for i := range g.bullets {
		g.bullets[i].y -= g.cfg.BulletSpeed
	}

	g.march(env.W)
	g.resolveHits()

	if g.aliveCount() == 0 {
		g.spawnWave()
	}
	for _, e := range g.enemies {
		if e.alive && e.Y > g.ship.Y-10 {
			env.GameOver(g.Score())
			return
		}
	}
}

// march moves the formation sideways and turns it at the edges.
func (g *Game) march(w float64) {
	turn := false
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.alive {
			continue
		}
		e.X += g.dir * g.cfg.FormationSpeed
		if e.X < edgeLeft || e.X > w-edgeRight {
			turn = true
		}
	}
	if !turn {
		return
	}
	g.dir = -g.dir
	for i := range g.enemies {
		g.enemies[i].Y += g.cfg.Drop
	}
}

// resolveHits scores each enemy at most once and drops spent bullets.
func (g *Game) resolveHits() {
	for i := range g.bullets {
		b := &g.bullets[i]
		for j := range g.enemies {
			e := &g.enemies[j]
			if e.alive && e.Contains(b.x, b.y) {
				e.alive = false
				b.spent = true
				g.score += core.Score(g.cfg.HitScore)
				break
			}
		}
	}

	kept := g.bullets[:0]
	for _, b := range g.bullets {
		if !b.spent && b.y > -20 {
			kept = append(kept, b)
		}
	}
	g.bullets = kept
}

func (g *Game) aliveCount() int {
	n := 0
	for _, e := range g.enemies {
		if e.alive {
			n++
		}
	}
	return n
}

// Draw renders the formation, the bullets and the ship.
func (g *Game) Draw(env *core.Env) {
	c := env.Canvas
	for _, e := range g.enemies {
		if e.alive {
			c.Rect(e.X, e.Y, e.W, e.H, core.ColorMagenta, core.ColorMagenta)
		}
	}
	for _, b := range g.bullets {
		c.Rect(b.x-2, b.y-6, 4, 12, core.ColorYellow, core.ColorYellow)
	}
	c.Rect(g.ship.X, g.ship.Y, g.ship.W, g.ship.H, core.ColorCyan, core.ColorCyan)
}
