// Package pacman implements a pellet-eating maze chase on an open field.
package pacman

import (
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

const (
	playerR     = 10
	playerSpeed = 3
	border      = 40 // pellet-free margin
	pelletPitch = 24
	eatRange    = 12
	ghostRange  = 18
	wallMargin  = 20
)

type pellet struct {
	x, y  float64
	eaten bool
}

type ghost struct {
	x, y, vx, vy float64
}

// Game implements Pac-Man.
type Game struct {
	score   core.Score
	px, py  float64
	pellets []pellet
	left    int // pellets not yet eaten
	ghosts  []ghost
}

// New creates a Pac-Man game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("pacman", func(config.Config) registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "pacman" }

// Title returns the display name.
func (g *Game) Title() string { return "Pac-Man" }

// Score returns the number of pellets eaten.
func (g *Game) Score() int { return g.score.Int() }

// Reset centers the player, lays the pellets and sends a ghost from each corner.
func (g *Game) Reset(env *core.Env) {
	w, h := env.W, env.H
	g.score = 0
	g.px, g.py = w/2, h/2
	g.layPellets(w, h)
	g.ghosts = []ghost{
		{100, 100, 2, 2},
		{w - 100, 100, -2, 2},
		{100, h - 100, 2, -2},
		{w - 100, h - 100, -2, -2},
	}
}

func (g *Game) layPellets(w, h float64) {
	g.pellets = g.pellets[:0]
	for x := float64(border); x < w-border; x += pelletPitch {
		for y := float64(border); y < h-border; y += pelletPitch {
			g.pellets = append(g.pellets, pellet{x: x, y: y})
		}
	}
	g.left = len(g.pellets)
}

// Update moves the player, eats pellets, bounces the ghosts and checks contacts.
func (g *Game) Update(env *core.Env, _ float64) {
	if env.Paused() {
		return
	}

	dx, dy := env.Input.Axis()
	g.px = core.ClampF(g.px+float64(dx)*playerSpeed, wallMargin, env.W-wallMargin)
	g.py = core.ClampF(g.py+float64(dy)*playerSpeed, wallMargin, env.H-wallMargin)

	for i := range g.pellets {
		p := &g.pellets[i]
		if !p.eaten && core.Dist(g.px, g.py, p.x, p.y) < eatRange {
			p.eaten = true
			g.left--
			g.score++
		}
	}
	if g.left == 0 {
		g.layPellets(env.W, env.H)
	}

	for i := range g.ghosts {
		gh := &g.ghosts[i]
		gh.x += gh.vx
		gh.y += gh.vy
		if gh.x < wallMargin || gh.x > env.W-wallMargin {
			gh.vx = -gh.vx
		}
		if gh.y < wallMargin || gh.y > env.H-wallMargin {
			gh.vy = -gh.vy
		}
		if core.Dist(g.px, g.py, gh.x, gh.y) < ghostRange {
			env.GameOver(g.Score())
			return
		}
	}
}

// Draw renders the pellets, the ghosts and the player.
func (g *Game) Draw(env *core.Env) {
	c := env.Canvas
	for _, p := range g.pellets {
		if !p.eaten {
			c.Circle(p.x, p.y, 2, core.ColorWhite)
		}
	}
	for i, gh := range g.ghosts {
		c.Circle(gh.x, gh.y, playerR, core.TokenColor(i+2))
	}
	c.Circle(g.px, g.py, playerR, core.ColorYellow)
}
