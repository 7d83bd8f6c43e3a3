// Package wrecking implements a wall-smashing game: steer the hammer into
// blocks to knock them out.
package wrecking

import (
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

const (
	hammerSize  = 18
	hammerSpeed = 3
	blockW      = 40
	blockH      = 20
	pitchX      = 60
	pitchY      = 40
	wallLeft    = 40
	wallTop     = 60
	blockScore  = 2
)

type block struct {
	core.Box
	alive bool
}

// Game implements Wrecking Crew.
type Game struct {
	score  core.Score
	hx, hy float64 // hammer center
	blocks []block
}

// New creates a Wrecking Crew game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("wrecking", func(config.Config) registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "wrecking" }

// Title returns the display name.
func (g *Game) Title() string { return "Wrecking Crew" }

// Score returns the current score.
func (g *Game) Score() int { return g.score.Int() }

// Reset builds the wall and parks the hammer below it.
func (g *Game) Reset(env *core.Env) {
	g.score = 0
	g.hx, g.hy = env.W/2, env.H-80
	g.build(env)
}

func (g *Game) build(env *core.Env) {
	g.blocks = g.blocks[:0]
	for x := float64(wallLeft); x < env.W-wallLeft; x += pitchX {
		for y := float64(wallTop); y < env.H-140; y += pitchY {
			g.blocks = append(g.blocks, block{Box: core.Box{X: x, Y: y, W: blockW, H: blockH}, alive: true})
		}
	}
}

// Update steers the hammer and smashes every block its center is inside.
func (g *Game) Update(env *core.Env, _ float64) {
	if env.Paused() {
		return
	}

	dx, dy := env.Input.Axis()
	g.hx = core.ClampF(g.hx+float64(dx*hammerSpeed), 20, env.W-20)
	g.hy = core.ClampF(g.hy+float64(dy*hammerSpeed), 40, env.H-40)

	alive := 0
	for i := range g.blocks {
		b := &g.blocks[i]
		if b.alive && b.Contains(g.hx, g.hy) {
			b.alive = false
			g.score += blockScore
		}
		if b.alive {
			alive++
		}
	}
	if alive == 0 {
		g.build(env)
	}
}

// Draw renders the remaining blocks and the hammer.
func (g *Game) Draw(env *core.Env) {
	c := env.Canvas
	for _, b := range g.blocks {
		if b.alive {
			c.Rect(b.X, b.Y, b.W, b.H, core.ColorCyan, core.ColorDefault)
		}
	}
	c.Rect(g.hx-hammerSize/2, g.hy-hammerSize/2, hammerSize, hammerSize, core.ColorMagenta, core.ColorMagenta)
}
