// Package doodle implements an endless bouncing climber.
package doodle

import (
	"math"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/games/platformer"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

const (
	gravity       = 0.5
	bounce        = -9
	runSpeed      = 4.2
	platformW     = 80
	platformH     = 10
	platformPitch = 60
	landDepth     = 10
	scrollLine    = 0.4 // fraction of the height the view keeps the player below
)

// Game implements Doodle Jump.
type Game struct {
	score     core.Score
	dude      platformer.Body
	platforms []core.Box
}

// New creates a Doodle game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("doodle", func(config.Config) registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "doodle" }

// Title returns the display name.
func (g *Game) Title() string { return "Doodle Jump" }

// Score returns the number of bounces.
func (g *Game) Score() int { return g.score.Int() }

// Reset stacks platforms from the floor up and drops the player in.
func (g *Game) Reset(env *core.Env) {
	g.score = 0
	g.dude = platformer.Body{Box: core.Box{X: env.W / 2, Y: env.H - 80, W: 24, H: 28}}
	g.platforms = g.platforms[:0]
	for y := env.H - 20; y > 0; y -= platformPitch {
		g.platforms = append(g.platforms, newPlatform(env, y))
	}
}

func newPlatform(env *core.Env, y float64) core.Box {
	return core.Box{X: env.Rand.Float64() * (env.W - platformW), Y: y, W: platformW, H: platformH}
}

// Update steers with wrap-around, bounces off platforms and scrolls the view.
func (g *Game) Update(env *core.Env, _ float64) {
	if env.Paused() {
		return
	}

	d := &g.dude
	dx, _ := env.Input.Axis()
	d.X = math.Mod(d.X+float64(dx)*runSpeed+env.W, env.W)

	d.Fall(gravity)
	if _, ok := d.Landing(g.platforms, landDepth); ok {
		d.VY = bounce
		g.score++
	}

	if line := env.H * scrollLine; d.Y < line {
		shift := line - d.Y
		d.Y = line
		for i := range g.platforms {
			p := &g.platforms[i]
			p.Y += shift
			if p.Y > env.H {
				*p = newPlatform(env, -20)
			}
		}
	}

	if d.Y > env.H+40 {
		env.GameOver(g.Score())
	}
}

// Draw renders the platforms and the player.
func (g *Game) Draw(env *core.Env) {
	platformer.DrawPlatforms(env.Canvas, g.platforms, core.ColorGreen)
	d := g.dude
	env.Canvas.Rect(d.X, d.Y, d.W, d.H, core.ColorCyan, core.ColorWhite)
}
