// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
package flappy

import (
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

// Bird placement in surface units.
const (
	PlayerX = 120
	PlayerR = 10
)

// Game implements the Flappy Bird game logic.
type Game struct {
	cfg       config.FlappyConfig
	playerY   float64      // Bird center
	playerVel float64      // Vertical velocity per frame
	pipes     *PipeManager // Obstacle manager
	score     core.Score
}

// New creates a new Flappy Bird game instance.
func New(cfg config.FlappyConfig) *Game {
	return &Game{cfg: cfg, pipes: NewPipeManager(cfg)}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Score returns the number of pipes passed.
func (g *Game) Score() int {
	return g.score.Int()
}

// Reset initializes or restarts the game.
func (g *Game) Reset(env *core.Env) {
	g.playerY = env.H / 2
	g.playerVel = 0
	g.score = 0
	g.pipes.Reset(env.Rand, env.W, env.H)
}

// Update applies gravity and the flap, scrolls the pipes and checks for a crash.
func (g *Game) Update(env *core.Env, _ float64) {
	if env.Paused() {
		return
	}

	if env.Input.Held(core.KeySpace, core.KeyUp, core.KeyW) {
		g.playerVel = g.cfg.Flap
	}
	g.playerVel += g.cfg.Gravity
	g.playerY += g.playerVel

	g.score += core.Score(g.pipes.Update(env.Rand, env.H))

	if g.playerY < 0 || g.playerY > env.H || g.pipes.CheckCollision(PlayerX, g.playerY) {
		env.GameOver(g.Score())
	}
}

// Draw renders the pipes and the bird.
func (g *Game) Draw(env *core.Env) {
	for _, p := range g.pipes.Pipes() {
		p.draw(env.Canvas, env.H)
	}
	env.Canvas.Circle(PlayerX, g.playerY, PlayerR, core.ColorYellow)
}

func init() {
	registry.Register("flappy", func(cfg config.Config) registry.Game {
		return New(cfg.Flappy)
	})
}
