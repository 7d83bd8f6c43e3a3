// Package dino implements a Chrome Dino-style endless runner game.
// The player must jump over obstacles while running automatically.
package dino

import (
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

// Player geometry in surface units.
const (
	PlayerX      = 120
	PlayerW      = 36
	PlayerH      = 40
	groundOffset = 60 // ground line distance from the bottom
)

// Game implements the Dino Runner game logic.
type Game struct {
	cfg       config.DinoConfig
	playerY   float64          // Top of the player box
	playerVel float64          // Vertical velocity per frame
	groundY   float64          // Y of the ground line
	obstacles *ObstacleManager // Obstacle manager
	score     core.Score       // Obstacles passed
}

// New creates a new Dino Runner game instance.
func New(cfg config.DinoConfig) *Game {
	return &Game{cfg: cfg, obstacles: NewObstacleManager(cfg)}
}

func init() {
	registry.Register("dino", func(cfg config.Config) registry.Game {
		return New(cfg.Dino)
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dino"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dino Run"
}

// Score returns the number of obstacles passed.
func (g *Game) Score() int {
	return g.score.Int()
}

// Reset initializes or restarts the game.
func (g *Game) Reset(env *core.Env) {
	g.groundY = env.H - groundOffset
	g.playerY = g.groundY - PlayerH
	g.playerVel = 0
	g.score = 0
	g.obstacles.Reset(env.Rand, g.groundY)
}

// grounded reports whether the player stands on the ground line.
func (g *Game) grounded() bool {
	return g.playerY >= g.groundY-PlayerH-0.5
}

func (g *Game) playerBox() core.Box {
	return core.Box{X: PlayerX, Y: g.playerY, W: PlayerW, H: PlayerH}
}

// Update handles the jump, gravity and obstacle scrolling.
func (g *Game) Update(env *core.Env, _ float64) {
	if env.Paused() {
		return
	}

	if env.Input.Held(core.KeySpace, core.KeyUp, core.KeyW) && g.grounded() {
		g.playerVel = g.cfg.Jump
	}
	g.playerVel += g.cfg.Gravity
	g.playerY += g.playerVel
	if g.playerY > g.groundY-PlayerH {
		g.playerY = g.groundY - PlayerH
		g.playerVel = 0
	}

	g.score += core.Score(g.obstacles.Update(env.Rand, env.W, g.groundY))

	if g.obstacles.CheckCollision(g.playerBox()) {
		env.GameOver(g.Score())
	}
}

// Draw renders the ground, the cacti and the player.
func (g *Game) Draw(env *core.Env) {
	c := env.Canvas
	c.Line(0, g.groundY, env.W, g.groundY, core.ColorGray)
	for _, o := range g.obstacles.Cacti() {
		c.Rect(o.X, o.Y, o.W, o.H, core.ColorGreen, core.ColorGreen)
	}
	c.Rect(PlayerX, g.playerY, PlayerW, PlayerH, core.ColorCyan, core.ColorWhite)
}
