package breakout

import (
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

var rowColors = []core.Color{core.ColorMagenta, core.ColorOrange, core.ColorYellow, core.ColorGreen, core.ColorCyan, core.ColorBlue}

// Game implements Breakout.
type Game struct {
	cfg   config.BreakoutConfig
	score core.Score

	paddle Paddle
	ball   Ball
	level  *Level
}

// New creates a Breakout game.
func New(cfg config.BreakoutConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register("breakout", func(cfg config.Config) registry.Game {
		return New(cfg.Breakout)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "breakout" }

// Title returns the display name.
func (g *Game) Title() string { return "Breakout" }

// Score returns the current score.
func (g *Game) Score() int { return g.score.Int() }

// Reset builds a fresh wall and serves the ball from the center.
func (g *Game) Reset(env *core.Env) {
	g.score = 0
	w := g.cfg.PaddleWidth
	g.paddle = Paddle{
		Box:   core.Box{X: env.W/2 - w/2, Y: env.H - 36, W: w, H: 12},
		Speed: g.cfg.PaddleSpeed,
	}
	g.serve(env)
	g.level = NewLevel(g.cfg.Rows, g.cfg.Cols, env.W)
}

func (g *Game) serve(env *core.Env) {
	g.ball = Ball{X: env.W / 2, Y: env.H / 2, VX: g.cfg.BallVX, VY: g.cfg.BallVY, R: 7}
}

// Update steers the paddle, moves the ball and resolves collisions.
func (g *Game) Update(env *core.Env, _ float64) {
	if env.Paused() {
		return
	}

	dir, _ := env.Input.Axis()
	g.paddle.Steer(dir, env.W)

	b := &g.ball
	b.Move()
	b.ReflectWalls(env.W)
	if b.Y > env.H+20 {
		env.GameOver(g.Score())
		return
	}

	g.paddle.Deflect(b, g.cfg.Spin)

	if g.level.Hit(b.X, b.Y) {
		b.VY = -b.VY
		g.score += core.Score(g.cfg.BrickScore)
		if g.level.CountAlive() == 0 {
			g.level = NewLevel(g.cfg.Rows, g.cfg.Cols, env.W)
		}
	}
}

// Draw renders the wall, the paddle and the ball.
func (g *Game) Draw(env *core.Env) {
	c := env.Canvas
	for _, b := range g.level.Bricks {
		if !b.Alive {
			continue
		}
		color := rowColors[b.Row%len(rowColors)]
		c.Rect(b.X, b.Y, b.W, b.H, color, color)
	}
	p := g.paddle
	c.Rect(p.X, p.Y, p.W, p.H, core.ColorCyan, core.ColorWhite)
	c.Circle(g.ball.X, g.ball.Y, g.ball.R, core.ColorMagenta)
}
