// Package pong implements Pong against a ball-tracking CPU paddle.
// Player 1 controls the left paddle, the CPU controls the right one.
package pong

import (
	"fmt"
	"math"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

// Paddle geometry in surface units.
const (
	paddleW      = 12
	paddleH      = 80
	paddleOffset = 24 // distance from the side edge
	paddleMargin = 10 // top and bottom travel limit
	ballR        = 7
	edgeMargin   = 8 // ball reflects this close to the top and bottom
)

// Game implements the Pong game logic.
type Game struct {
	cfg config.PongConfig

	p1, p2 core.Box // left player, right CPU

	// Ball
	ballX, ballY   float64
	ballVX, ballVY float64

	// Points per side
	score1 int
	score2 int
}

// New creates a new Pong game instance.
func New(cfg config.PongConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register("pong", func(cfg config.Config) registry.Game {
		return New(cfg.Pong)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "pong" }

// Title returns the display name.
func (g *Game) Title() string { return "Pong" }

// Score reports the leading side's points.
func (g *Game) Score() int { return max(g.score1, g.score2) }

// Reset centers both paddles and the ball.
func (g *Game) Reset(env *core.Env) {
	g.score1, g.score2 = 0, 0
	y := env.H/2 - paddleH/2
	g.p1 = core.Box{X: paddleOffset, Y: y, W: paddleW, H: paddleH}
	g.p2 = core.Box{X: env.W - paddleOffset - paddleW, Y: y, W: paddleW, H: paddleH}
	g.ballX, g.ballY = env.W/2, env.H/2
	g.ballVX, g.ballVY = g.cfg.BallVX, g.cfg.BallVY
}

// serve puts the ball back in the center heading toward dir.
func (g *Game) serve(env *core.Env, dir float64) {
	g.ballX, g.ballY = env.W/2, env.H/2
	g.ballVX = dir * math.Abs(g.cfg.BallVX)
	g.ballVY = g.cfg.ServeVY
	if env.Chance(0.5) {
		g.ballVY = -g.ballVY
	}
}

// Update moves both paddles and the ball.
func (g *Game) Update(env *core.Env, _ float64) {
	if env.Paused() {
		return
	}

	_, dy := env.Input.Axis()
	g.p1.Y += float64(dy) * g.cfg.PaddleSpeed
	g.updateCPU()
	g.p1.Y = clampPaddle(g.p1.Y, env.H)
	g.p2.Y = clampPaddle(g.p2.Y, env.H)

	g.updateBall(env)
}

func clampPaddle(y, h float64) float64 {
	return core.ClampF(y, paddleMargin, h-paddleH-paddleMargin)
}

// updateCPU moves the right paddle toward the ball at its fixed speed.
func (g *Game) updateCPU() {
	g.p2.Y += core.Sign(g.ballY-g.p2.CenterY()) * g.cfg.CPUSpeed
}

// updateBall moves the ball, bounces it and handles scoring.
func (g *Game) updateBall(env *core.Env) {
	g.ballX += g.ballVX
	g.ballY += g.ballVY

	if g.ballY < edgeMargin || g.ballY > env.H-edgeMargin {
		g.ballVY = -g.ballVY
	}

	if g.hit(g.p1) {
		g.ballVX = math.Abs(g.ballVX)
	}
	if g.hit(g.p2) {
		g.ballVX = -math.Abs(g.ballVX)
	}

	switch {
	case g.ballX < 0:
		g.score2++
		g.serve(env, 1)
	case g.ballX > env.W:
		g.score1++
		g.serve(env, -1)
	}
}

// hit reports whether the ball center is inside p and adds spin by the
// contact offset from the paddle center.
func (g *Game) hit(p core.Box) bool {
	if !p.Contains(g.ballX, g.ballY) {
		return false
	}
	g.ballVY += (g.ballY - p.CenterY()) / p.H * g.cfg.Spin
	return true
}

// Draw renders the net, paddles, ball and the per-side points.
func (g *Game) Draw(env *core.Env) {
	c := env.Canvas
	c.Line(env.W/2, 0, env.W/2, env.H, core.ColorDim)
	c.Rect(g.p1.X, g.p1.Y, g.p1.W, g.p1.H, core.ColorCyan, core.ColorCyan)
	c.Rect(g.p2.X, g.p2.Y, g.p2.W, g.p2.H, core.ColorMagenta, core.ColorMagenta)
	c.Circle(g.ballX, g.ballY, ballR, core.ColorWhite)
	c.Text(fmt.Sprintf("%d", g.score1), env.W/2-60, 40, 24)
	c.Text(fmt.Sprintf("%d", g.score2), env.W/2+60, 40, 24)
}
