package pong

import (
	"math"
	"testing"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
)

func newGame(t *testing.T) (*Game, *core.Env) {
	t.Helper()
	rc := core.DefaultConfig()
	rc.Seed = 11
	env := core.NewEnv(rc, nil, nil, nil)
	env.Bind("best_pong")
	g := New(config.Default().Pong)
	g.Reset(env)
	env.Start()
	return g, env
}

func TestLeftExitScoresForCPUAndServesRight(t *testing.T) {
	g, env := newGame(t)
	g.ballX, g.ballY = 2, 300
	g.ballVX, g.ballVY = -4.6, 0

	g.Update(env, 1.0/60)

	snap := g.Snapshot()
	if snap.Score2 != 1 || snap.Score1 != 0 {
		t.Fatalf("scores = %d:%d, expected 0:1", snap.Score1, snap.Score2)
	}
	if snap.BallX != env.W/2 || snap.BallY != env.H/2 {
		t.Errorf("ball = (%v, %v), expected the center", snap.BallX, snap.BallY)
	}
	if snap.BallVX != 4.6 {
		t.Errorf("serve vx = %v, expected 4.6", snap.BallVX)
	}
	if math.Abs(snap.BallVY) != 3.4 {
		t.Errorf("serve vy = %v, expected ±3.4", snap.BallVY)
	}
	if g.Score() != 1 {
		t.Errorf("score = %d, expected 1", g.Score())
	}
	if env.Over() {
		t.Error("pong has no loss state")
	}
}

func TestRightExitScoresForPlayer(t *testing.T) {
	g, env := newGame(t)
	g.ballX, g.ballY = env.W-2, 300
	g.ballVX, g.ballVY = 4.6, 0

	g.Update(env, 1.0/60)

	snap := g.Snapshot()
	if snap.Score1 != 1 {
		t.Errorf("player score = %d, expected 1", snap.Score1)
	}
	if snap.BallVX != -4.6 {
		t.Errorf("serve vx = %v, expected -4.6", snap.BallVX)
	}
}

func TestPlayerPaddleHitAddsSpin(t *testing.T) {
	g, env := newGame(t)
	// Contact 20 units below the paddle center after one move.
	g.ballX = g.p1.X + 6 + 4.6
	g.ballY = g.p1.CenterY() + 20
	g.ballVX, g.ballVY = -4.6, 0

	g.Update(env, 1.0/60)

	if g.ballVX != 4.6 {
		t.Errorf("vx = %v, expected 4.6", g.ballVX)
	}
	if math.Abs(g.ballVY-20.0/80*6) > 1e-9 {
		t.Errorf("vy = %v, expected %v", g.ballVY, 20.0/80*6)
	}
}

func TestCPUTracksBall(t *testing.T) {
	g, env := newGame(t)
	start := g.p2.Y
	g.ballX, g.ballY = 300, 100
	g.ballVX, g.ballVY = 0, 0

	g.Update(env, 1.0/60)

	if g.p2.Y != start-5.2 {
		t.Errorf("cpu y = %v, expected %v", g.p2.Y, start-5.2)
	}
}

func TestPaddlesClamped(t *testing.T) {
	g, env := newGame(t)
	env.Input.Press(core.KeyUp)
	for i := 0; i < 100; i++ {
		g.Update(env, 1.0/60)
	}
	if g.p1.Y != 10 {
		t.Errorf("player y = %v, expected 10", g.p1.Y)
	}
	if g.p2.Y < 10 || g.p2.Y > env.H-90 {
		t.Errorf("cpu y = %v out of range", g.p2.Y)
	}
}

func TestBallReflectsOffTop(t *testing.T) {
	g, env := newGame(t)
	g.ballX, g.ballY = 400, 9
	g.ballVX, g.ballVY = 1, -3

	g.Update(env, 1.0/60)

	if g.ballVY != 3 {
		t.Errorf("vy = %v, expected 3", g.ballVY)
	}
}
