package breakout

import (
	"math"
	"testing"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

func newGame(t *testing.T) (*Game, *core.Env) {
	t.Helper()
	env := core.NewEnv(core.DefaultConfig(), nil, nil, nil)
	env.Bind(registry.BestKey("breakout"))
	g := New(config.Default().Breakout)
	g.Reset(env)
	env.Start()
	return g, env
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestResetLayout(t *testing.T) {
	g, env := newGame(t)
	snap := g.Snapshot()

	if snap.BricksRemaining != 72 {
		t.Errorf("bricks = %d, expected 72", snap.BricksRemaining)
	}
	if snap.PaddleX != env.W/2-50 {
		t.Errorf("paddle x = %v, expected %v", snap.PaddleX, env.W/2-50)
	}
	if snap.BallVX != 3.6 || snap.BallVY != -3.8 {
		t.Errorf("ball velocity = (%v, %v)", snap.BallVX, snap.BallVY)
	}

	first := g.level.Bricks[0]
	pitch := (env.W - 100) / 12
	if first.X != 50 || first.Y != 70 || !approx(first.W, pitch-6) || first.H != 18 {
		t.Errorf("first brick = %+v", first.Box)
	}
	last := g.level.Bricks[len(g.level.Bricks)-1]
	if last.Y != 70+5*26 {
		t.Errorf("last row y = %v, expected %v", last.Y, 70+5*26)
	}
}

func TestPaddleReflectsWithSpin(t *testing.T) {
	g, env := newGame(t)
	p := g.paddle

	// After one move the ball sits 25 units right of the paddle center.
	g.ball = Ball{X: p.CenterX() + 25, Y: p.Y + 6 - 3, VX: 0, VY: 3, R: 7}
	g.Update(env, 1.0/60)

	if g.ball.VY != -3 {
		t.Errorf("vy = %v, expected -3", g.ball.VY)
	}
	if !approx(g.ball.VX, 0.25*3) {
		t.Errorf("vx = %v, expected %v", g.ball.VX, 0.25*3)
	}
}

func TestPaddleEdgeDoesNotReflect(t *testing.T) {
	g, _ := newGame(t)
	p := g.paddle
	b := &Ball{X: p.X, Y: p.Y + 6, VY: 3}

	if p.Deflect(b, 3) {
		t.Error("a ball exactly on the paddle edge should miss")
	}
	if b.VY != 3 {
		t.Errorf("vy changed to %v", b.VY)
	}
}

func TestPaddleClampedToWalls(t *testing.T) {
	g, env := newGame(t)
	env.Input.Press(core.KeyRight)
	for i := 0; i < 200; i++ {
		g.paddle.Steer(1, env.W)
	}
	if g.paddle.X != env.W-g.paddle.W-8 {
		t.Errorf("paddle x = %v, expected %v", g.paddle.X, env.W-g.paddle.W-8)
	}

	for i := 0; i < 200; i++ {
		g.paddle.Steer(-1, env.W)
	}
	if g.paddle.X != 8 {
		t.Errorf("paddle x = %v, expected 8", g.paddle.X)
	}
}

func TestBrickHitScoresAndFlips(t *testing.T) {
	g, env := newGame(t)
	b := g.level.Bricks[0]
	g.ball = Ball{X: b.CenterX(), Y: b.CenterY() + 2, VX: 0, VY: -2, R: 7}

	g.Update(env, 1.0/60)

	snap := g.Snapshot()
	if snap.Score != 5 {
		t.Errorf("score = %d, expected 5", snap.Score)
	}
	if snap.BallVY != 2 {
		t.Errorf("vy = %v, expected 2", snap.BallVY)
	}
	if snap.BricksRemaining != 71 {
		t.Errorf("bricks = %d, expected 71", snap.BricksRemaining)
	}
}

func TestClearedWallIsRebuilt(t *testing.T) {
	g, env := newGame(t)
	for i := 1; i < len(g.level.Bricks); i++ {
		g.level.Bricks[i].Alive = false
	}
	b := g.level.Bricks[0]
	g.ball = Ball{X: b.CenterX(), Y: b.CenterY() + 2, VY: -2, R: 7}

	g.Update(env, 1.0/60)

	if n := g.level.CountAlive(); n != 72 {
		t.Errorf("bricks after clearing = %d, expected 72", n)
	}
}

func TestBallLostEndsGame(t *testing.T) {
	g, env := newGame(t)
	g.score = 15
	g.ball = Ball{X: 300, Y: env.H + 19, VY: 4, R: 7}

	g.Update(env, 1.0/60)

	if !env.Over() {
		t.Fatal("ball below the screen should end the game")
	}
	if env.Best() != 15 {
		t.Errorf("best = %d, expected 15", env.Best())
	}
}

func TestWallReflection(t *testing.T) {
	g, env := newGame(t)
	g.ball = Ball{X: 9, Y: 300, VX: -3, VY: 1, R: 7}
	g.Update(env, 1.0/60)
	if g.ball.VX != 3 {
		t.Errorf("vx = %v, expected 3 after the left wall", g.ball.VX)
	}

	g.ball = Ball{X: 400, Y: 9, VX: 0, VY: -3, R: 7}
	g.Update(env, 1.0/60)
	if g.ball.VY != 3 {
		t.Errorf("vy = %v, expected 3 after the ceiling", g.ball.VY)
	}
}

func TestPausedDoesNothing(t *testing.T) {
	g, env := newGame(t)
	env.Pause()
	before := g.Snapshot()
	g.Update(env, 1.0/60)
	if g.Snapshot() != before {
		t.Error("paused update changed state")
	}
}
