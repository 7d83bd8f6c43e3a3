package dino

import (
	"math"
	"testing"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
)

func newGame(t *testing.T) (*Game, *core.Env) {
	t.Helper()
	rc := core.DefaultConfig()
	rc.Seed = 99
	env := core.NewEnv(rc, nil, nil, nil)
	env.Bind("best_dino")
	g := New(config.Default().Dino)
	g.Reset(env)
	env.Start()
	return g, env
}

func TestReset(t *testing.T) {
	g, env := newGame(t)
	if g.groundY != env.H-60 || g.playerY != g.groundY-40 {
		t.Errorf("ground %v, player %v", g.groundY, g.playerY)
	}
	cacti := g.obstacles.Cacti()
	if len(cacti) != 4 {
		t.Fatalf("cacti = %d, expected 4", len(cacti))
	}
	for i, c := range cacti {
		if c.X != 420+float64(i)*240 {
			t.Errorf("cactus %d x = %v", i, c.X)
		}
		if c.Y+c.H != g.groundY {
			t.Errorf("cactus %d does not stand on the ground", i)
		}
	}
}

func TestJumpOnlyFromGround(t *testing.T) {
	g, env := newGame(t)
	env.Input.Press(core.KeySpace)

	g.Update(env, 1.0/60)
	if math.Abs(g.playerVel-(-12+0.6)) > 1e-9 {
		t.Fatalf("velocity = %v, expected %v", g.playerVel, -12+0.6)
	}

	vel := g.playerVel
	g.Update(env, 1.0/60)
	if g.playerVel != vel+0.6 {
		t.Errorf("mid-air jump should be ignored, velocity = %v", g.playerVel)
	}
}

func TestLandingClampsToGround(t *testing.T) {
	g, env := newGame(t)
	g.playerY = g.groundY - PlayerH - 1
	g.playerVel = 5

	g.Update(env, 1.0/60)

	if g.playerY != g.groundY-PlayerH || g.playerVel != 0 {
		t.Errorf("player = (%v, %v), expected landed", g.playerY, g.playerVel)
	}
}

func TestPassingScores(t *testing.T) {
	g, env := newGame(t)
	first := &g.obstacles.cacti[0]
	first.X = -first.W + 1

	g.Update(env, 1.0/60)

	if g.Score() != 1 {
		t.Errorf("score = %d, expected 1", g.Score())
	}
	cacti := g.obstacles.Cacti()
	if len(cacti) != 4 || cacti[3].X != env.W+240 {
		t.Errorf("respawned cactus at %v, expected %v", cacti[3].X, env.W+240)
	}
}

func TestTouchingCactusEndsGame(t *testing.T) {
	g, env := newGame(t)
	c := &g.obstacles.cacti[0]
	// After the scroll the cactus's left edge touches the player's right edge.
	c.X = PlayerX + PlayerW + 4

	g.Update(env, 1.0/60)

	if !env.Over() {
		t.Error("an edge contact should end the game")
	}
}
