package mario

import (
	"testing"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

func newGame(t *testing.T) (*Game, *core.Env) {
	t.Helper()
	env := core.NewEnv(core.DefaultConfig(), nil, nil, nil)
	env.Bind("best_mario")
	g := New()
	g.Reset(env)
	env.Start()
	return g, env
}

func TestPlayerLandsAndAccruesScore(t *testing.T) {
	g, env := newGame(t)
	for i := 0; i < 60; i++ {
		g.Update(env, 1.0/60)
	}
	if !g.player.OnGround {
		t.Error("player should rest on the bottom floor")
	}
	if g.player.Y+g.player.H != env.H-40 {
		t.Errorf("feet at %v, expected %v", g.player.Y+g.player.H, env.H-40)
	}
	if s := g.Score(); s < 9 || s > 10 {
		t.Errorf("score after one second = %d, expected about 10", s)
	}
}

func TestJumpFromGround(t *testing.T) {
	g, env := newGame(t)
	g.Update(env, 1.0/60) // settle
	env.Input.Press(core.KeySpace)
	g.Update(env, 1.0/60)

	if g.player.VY >= 0 {
		t.Errorf("vy = %v, expected a jump", g.player.VY)
	}
}

func TestEnemyBouncesAtEdge(t *testing.T) {
	g, env := newGame(t)
	g.enemy.X = 40.5
	g.enemy.VX = -1.2

	g.Update(env, 1.0/60)

	if g.enemy.VX != 1.2 {
		t.Errorf("enemy vx = %v, expected 1.2", g.enemy.VX)
	}
}

func TestEnemyContactEndsGame(t *testing.T) {
	g, env := newGame(t)
	g.enemy.X = g.player.X + 10
	g.enemy.VX = 0

	g.Update(env, 1.0/60)

	if !env.Over() {
		t.Error("touching the enemy should end the game")
	}
}
