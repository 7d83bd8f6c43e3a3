package commander

import (
	"testing"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

func newGame(t *testing.T) (*Game, *core.Env) {
	t.Helper()
	rc := core.DefaultConfig()
	rc.Seed = 4
	env := core.NewEnv(rc, nil, nil, nil)
	env.Bind("best_commander")
	g := New()
	g.Reset(env)
	env.Start()
	return g, env
}

func TestSpawnInterval(t *testing.T) {
	g, env := newGame(t)
	for i := 0; i < 3; i++ {
		g.Update(env, 0.25)
	}
	if len(g.foes) != 1 {
		t.Fatalf("foes = %d, expected 1 after 0.75s", len(g.foes))
	}
	f := g.foes[0]
	if f.Y < 40 || f.Y > env.H-40 {
		t.Errorf("foe y = %v out of range", f.Y)
	}
}

func TestBulletHitScores(t *testing.T) {
	g, env := newGame(t)
	g.foes = []foe{{Box: core.Box{X: 300, Y: 100, W: 24, H: 18}}}
	g.bullets = []bullet{{x: 300 + 2.4 + 4 - 8, y: 109}}

	g.Update(env, 1.0/60)

	if g.Score() != 5 || len(g.foes) != 0 || len(g.bullets) != 0 {
		t.Errorf("score %d, foes %d, bullets %d", g.Score(), len(g.foes), len(g.bullets))
	}
}

func TestPassedFoesAreDropped(t *testing.T) {
	g, env := newGame(t)
	g.foes = []foe{{Box: core.Box{X: -28, Y: 10, W: 24, H: 18}}}

	g.Update(env, 1.0/60)

	if len(g.foes) != 0 {
		t.Error("foe past the left edge should be dropped")
	}
	if env.Over() {
		t.Error("a passed foe should not end the game")
	}
}

func TestTouchingFoeEndsGame(t *testing.T) {
	g, env := newGame(t)
	g.foes = []foe{{Box: core.Box{X: g.ship.X + 10, Y: g.ship.Y, W: 24, H: 18}}}

	g.Update(env, 1.0/60)

	if !env.Over() {
		t.Error("overlapping a foe should end the game")
	}
}

func TestShipClamped(t *testing.T) {
	g, env := newGame(t)
	env.Input.Press(core.KeyDown)
	for i := 0; i < 200; i++ {
		g.Update(env, 0)
	}
	if g.ship.Y != env.H-20 {
		t.Errorf("ship y = %v, expected %v", g.ship.Y, env.H-20)
	}
}
