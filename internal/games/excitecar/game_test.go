package excitecar

import (
	"testing"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

func newGame(t *testing.T) (*Game, *core.Env) {
	t.Helper()
	rc := core.DefaultConfig()
	rc.Seed = 21
	env := core.NewEnv(rc, nil, nil, nil)
	env.Bind("best_excitecar")
	g := New()
	g.Reset(env)
	env.Start()
	return g, env
}

func TestLaneChangeOncePerPress(t *testing.T) {
	g, env := newGame(t)
	g.obstacles = nil

	env.Input.Press(core.KeyRight)
	g.Update(env, 1.0/60)
	env.Input.EndFrame()
	g.Update(env, 1.0/60)
	if g.lane != 3 {
		t.Errorf("lane = %d, expected 3 after one press", g.lane)
	}

	env.Input.Press(core.KeyRight)
	g.Update(env, 1.0/60)
	if g.lane != 3 {
		t.Errorf("lane = %d, expected clamp at 3", g.lane)
	}
}

func TestCarCenteredInLane(t *testing.T) {
	g, _ := newGame(t)
	w := g.laneW * 0.5
	if x := g.laneX(2, w); x+w/2 != 1.5*g.laneW {
		t.Errorf("lane 2 center = %v, expected %v", x+w/2, 1.5*g.laneW)
	}
}

func TestPassedObstacleScoresAndRespawnsAbove(t *testing.T) {
	g, env := newGame(t)
	g.obstacles = []obstacle{{lane: 1, y: env.H - 2}, {lane: 3, y: -100}}
	g.lane = 2

	g.Update(env, 1.0/60)

	if g.Score() != 1 {
		t.Errorf("score = %d, expected 1", g.Score())
	}
	// One gap above where the highest obstacle sits after this frame's scroll.
	if y := g.obstacles[0].y; y != -100+4-240 {
		t.Errorf("respawned y = %v, expected -336", y)
	}
}

func TestSameLaneContactEndsGame(t *testing.T) {
	g, env := newGame(t)
	g.obstacles = []obstacle{{lane: 2, y: g.carY - 20}}

	g.Update(env, 1.0/60)

	if !env.Over() {
		t.Error("obstacle in the car's lane should end the game")
	}
}

func TestOtherLaneIsSafe(t *testing.T) {
	g, env := newGame(t)
	g.obstacles = []obstacle{{lane: 1, y: g.carY}}

	g.Update(env, 1.0/60)

	if env.Over() {
		t.Error("obstacle in another lane should not collide")
	}
}
