package drmario

import (
	"testing"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/games/grid"
)

func newGame(t *testing.T) (*Game, *core.Env) {
	t.Helper()
	rc := core.DefaultConfig()
	rc.Seed = 44
	env := core.NewEnv(rc, nil, nil, nil)
	env.Bind("best_drmario")
	g := New()
	g.Reset(env)
	env.Start()
	return g, env
}

func TestClearTriplesScansLeftToRight(t *testing.T) {
	b := grid.New(1, 8)
	for x := 0; x < 7; x++ {
		b.Set(x, 0, 1+x%3)
	}
	// Seven occupied cells: two triples clear, the seventh stays.
	if n := clearTriples(b); n != 2 {
		t.Fatalf("triples = %d, expected 2", n)
	}
	if b.Get(6, 0) == 0 || b.Count() != 1 {
		t.Errorf("remaining = %d, expected only the seventh cell", b.Count())
	}
}

func TestTurnVertical(t *testing.T) {
	g, env := newGame(t)
	env.Input.Press(core.KeyUp)
	g.Update(env, 0)
	if g.capsule.Height() != 2 {
		t.Error("capsule should turn vertical")
	}
}

func TestLandingCapsuleClearsTriple(t *testing.T) {
	g, env := newGame(t)
	g.board.Set(2, rows-1, 1)
	g.x, g.y = 3, rows-1

	g.Update(env, 0.71)

	if g.Score() != 6 {
		t.Errorf("score = %d, expected 6", g.Score())
	}
	if g.board.Count() != 0 {
		t.Errorf("board cells = %d, expected empty", g.board.Count())
	}
	if g.y != 0 {
		t.Error("a new capsule should spawn")
	}
}

func TestBlockedSpawnEndsGame(t *testing.T) {
	g, env := newGame(t)
	g.board.Set(3, 1, 1)
	g.board.Set(4, 1, 1)
	g.y = 0

	g.Update(env, 0.71)

	if !env.Over() {
		t.Error("a capsule locking at the top should end the game on respawn")
	}
}
