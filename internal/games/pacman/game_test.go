package pacman

import (
	"testing"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

func newGame(t *testing.T) (*Game, *core.Env) {
	t.Helper()
	env := core.NewEnv(core.DefaultConfig(), nil, nil, nil)
	env.Bind("best_pacman")
	g := New()
	g.Reset(env)
	env.Start()
	return g, env
}

func TestPelletLattice(t *testing.T) {
	g, _ := newGame(t)
	// x: 40..904 step 24 -> 37 columns, y: 40..496 step 24 -> 20 rows
	if len(g.pellets) != 37*20 || g.left != len(g.pellets) {
		t.Errorf("pellets = %d (left %d), expected %d", len(g.pellets), g.left, 37*20)
	}
}

func TestEatingScores(t *testing.T) {
	g, env := newGame(t)
	g.ghosts = nil
	before := g.left
	g.px, g.py = 40+24*10, 40+24*5 // on a lattice point

	g.Update(env, 1.0/60)

	if g.Score() != 1 || before-g.left != 1 {
		t.Errorf("score = %d, eaten = %d", g.Score(), before-g.left)
	}
}

func TestEatenOutBoardRefills(t *testing.T) {
	g, env := newGame(t)
	g.ghosts = nil
	for i := range g.pellets {
		g.pellets[i].eaten = true
	}
	g.left = 1
	g.pellets[0].eaten = false
	g.px, g.py = g.pellets[0].x, g.pellets[0].y

	g.Update(env, 1.0/60)

	if g.left != len(g.pellets) || g.pellets[0].eaten {
		t.Error("eaten-out board should refill")
	}
	if g.Score() != 1 {
		t.Errorf("score = %d, expected 1", g.Score())
	}
}

func TestGhostBouncesAndCatches(t *testing.T) {
	g, env := newGame(t)
	g.ghosts = []ghost{{x: 21, y: 300, vx: -2, vy: 0}}
	g.Update(env, 1.0/60)
	if g.ghosts[0].vx != 2 {
		t.Errorf("ghost vx = %v, expected 2", g.ghosts[0].vx)
	}

	g.ghosts = []ghost{{x: g.px + 10, y: g.py, vx: 0, vy: 0}}
	g.Update(env, 1.0/60)
	if !env.Over() {
		t.Error("a ghost within range should end the game")
	}
}
