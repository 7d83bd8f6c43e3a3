package bubbleshooter

import (
	"testing"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/games/grid"
)

func newGame(t *testing.T) (*Game, *core.Env) {
	t.Helper()
	rc := core.DefaultConfig()
	rc.Seed = 12
	env := core.NewEnv(rc, nil, nil, nil)
	env.Bind("best_bubbleshooter")
	g := New()
	g.Reset(env)
	env.Start()
	return g, env
}

func TestResetFillsTopRows(t *testing.T) {
	g, _ := newGame(t)
	if g.board.Count() != filledRows*cols {
		t.Errorf("bubbles = %d, expected %d", g.board.Count(), filledRows*cols)
	}
	if g.shot.flying {
		t.Error("the cannon should be loaded, not firing")
	}
}

func TestAimClamped(t *testing.T) {
	g, env := newGame(t)
	env.Input.Press(core.KeyLeft)
	for i := 0; i < 100; i++ {
		g.Update(env, 0)
	}
	if g.aim != -aimLimit {
		t.Errorf("aim = %v, expected %v", g.aim, -aimLimit)
	}
}

func TestFireStraightUp(t *testing.T) {
	g, env := newGame(t)
	env.Input.Press(core.KeySpace)
	g.Update(env, 0)
	if !g.shot.flying || g.shot.vy != -shotSpeed || g.shot.vx != 0 {
		t.Errorf("shot = %+v, expected straight up at speed %d", g.shot, shotSpeed)
	}
}

func TestShotReflectsOffWall(t *testing.T) {
	g, env := newGame(t)
	right := g.left + cols*cell
	g.shot = bubble{x: right - radius - 1, y: env.H / 2, vx: 5, vy: -1, flying: true, color: 1}
	g.Update(env, 0)
	if g.shot.vx >= 0 {
		t.Errorf("vx = %v, expected a bounce off the right wall", g.shot.vx)
	}
}

func TestSnapPopsGroup(t *testing.T) {
	g, env := newGame(t)
	g.board.Clear()
	g.board.Set(0, 0, 1)
	g.board.Set(1, 0, 1)

	x, y := g.center(grid.Point{X: 2, Y: 0})
	g.snap(env, x, y, 1)

	if g.Score() != 3 || g.board.Count() != 0 {
		t.Errorf("score %d, bubbles %d", g.Score(), g.board.Count())
	}
}

func TestSnapDropsFloating(t *testing.T) {
	g, env := newGame(t)
	g.board.Clear()
	g.board.Set(6, 0, 1)
	g.board.Set(6, 1, 1)
	g.board.Set(6, 2, 2) // hangs only through the 1s

	x, y := g.center(grid.Point{X: 7, Y: 0})
	g.snap(env, x, y, 1)

	if g.board.Count() != 0 {
		t.Errorf("bubbles = %d, the orphan should drop", g.board.Count())
	}
	if g.Score() != 3 {
		t.Errorf("score = %d, dropped bubbles do not score", g.Score())
	}
}

func TestShotSnapsAtCeiling(t *testing.T) {
	g, env := newGame(t)
	g.board.Clear()
	x, _ := g.center(grid.Point{X: 4, Y: 0})
	g.shot = bubble{x: x, y: top + radius + 2, vy: -shotSpeed, flying: true, color: 2}

	g.Update(env, 0)

	if g.board.Get(4, 0) != 2 {
		t.Error("shot should stick to the ceiling")
	}
	if g.shot.flying {
		t.Error("a new bubble should be loaded")
	}
}

func TestSnapIntoLastRowLoses(t *testing.T) {
	g, env := newGame(t)
	g.board.Clear()
	x, y := g.center(grid.Point{X: 0, Y: rows - 1})
	g.snap(env, x, y, 1)
	if !env.Over() {
		t.Error("a bubble in the last row should end the game")
	}
}
