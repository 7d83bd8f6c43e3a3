package pipemania

import (
	"testing"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/games/grid"
)

func newGame(t *testing.T) (*Game, *core.Env) {
	t.Helper()
	rc := core.DefaultConfig()
	rc.Seed = 27
	env := core.NewEnv(rc, nil, nil, nil)
	env.Bind("best_pipemania")
	g := New()
	g.Reset(env)
	env.Start()
	return g, env
}

func TestFlowFollowsTiles(t *testing.T) {
	g, env := newGame(t)
	g.tiles.Fill(func(int, int) int { return dirRight })

	g.Update(env, 0.3)
	if len(g.flow) != 1 {
		t.Fatal("flow should wait for its timer")
	}
	g.Update(env, 0.3)

	if len(g.flow) != 2 || g.flow[1] != (grid.Point{X: 1, Y: size / 2}) {
		t.Errorf("flow = %v, expected one step right", g.flow)
	}
	if g.Score() != 1 {
		t.Errorf("score = %d, expected 1", g.Score())
	}
}

func TestFlowLeavingBoardLoses(t *testing.T) {
	g, env := newGame(t)
	g.tiles.Fill(func(int, int) int { return dirLeft })

	g.Update(env, 0.5)

	if !env.Over() {
		t.Error("flow leaving the left edge should end the game")
	}
	if len(g.flow) != 1 {
		t.Error("the flow should not grow past the edge")
	}
}

func TestSpaceTurnsCenterTileOncePerPress(t *testing.T) {
	g, env := newGame(t)
	g.tiles.Set(size/2, size/2, dirUp)

	env.Input.Press(core.KeySpace)
	g.Update(env, 0)
	if got := g.tiles.Get(size/2, size/2); got != dirRight {
		t.Errorf("tile = %d, expected the turn to wrap to %d", got, dirRight)
	}

	env.Input.EndFrame()
	g.Update(env, 0)
	if got := g.tiles.Get(size/2, size/2); got != dirRight {
		t.Errorf("tile = %d, a held key should not turn it again", got)
	}
}
