package session

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

// counterGame scores one point per running frame and ends at limit.
type counterGame struct {
	id      string
	limit   int
	score   int
	resets  int
	updates int
}

func (g *counterGame) ID() string { return g.id }
func (g *counterGame) Title() string { return "Counter" }
func (g *counterGame) Score() int { return g.score }

func (g *counterGame) Reset(*core.Env) {
	g.score = 0
	g.resets++
}

func (g *counterGame) Update(env *core.Env, _ float64) {
	if env.Paused() {
		return
	}
	g.updates++
	g.score++
	if g.limit > 0 && g.score >= g.limit {
		env.GameOver(g.score)
	}
}

func (g *counterGame) Draw(env *core.Env) {
	env.Canvas.Text("count", 0, 0, 18)
}

type recordingHUD struct {
	scores   [][2]int
	statuses []core.Status
}

func (h *recordingHUD) Score(score, best int) { h.scores = append(h.scores, [2]int{score, best}) }
func (h *recordingHUD) Status(status core.Status) { h.statuses = append(h.statuses, status) }

type memoryHistory struct {
	saved map[string][]int
	err   error
}

func (h *memoryHistory) SaveScore(gameID string, score int) (int64, error) {
	if h.err != nil {
		return 0, h.err
	}
	if h.saved == nil {
		h.saved = make(map[string][]int)
	}
	h.saved[gameID] = append(h.saved[gameID], score)
	return int64(len(h.saved[gameID])), nil
}

type fixture struct {
	sess    *Session
	env     *core.Env
	rec     *core.Recorder
	hud     *recordingHUD
	history *memoryHistory
	a, b    *counterGame
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	rec := &core.Recorder{}
	env := core.NewEnv(core.DefaultConfig(), rec, nil, core.NewMemoryBests())
	a := &counterGame{id: "alpha", limit: 3}
	b := &counterGame{id: "beta"}
	hud := &recordingHUD{}
	history := &memoryHistory{}
	sess := New(env, NewSwitchboard(a, b), Options{HUD: hud, History: history})
	return &fixture{sess: sess, env: env, rec: rec, hud: hud, history: history, a: a, b: b}
}

func TestSwitchResetsAndBinds(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.sess.Switch("beta"))
	assert.Equal(t, "beta", f.sess.Game().ID())
	assert.Equal(t, "best_beta", f.env.Key())
	assert.Equal(t, 1, f.b.resets)
	assert.Equal(t, core.StatusRunning, f.env.Status())
	assert.Equal(t, []core.Status{core.StatusRunning}, f.hud.statuses)
}

func TestSwitchUnknownKeepsCurrent(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.sess.Switch("beta"))

	err := f.sess.Switch("gamma")
	require.Error(t, err)
	assert.True(t, errors.Is(err, registry.ErrUnknownGame))
	assert.Equal(t, "beta", f.sess.Game().ID())
	assert.Equal(t, "best_beta", f.env.Key())
	assert.Equal(t, 1, f.b.resets)
}

func TestFrameOrderAndHUD(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.sess.Switch("beta"))

	f.sess.Frame(0.016)
	f.sess.Frame(0.016)

	require.Len(t, f.hud.scores, 2)
	assert.Equal(t, [2]int{2, 0}, f.hud.scores[1])

	// Clear comes first, then the game's draw ops.
	require.NotEmpty(t, f.rec.Ops)
	assert.Equal(t, core.OpClear, f.rec.Ops[0].Kind)
	assert.Equal(t, []string{"count"}, f.rec.Texts())

	// Status is pushed on change only.
	assert.Equal(t, []core.Status{core.StatusRunning}, f.hud.statuses)
}

func TestFrameWithoutGame(t *testing.T) {
	f := newFixture(t)
	f.sess.Frame(0.016)
	assert.Empty(t, f.hud.scores)
	assert.Equal(t, 1, f.rec.Count(core.OpClear))
}

func TestPauseIdempotence(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.sess.Switch("beta"))
	f.sess.Frame(0.016)

	f.sess.TogglePause()
	assert.Equal(t, core.StatusPaused, f.env.Status())

	for i := 0; i < 5; i++ {
		f.sess.Frame(0.016)
	}
	assert.Equal(t, 1, f.b.score, "no progress while paused")

	f.sess.TogglePause()
	f.sess.Frame(0.016)
	assert.Equal(t, 2, f.b.score)
}

func TestActionResumesAndRestarts(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.sess.Switch("alpha"))

	f.sess.Action()
	assert.Equal(t, core.StatusRunning, f.env.Status(), "action while running is a no-op")

	f.sess.TogglePause()
	f.sess.Action()
	assert.Equal(t, core.StatusRunning, f.env.Status())

	for i := 0; i < 3; i++ {
		f.sess.Frame(0.016)
	}
	require.True(t, f.env.Over())

	// Over only leaves through the action.
	f.sess.TogglePause()
	f.sess.Frame(0.016)
	assert.True(t, f.env.Over())
	assert.Equal(t, 3, f.a.score)

	f.sess.Action()
	assert.Equal(t, core.StatusRunning, f.env.Status())
	assert.Equal(t, 0, f.a.score)
	assert.Equal(t, 2, f.a.resets)
}

func TestGameOverSavesHistoryAndBest(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.sess.Switch("alpha"))

	for i := 0; i < 6; i++ {
		f.sess.Frame(0.016)
	}

	assert.Equal(t, []int{3}, f.history.saved["alpha"], "history is written once per run")
	assert.Equal(t, 3, f.env.Best())
	assert.Equal(t, core.StatusOver, f.hud.statuses[len(f.hud.statuses)-1])
	assert.Equal(t, [2]int{3, 3}, f.hud.scores[len(f.hud.scores)-1])
}

func TestGameOverHistoryErrorIsNotFatal(t *testing.T) {
	f := newFixture(t)
	f.history.err = errors.New("disk full")
	require.NoError(t, f.sess.Switch("alpha"))

	for i := 0; i < 3; i++ {
		f.sess.Frame(0.016)
	}
	assert.True(t, f.env.Over())
	assert.Equal(t, 3, f.env.Best())
}

func TestKeyRouting(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.sess.Switch("beta"))

	f.sess.KeyDown(core.KeyP)
	assert.Equal(t, core.StatusPaused, f.env.Status())

	f.sess.KeyDown(core.KeySpace)
	assert.Equal(t, core.StatusRunning, f.env.Status())

	f.sess.KeyDown(core.KeyLeft)
	assert.True(t, f.env.Input.Held(core.KeyLeft))
	f.sess.Frame(0.016)
	assert.False(t, f.env.Input.Pressed(core.KeyLeft), "edges end with the frame")
	f.sess.KeyUp(core.KeyLeft)
	assert.False(t, f.env.Input.Held(core.KeyLeft))

	f.sess.Frame(0.016)
	f.sess.KeyDown(core.KeyR)
	assert.Equal(t, 0, f.b.score)
	assert.Equal(t, 2, f.b.resets)
}

func TestBestsAreScopedPerGame(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.sess.Switch("alpha"))
	for i := 0; i < 3; i++ {
		f.sess.Frame(0.016)
	}
	require.Equal(t, 3, f.env.Best())

	require.NoError(t, f.sess.Switch("beta"))
	assert.Equal(t, 0, f.env.Best())
}

func TestDriverClampsDelta(t *testing.T) {
	tests := []struct {
		dt, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.016, 0.016},
		{0.033, 0.033},
		{0.5, 0.033},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ClampDelta(tc.dt, DefaultMaxDelta), "ClampDelta(%v)", tc.dt)
	}
}

type dtRecorder struct{ dts []float64 }

func (r *dtRecorder) Frame(dt float64) { r.dts = append(r.dts, dt) }

func TestDriverTick(t *testing.T) {
	rec := &dtRecorder{}
	d := NewDriver(rec, 0)

	start := time.Unix(1000, 0)
	d.Tick(start)
	d.Tick(start.Add(16 * time.Millisecond))
	d.Tick(start.Add(2 * time.Second))
	d.Tick(start.Add(time.Second)) // clock went backwards

	require.Len(t, rec.dts, 4)
	assert.Equal(t, 0.0, rec.dts[0])
	assert.InDelta(t, 0.016, rec.dts[1], 1e-9)
	assert.Equal(t, DefaultMaxDelta, rec.dts[2])
	assert.Equal(t, 0.0, rec.dts[3])

	d.Reset()
	d.Tick(start.Add(10 * time.Second))
	assert.Equal(t, 0.0, rec.dts[4])

	d.Step(250 * time.Millisecond)
	assert.Equal(t, DefaultMaxDelta, rec.dts[5])
}
