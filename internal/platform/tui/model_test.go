package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/session"
)

// stubGame counts frames and remembers the last held keys.
type stubGame struct {
	id      string
	updates int
	left    bool
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return strings.ToUpper(g.id) }
func (g *stubGame) Reset(*core.Env) { g.updates = 0 }
func (g *stubGame) Score() int { return g.updates }
func (g *stubGame) Draw(env *core.Env) { env.Canvas.Text("STUB", env.W/2, env.H/2, 18) }
func (g *stubGame) Update(env *core.Env, _ float64) {
	if env.Paused() {
		return
	}
	g.updates++
	g.left = env.Input.Left()
}

func newTestApp(t *testing.T, start string) (App, *stubGame) {
	t.Helper()
	g := &stubGame{id: "stub"}
	board := session.NewSwitchboard(g, &stubGame{id: "other"})
	rc := core.DefaultConfig()
	rc.Seed = 1
	env := core.NewEnv(rc, nil, nil, nil)
	app := NewApp(env, board, AppConfig{
		TickRate:      60,
		Hold:          100 * time.Millisecond,
		StartGame:     start,
		Width:         96,
		Height:        30,
		ScreenshotDir: t.TempDir(),
	})
	return app, g
}

func send(t *testing.T, m App, msg tea.Msg) App {
	t.Helper()
	next, _ := m.Update(msg)
	app, ok := next.(App)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return app
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestStartGameOpensGameMode(t *testing.T) {
	app, g := newTestApp(t, "stub")
	if app.mode != modeGame {
		t.Fatalf("mode = %v, expected game", app.mode)
	}

	now := time.Now()
	app = send(t, app, TickMsg(now))
	app = send(t, app, TickMsg(now.Add(16*time.Millisecond)))
	if g.updates != 2 {
		t.Errorf("updates = %d, expected 2", g.updates)
	}
	if !strings.Contains(app.View(), "STUB") {
		t.Error("game view should show the rastered frame")
	}
}

func TestUnknownStartGameStaysInMenu(t *testing.T) {
	app, _ := newTestApp(t, "nope")
	if app.mode != modeMenu {
		t.Fatalf("mode = %v, expected menu", app.mode)
	}
	if !errors.Is(app.session.Switch("nope"), registry.ErrUnknownGame) {
		t.Error("switching to an unknown id should fail with ErrUnknownGame")
	}
	if !strings.Contains(app.View(), "unknown game") {
		t.Error("menu should show the switch error inline")
	}
}

func TestMenuSelectsGame(t *testing.T) {
	app, g := newTestApp(t, "")
	// Items are sorted: other, stub.
	app = send(t, app, tea.KeyMsg{Type: tea.KeyDown})
	app = send(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	if app.mode != modeGame || app.session.Game() != registry.Game(g) {
		t.Fatal("enter should open the highlighted game")
	}
}

func TestKeyHeldUntilHoldExpires(t *testing.T) {
	app, g := newTestApp(t, "stub")
	app = send(t, app, tea.KeyMsg{Type: tea.KeyLeft})

	app = send(t, app, TickMsg(time.Now()))
	if !g.left {
		t.Fatal("left should be held right after the key message")
	}

	app = send(t, app, TickMsg(time.Now().Add(time.Second)))
	if g.left {
		t.Error("left should be released once the hold expires")
	}
}

func TestEscPausesAndReturnsToMenu(t *testing.T) {
	app, g := newTestApp(t, "stub")
	app = send(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.mode != modeMenu {
		t.Fatalf("mode = %v, expected menu", app.mode)
	}
	if app.session.Env().Status() != core.StatusPaused {
		t.Errorf("status = %v, expected paused", app.session.Env().Status())
	}
	send(t, app, TickMsg(time.Now()))
	if g.updates != 0 {
		t.Error("menu mode should not run frames")
	}
}

func TestScreenshot(t *testing.T) {
	app, _ := newTestApp(t, "stub")
	app = send(t, app, TickMsg(time.Now()))
	app = send(t, app, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !strings.HasPrefix(app.notice, "saved ") {
		t.Errorf("notice = %q, expected a saved path", app.notice)
	}
}

func TestQuit(t *testing.T) {
	app, _ := newTestApp(t, "stub")
	_, cmd := app.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	app, _ := newTestApp(t, "")
	app = send(t, app, tea.KeyMsg{Type: tea.KeyTab})
	if app.mode != modeScores {
		t.Fatalf("mode = %v, expected scores", app.mode)
	}
	if !strings.Contains(app.View(), "not stored") {
		t.Error("scoreboard should explain that no store is attached")
	}
	app = send(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.mode != modeMenu {
		t.Error("esc should go back to the menu")
	}
}
