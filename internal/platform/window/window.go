// Package window runs a session in a desktop window with Ebiten.
package window

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/session"
)

// Config configures the window.
type Config struct {
	Title  string
	TPS    int
	Scale  float64 // window pixels per logical unit
	HUD    *HUD    // the HUD the session pushes to; nil prints nothing
	Logger *log.Logger
}

// HUD keeps the overlay values the session pushes.
type HUD struct {
	score  int
	best   int
	status core.Status
}

// Score records the current score and best.
func (h *HUD) Score(score, best int) {
	h.score, h.best = score, best
}

// Status records the session state.
func (h *HUD) Status(status core.Status) {
	h.status = status
}

// Line returns the overlay text.
func (h *HUD) Line(title string) string {
	line := fmt.Sprintf("%s  Score %d  Best %d  %s", title, h.score, h.best, h.status)
	if h.status == core.StatusOver {
		line += "  space/r: play again"
	}
	return line
}

// Game adapts a session to ebiten.Game. Frames run in Update and are
// recorded; Draw replays the last recorded frame.
type Game struct {
	session *session.Session
	driver  *session.Driver
	hud     *HUD
	rec     *core.Recorder

	pressed  []ebiten.Key
	released []ebiten.Key
}

// NewGame wires sess to a recorder. The env canvas is replaced.
func NewGame(sess *session.Session, driver *session.Driver, hud *HUD) *Game {
	rec := &core.Recorder{}
	sess.Env().Canvas = rec
	return &Game{session: sess, driver: driver, hud: hud, rec: rec}
}

// Update feeds this tick's key edges to the session and runs a frame.
func (g *Game) Update() error {
	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	g.released = inpututil.AppendJustReleasedKeys(g.released[:0])
	if err := g.feed(g.pressed, g.released); err != nil {
		return err
	}
	g.driver.Tick(time.Now())
	return nil
}

// feed routes key edges. Escape ends the run.
func (g *Game) feed(pressed, released []ebiten.Key) error {
	for _, k := range pressed {
		if k == ebiten.KeyEscape {
			return ebiten.Termination
		}
		if ck, ok := MapKey(k); ok {
			g.session.KeyDown(ck)
		}
	}
	for _, k := range released {
		if ck, ok := MapKey(k); ok {
			g.session.KeyUp(ck)
		}
	}
	return nil
}

// Draw replays the recorded frame and prints the HUD top-left.
func (g *Game) Draw(screen *ebiten.Image) {
	g.rec.Replay(imageCanvas{dst: screen})
	if g.hud == nil {
		return
	}
	title := ""
	if cur := g.session.Game(); cur != nil {
		title = cur.Title()
	}
	ebitenutil.DebugPrintAt(screen, g.hud.Line(title), 8, 4)
}

// Layout keeps the logical surface size regardless of the window size.
func (g *Game) Layout(_, _ int) (int, int) {
	env := g.session.Env()
	return int(env.W), int(env.H)
}

// Run opens a window and blocks until it is closed or Escape is pressed.
func Run(sess *session.Session, driver *session.Driver, cfg Config) error {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}

	env := sess.Env()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(int(env.W*cfg.Scale), int(env.H*cfg.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("Opening window", "title", cfg.Title, "width", env.W, "height", env.H)
	err := ebiten.RunGame(NewGame(sess, driver, cfg.HUD))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	logger.Info("Window closed")
	return nil
}
