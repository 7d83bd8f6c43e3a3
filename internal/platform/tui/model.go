package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/session"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

// chromeRows is the number of terminal rows taken by the HUD and help lines.
const chromeRows = 2

type mode int

const (
	modeMenu mode = iota
	modeGame
	modeScores
)

// AppConfig configures an App. Every field but the size is optional.
type AppConfig struct {
	TickRate  int
	MaxDelta  float64       // frame dt cap, seconds
	Hold      time.Duration // synthetic key-up delay
	StartGame string        // game to open directly; empty starts in the menu
	Width     int           // initial terminal size
	Height    int

	Store  *storage.Store
	Bests  core.BestStore // shown in the menu
	Logger *log.Logger

	ScreenshotDir string
}

// App is the Bubble Tea model for one player: the menu, a running game and
// the scoreboard.
type App struct {
	cfg     AppConfig
	session *session.Session
	driver  *session.Driver
	hud     *HUD
	screen  *core.Screen
	holds   *holdTracker
	mapper  *KeyMapper
	logger  *log.Logger

	menu   menu
	scores scoreboard
	help   help.Model
	keys   GameKeyMap
	mkeys  MenuKeyMap

	mode     mode
	width    int
	height   int
	notice   string
	quitting bool
}

// NewApp wires a session over env and board and draws it into a terminal
// screen. env.Canvas is replaced by the terminal raster.
func NewApp(env *core.Env, board *session.Switchboard, cfg AppConfig) App {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	}
	width, height := max(cfg.Width, 20), max(cfg.Height, 10)

	screen := core.NewScreen(width, height-chromeRows)
	env.Canvas = core.NewRaster(screen, env.W, env.H)

	hud := &HUD{}
	opts := session.Options{HUD: hud, Logger: logger}
	if cfg.Store != nil {
		opts.History = cfg.Store
	}
	sess := session.New(env, board, opts)

	h := help.New()
	h.Width = width

	app := App{
		cfg:     cfg,
		session: sess,
		driver:  session.NewDriver(sess, cfg.MaxDelta),
		hud:     hud,
		screen:  screen,
		holds:   newHoldTracker(cfg.Hold),
		mapper:  NewKeyMapper(),
		logger:  logger,
		menu:    newMenu(board),
		scores:  newScoreboard(cfg.Store, gameInfos(board), width, height),
		help:    h,
		keys:    DefaultGameKeyMap(),
		mkeys:   DefaultMenuKeyMap(),
		width:   width,
		height:  height,
	}

	if cfg.StartGame != "" {
		app.menu.focus(cfg.StartGame)
		app.open(cfg.StartGame)
	}
	return app
}

func gameInfos(board *session.Switchboard) []registry.GameInfo {
	ids := board.IDs()
	infos := make([]registry.GameInfo, 0, len(ids))
	for _, id := range ids {
		g, _ := board.Get(id)
		infos = append(infos, registry.GameInfo{ID: id, Title: g.Title()})
	}
	return infos
}

// Session returns the session the App drives.
func (m App) Session() *session.Session {
	return m.session
}

// Init starts the tick loop.
func (m App) Init() tea.Cmd {
	return tickCmd(m.cfg.TickRate)
}

// Update handles messages and updates the model state.
func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		m.tick(time.Time(msg))
		return m, tickCmd(m.cfg.TickRate)

	case tea.KeyMsg:
		switch m.mode {
		case modeGame:
			return m.handleGameKey(msg)
		case modeScores:
			return m.handleScoresKey(msg)
		default:
			return m.handleMenuKey(msg)
		}
	}
	return m, nil
}

func (m *App) resize(width, height int) {
	m.width, m.height = width, height
	m.screen.Resize(width, max(height-chromeRows, 1))
	m.scores.resize(width, height)
	m.help.Width = width
}

// tick releases expired holds and runs a frame while a game is open.
func (m *App) tick(now time.Time) {
	if m.mode != modeGame {
		m.driver.Reset()
		return
	}
	for _, k := range m.holds.Expire(now) {
		m.session.KeyUp(k)
	}
	m.driver.Tick(now)
}

// open switches to id and enters game mode. A failed switch stays in the
// menu and shows the error there.
func (m *App) open(id string) {
	if err := m.session.Switch(id); err != nil {
		m.menu.err = err.Error()
		m.mode = modeMenu
		return
	}
	m.menu.err = ""
	m.notice = ""
	m.holds.Reset()
	m.driver.Reset()
	m.mode = modeGame
}

func (m App) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.mkeys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.mkeys.Up):
		m.menu.move(-1)
	case key.Matches(msg, m.mkeys.Down):
		m.menu.move(1)
	case key.Matches(msg, m.mkeys.Scores):
		m.scores.step(0)
		m.mode = modeScores
	case key.Matches(msg, m.mkeys.Select):
		if id, ok := m.menu.selected(); ok {
			m.open(id)
		}
	}
	return m, nil
}

func (m App) handleScoresKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.scores.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.scores.keys.Back):
		m.mode = modeMenu
		return m, nil
	}
	return m, m.scores.update(msg)
}

func (m App) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Menu):
		m.session.Pause()
		m.releaseAll()
		m.mode = modeMenu
		return m, nil
	case key.Matches(msg, m.keys.Shot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("Screenshot failed", "error", err)
			m.notice = "screenshot failed"
		} else {
			m.notice = "saved " + path
		}
		return m, nil
	}

	k, ok := m.mapper.MapKey(msg)
	if !ok {
		return m, nil
	}
	if m.holds.Press(k, time.Now()) {
		m.session.KeyDown(k)
	}
	return m, nil
}

func (m *App) releaseAll() {
	m.holds.Reset()
	m.session.Env().Input.Clear()
}

// saveScreenshot writes the current screen as text.
func (m *App) saveScreenshot() (string, error) {
	g := m.session.Game()
	if g == nil {
		return "", errors.New("tui: no game to capture")
	}
	if err := os.MkdirAll(m.cfg.ScreenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.cfg.ScreenshotDir, fmt.Sprintf("%s_%s.txt", g.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current mode.
func (m App) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeGame:
		title := ""
		if g := m.session.Game(); g != nil {
			title = g.Title()
		}
		footer := m.help.View(m.keys)
		if m.notice != "" {
			footer = m.notice
		}
		return m.hud.View(title) + "\n" + RenderScreen(m.screen) + "\n" + footer

	case modeScores:
		return m.scores.view(m.help)

	default:
		return m.menu.view(m.width, m.height, m.cfg.Bests) + "\n" + centerText(m.help.View(m.mkeys), m.width)
	}
}

// Run starts a Bubble Tea program for app on the current terminal.
func Run(app App) error {
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
