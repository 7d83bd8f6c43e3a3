package session

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

// HUD receives the overlay state. Score is pushed every frame, Status on
// change.
type HUD interface {
	Score(score, best int)
	Status(status core.Status)
}

// History records finished runs.
type History interface {
	SaveScore(gameID string, score int) (int64, error)
}

// Options configures a Session. Every field is optional.
type Options struct {
	HUD     HUD
	History History
	Logger  *log.Logger
}

// Session connects one Env to a Switchboard.
type Session struct {
	env     *core.Env
	board   *Switchboard
	hud     HUD
	history History
	logger  *log.Logger

	pushed     bool
	lastStatus core.Status
}

// New creates a session. No game is active until Switch is called.
func New(env *core.Env, board *Switchboard, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		env:     env,
		board:   board,
		hud:     opts.HUD,
		history: opts.History,
		logger:  logger,
	}
}

// Env returns the session context.
func (s *Session) Env() *core.Env {
	return s.env
}

// Board returns the switchboard.
func (s *Session) Board() *Switchboard {
	return s.board
}

// Game returns the active game, or nil.
func (s *Session) Game() registry.Game {
	return s.board.current
}

// Switch makes id the active game, binds its best key and resets it.
// An unknown id leaves the current game untouched.
func (s *Session) Switch(id string) error {
	g, ok := s.board.Get(id)
	if !ok {
		return fmt.Errorf("session: cannot switch: %w %q", registry.ErrUnknownGame, id)
	}
	s.board.current = g
	s.env.Bind(registry.BestKey(id))
	s.env.Input.Clear()
	s.reset()
	s.logger.Debug("Switched game", "game", id, "best", s.env.Best())
	return nil
}

// Restart resets the active game and resumes play.
func (s *Session) Restart() {
	if s.board.current == nil {
		return
	}
	s.reset()
}

func (s *Session) reset() {
	s.board.current.Reset(s.env)
	s.env.Start()
	s.pushStatus()
}

// Action is the primary button: it resumes a paused game and restarts a
// finished one. Running and idle sessions ignore it.
func (s *Session) Action() {
	switch s.env.Status() {
	case core.StatusPaused:
		s.env.Resume()
		s.pushStatus()
	case core.StatusOver:
		s.Restart()
	}
}

// TogglePause flips pause while a game is running or paused.
func (s *Session) TogglePause() {
	s.env.TogglePause()
	s.pushStatus()
}

// Pause suspends a running game.
func (s *Session) Pause() {
	s.env.Pause()
	s.pushStatus()
}

// KeyDown records k as held and handles the session keys.
func (s *Session) KeyDown(k core.Key) {
	s.env.Input.Press(k)
	switch k {
	case core.KeyP:
		s.TogglePause()
	case core.KeySpace:
		s.Action()
	case core.KeyR:
		s.Restart()
	}
}

// KeyUp releases k.
func (s *Session) KeyUp(k core.Key) {
	s.env.Input.Release(k)
}

// Frame runs one update/draw cycle.
func (s *Session) Frame(dt float64) {
	g := s.board.current
	if g == nil {
		s.env.Canvas.Clear()
		s.env.Input.EndFrame()
		return
	}

	before := s.env.Status()
	g.Update(s.env, dt)

	s.env.Canvas.Clear()
	g.Draw(s.env)

	score := g.Score()
	if s.hud != nil {
		s.hud.Score(score, s.env.Best())
	}
	s.pushStatus()

	if before != core.StatusOver && s.env.Over() {
		s.finish(g, score)
	}

	s.env.Input.EndFrame()
}

func (s *Session) finish(g registry.Game, score int) {
	s.logger.Info("Game over", "game", g.ID(), "score", score, "best", s.env.Best())
	if s.history == nil || score <= 0 {
		return
	}
	if _, err := s.history.SaveScore(g.ID(), score); err != nil {
		s.logger.Warn("Saving score failed", "game", g.ID(), "error", err)
	}
}

// pushStatus sends the status to the HUD when it changed.
func (s *Session) pushStatus() {
	st := s.env.Status()
	if s.pushed && st == s.lastStatus {
		return
	}
	s.pushed = true
	s.lastStatus = st
	if s.hud != nil {
		s.hud.Status(st)
	}
}
