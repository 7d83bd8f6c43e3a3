package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-arcade/internal/audio"
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/session"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

// arcade bundles what every front end command needs.
type arcade struct {
	cfg    config.Config
	logger *log.Logger
	store  *storage.Store // nil when the database could not be opened
	bests  core.BestStore
	audio  core.Audio
	seed   int64

	closers []func() error
}

// setupOptions controls the optional parts of setup.
type setupOptions struct {
	store     bool      // open the score database
	audio     bool      // honor --sound and audio.enabled
	logOutput io.Writer // log destination without --log-file
}

// setup loads the config, opens the logger and, when asked, the store and
// the audio player. Callers must call close.
func setup(cmd *cobra.Command, opts setupOptions) (*arcade, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("fps") {
		cfg.Loop.TickRate = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &arcade{cfg: cfg, seed: flagSeed, audio: core.Silence{}}
	if a.seed == 0 {
		a.seed = time.Now().UnixNano()
	}

	if err := a.openLogger(opts.logOutput); err != nil {
		return nil, err
	}

	a.bests = core.NewMemoryBests()
	if opts.store {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
			a.logger.Warn("Scores are not stored", "error", err)
		} else {
			a.store = store
			a.bests = storage.NewBestCache(store, a.logger)
			a.closers = append(a.closers, store.Close)
		}
	}

	if opts.audio && (flagSound || cfg.Audio.Enabled) {
		player, err := audio.NewPlayer(cfg.Audio.SampleRate, cfg.Audio.Volume)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
			a.logger.Warn("Sound disabled", "error", err)
		} else {
			a.audio = player
			a.closers = append(a.closers, player.Close)
		}
	}

	a.logger.Debug("Arcade ready", "seed", a.seed, "tick_rate", cfg.Loop.TickRate, "db", a.store != nil)
	return a, nil
}

func (a *arcade) openLogger(fallback io.Writer) error {
	out := fallback
	if out == nil {
		out = io.Discard
	}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		a.closers = append(a.closers, f.Close)
		out = f
	}
	a.logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	})
	return nil
}

// close releases everything setup opened, last opened first.
func (a *arcade) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("Close failed", "error", err)
		}
	}
	a.closers = nil
}

// newEnv creates a player context drawing on canvas.
func (a *arcade) newEnv(canvas core.Canvas) *core.Env {
	return core.NewEnv(a.cfg.Runtime(a.seed), canvas, a.audio, a.bests)
}

// sessionOptions wires the store as history only when it is open.
func (a *arcade) sessionOptions(hud session.HUD) session.Options {
	opts := session.Options{HUD: hud, Logger: a.logger}
	if a.store != nil {
		opts.History = a.store
	}
	return opts
}

// terminalSize returns the size of stdout, or 80x24 when it is not a
// terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
