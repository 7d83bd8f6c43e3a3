package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/platform/tui"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game in the terminal.

Controls:
  Arrows/WASD  - Move
  Space        - Action, resume, play again
  X            - Fire / place
  P            - Pause
  R            - Restart
  Esc          - Back to the menu
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Terminals send no key-up events; a key counts as held until it stops
repeating (input.hold_ms in the config).

Examples:
  arcade play snake
  arcade play tetris --fps 30
  arcade play invaders --config ./my-arcade.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return unknownGame(gameID)
	}
	return runTUI(cmd, gameID)
}

// runTUI runs the terminal arcade. An empty startGame opens the menu.
func runTUI(cmd *cobra.Command, startGame string) error {
	a, err := setup(cmd, setupOptions{store: true, audio: true})
	if err != nil {
		return err
	}
	defer a.close()

	width, height := terminalSize()
	env := a.newEnv(core.Discard)
	board := session.Build(a.cfg)

	app := tui.NewApp(env, board, tui.AppConfig{
		TickRate:  a.cfg.Loop.TickRate,
		MaxDelta:  a.cfg.Loop.MaxFrameDelta,
		Hold:      time.Duration(a.cfg.Input.HoldMS) * time.Millisecond,
		StartGame: startGame,
		Width:     width,
		Height:    height,
		Store:     a.store,
		Bests:     a.bests,
		Logger:    a.logger,
	})

	a.logger.Info("Starting terminal arcade", "game", startGame, "pid", os.Getpid())
	return tui.Run(app)
}
