package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/platform/window"
	"github.com/vovakirdan/neon-arcade/internal/session"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window <game>",
	Short: "Play a game in a desktop window",
	Long: `Open a desktop window and play the specified game.

The window reports real key releases, so held keys behave exactly as
the games expect. Esc closes the window.

Examples:
  arcade window pong
  arcade window breakout --scale 1.5 --sound`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window pixels per logical unit")
}

func runWindow(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	title, ok := gameTitle(gameID)
	if !ok {
		return unknownGame(gameID)
	}

	a, err := setup(cmd, setupOptions{store: true, audio: true})
	if err != nil {
		return err
	}
	defer a.close()

	hud := &window.HUD{}
	sess := session.New(a.newEnv(core.Discard), session.Build(a.cfg), a.sessionOptions(hud))
	if err := sess.Switch(gameID); err != nil {
		return err
	}

	return window.Run(sess, session.NewDriver(sess, a.cfg.Loop.MaxFrameDelta), window.Config{
		Title:  "Neon Arcade - " + title,
		TPS:    a.cfg.Loop.TickRate,
		Scale:  flagScale,
		HUD:    hud,
		Logger: a.logger,
	})
}
