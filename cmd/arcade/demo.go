package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/session"
)

var (
	flagSeconds float64
	flagHold    []string
)

var demoCmd = &cobra.Command{
	Use:   "demo <game>",
	Short: "Run a game headless and print the last frame",
	Long: `Run the specified game without a terminal UI for a fixed time and
print the final frame as text. Scores are not stored.

Keys named with --hold stay pressed for the whole run. Names are
ArrowUp, ArrowDown, ArrowLeft, ArrowRight, KeyW, KeyA, KeyS, KeyD,
Space, KeyX, KeyP and KeyR.

Examples:
  arcade demo snake
  arcade demo breakout --seconds 10 --seed 42
  arcade demo invaders --hold ArrowLeft,KeyX`,
	Args: cobra.ExactArgs(1),
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().Float64Var(&flagSeconds, "seconds", 5, "How long to run")
	demoCmd.Flags().StringSliceVar(&flagHold, "hold", nil, "Keys held during the run")
}

func runDemo(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	title, ok := gameTitle(gameID)
	if !ok {
		return unknownGame(gameID)
	}
	if flagSeconds <= 0 {
		return fmt.Errorf("--seconds must be positive, got %g", flagSeconds)
	}

	a, err := setup(cmd, setupOptions{})
	if err != nil {
		return err
	}
	defer a.close()

	width, height := terminalSize()
	screen := core.NewScreen(width, max(height-1, 1))
	env := a.newEnv(nil)
	env.Canvas = core.NewRaster(screen, env.W, env.H)

	sess := session.New(env, session.Build(a.cfg), session.Options{Logger: a.logger})
	if err := sess.Switch(gameID); err != nil {
		return err
	}
	for _, name := range flagHold {
		sess.KeyDown(core.Key(strings.TrimSpace(name)))
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(flagSeconds*float64(time.Second)))
	defer cancel()

	interval := time.Second / time.Duration(a.cfg.Loop.TickRate)
	err = session.NewDriver(sess, a.cfg.Loop.MaxFrameDelta).Run(ctx, interval)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  Score %d  %s\n", title, sess.Game().Score(), env.Status())
	fmt.Fprintln(out, screen.String())
	return nil
}
