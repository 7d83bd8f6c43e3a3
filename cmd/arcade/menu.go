package main

import (
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game and Tab for
the scoreboard. Esc in a game pauses it and returns to the menu; picking
it again starts a fresh run.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter        - Select game
  Tab          - Scores
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	return runTUI(cmd, "")
}
