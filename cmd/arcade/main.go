// arcade is a neon arcade of small real-time games. It plays in the
// terminal, serves the same arcade over SSH and opens a desktop window.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade scores [game]     - Show high scores
//	arcade serve             - Start SSH server for remote play
//	arcade window <game>     - Play a game in a desktop window
//	arcade demo <game>       - Run a game headless and print the last frame
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: from config, 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.arcade/scores.db)
//	--config <path>    - Use a custom arcade.yaml
//	--log-file <path>  - Write logs to a file
//	--sound            - Play tones through the sound card
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	_ "github.com/vovakirdan/neon-arcade/internal/games/all"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagSound   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Neon Arcade - small real-time games for the terminal",
	Long: `Neon Arcade is a collection of small real-time games that share one
loop, one input model and one best-score store.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  scores   - View high scores
  serve    - Start SSH server for remote play
  window   - Play in a desktop window
  demo     - Run a game headless

Examples:
  arcade list
  arcade play snake
  arcade menu --sound
  arcade serve --ssh :2222
  arcade scores tetris`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadEnv,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database (env ARCADE_DB)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to arcade config YAML (env ARCADE_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Enable sound")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(demoCmd)
}

// loadEnv reads ./.env and fills the flags the user did not set from
// ARCADE_DB and ARCADE_CONFIG. A missing .env is fine.
func loadEnv(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load .env: %w", err)
	}
	if v := os.Getenv("ARCADE_DB"); v != "" && !cmd.Flags().Changed("db") {
		flagDBPath = v
	}
	if v := os.Getenv("ARCADE_CONFIG"); v != "" && !cmd.Flags().Changed("config") {
		flagConfig = v
	}
	return nil
}
