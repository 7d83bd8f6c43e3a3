package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

const topScores = 10

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top 10 scores and the best for a game, or a summary of
every game when no game is given.

Examples:
  arcade scores
  arcade scores snake
  arcade scores tetris --db ./scores.db`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func runScores(cmd *cobra.Command, args []string) error {
	if len(args) == 1 && !registry.Exists(args[0]) {
		return unknownGame(args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		return printSummary(cmd.OutOrStdout(), store)
	}
	return printGameScores(cmd.OutOrStdout(), store, args[0])
}

func printGameScores(out io.Writer, store *storage.Store, gameID string) error {
	scores, err := store.TopScores(gameID, topScores)
	if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}
	best, err := store.Best(registry.BestKey(gameID))
	if err != nil {
		return fmt.Errorf("cannot retrieve best: %w", err)
	}

	title, _ := gameTitle(gameID)
	fmt.Fprintf(out, "High Scores - %s\n", title)
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		if best > 0 {
			fmt.Fprintf(out, "Best: %d\n", best)
		} else {
			fmt.Fprintf(out, "Play 'arcade play %s' to set the first high score!\n", gameID)
		}
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d\n", best)
	return nil
}

// printSummary lists every registered game with its run count and best.
func printSummary(out io.Writer, store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return fmt.Errorf("cannot retrieve stats: %w", err)
	}

	fmt.Fprintln(out, "Arcade Scores")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-14s  %-6s  %-8s  %-8s  %s\n", "Game", "Runs", "Best", "Average", "Last played")
	fmt.Fprintf(out, "  %-14s  %-6s  %-8s  %-8s  %s\n", "----", "----", "----", "-------", "-----------")

	for _, g := range registry.List() {
		best, err := store.Best(registry.BestKey(g.ID))
		if err != nil {
			return fmt.Errorf("cannot retrieve best for %s: %w", g.ID, err)
		}
		st, ok := stats[g.ID]
		if !ok {
			fmt.Fprintf(out, "  %-14s  %-6d  %-8d  %-8s  %s\n", g.ID, 0, best, "-", "-")
			continue
		}
		fmt.Fprintf(out, "  %-14s  %-6d  %-8d  %-8.1f  %s\n",
			g.ID, st.GamesCount, max(best, st.HighScore), st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
