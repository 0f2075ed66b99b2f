package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/delhi-dash/internal/games/dash"
	"github.com/vovakirdan/delhi-dash/internal/registry"
	"github.com/vovakirdan/delhi-dash/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top runs and overall stats for a mode.

Runs marked with * set a new best when they were played.

Examples:
  dash scores
  dash scores dash_hard --limit 0
  dash scores --all
  dash scores dash_easy --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show (0 = every run)")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show a summary of every mode")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the recorded runs of the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := dash.Modes[0].ID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'dash list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresAll:
		err = printOverview(store)
	case flagScoresClear:
		if err = store.ClearScores(gameID); err == nil {
			fmt.Printf("Cleared the run history of %s.\n", gameID)
		}
	default:
		err = printScores(store, gameID)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store, gameID string) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if flagScoresLimit > 0 {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	} else {
		scores, err = store.AllScores(gameID)
	}
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", modeTitle(gameID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'dash play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %s\n", "Rank", "Score", "Coins", "Distance", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %s\n", "----", "-----", "-----", "--------", "----")

	for i, entry := range scores {
		mark := ""
		if entry.NewBest {
			mark = " *"
		}
		fmt.Printf("  %-4d  %-8d  %-6d  %-8s  %s%s\n",
			i+1, entry.Score, entry.Coins, fmt.Sprintf("%dm", entry.Distance), entry.CreatedAt.Format("2006-01-02 15:04"), mark)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d   Runs: %d   Avg: %.0f   Coins: %d   Longest: %dm\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalCoins, stats.LongestRun)
	}
	return nil
}

// printOverview lists one line per mode, including modes never played.
func printOverview(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	fmt.Printf("  %-26s  %-6s  %-5s  %-7s  %-8s  %s\n", "Mode", "Best", "Runs", "Coins", "Longest", "Last played")
	for _, m := range dash.Modes {
		stats, ok := all[m.ID]
		if !ok {
			fmt.Printf("  %-26s  %-6s  %-5s  %-7s  %-8s  %s\n", m.Title, "-", "0", "-", "-", "never")
			continue
		}
		fmt.Printf("  %-26s  %-6d  %-5d  %-7d  %-8s  %s\n",
			m.Title, stats.HighScore, stats.GamesCount, stats.TotalCoins,
			fmt.Sprintf("%dm", stats.LongestRun), stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func modeTitle(gameID string) string {
	for _, m := range registry.List() {
		if m.ID == gameID {
			return m.Title
		}
	}
	return gameID
}
