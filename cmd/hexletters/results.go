package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexletters/internal/platform/tui"
	"github.com/vovakirdan/hexletters/internal/registry"
	"github.com/vovakirdan/hexletters/internal/storage"
)

var (
	flagResultsPlain bool
	flagResultsClear bool
	flagResultsLimit int
)

var resultsCmd = &cobra.Command{
	Use:   "results [game]",
	Short: "Show match results",
	Long: `Browse finished matches: fewest-move wins and the most recent games.

Without --plain an interactive table is shown. With no game argument
every game is listed.

Examples:
  hexletters results
  hexletters results hexletters --plain
  hexletters results hexletters --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().BoolVar(&flagResultsPlain, "plain", false, "Print results as text instead of the interactive view")
	resultsCmd.Flags().BoolVar(&flagResultsClear, "clear", false, "Delete recorded matches")
	resultsCmd.Flags().IntVar(&flagResultsLimit, "limit", 10, "Number of matches to print with --plain")
}

func runResults(_ *cobra.Command, args []string) {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'hexletters list' to see available games.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagResultsClear:
		if err := clearResults(store, gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing matches: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Matches cleared.")
	case flagResultsPlain:
		if err := printResults(store, gameID, flagResultsLimit); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
			os.Exit(1)
		}
	default:
		cfg := runtimeConfig()
		if _, err := tui.RunResults(store, cfg.ScreenW, cfg.ScreenH, gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// clearResults deletes the matches of gameID, or of every game when it is empty.
func clearResults(store *storage.Store, gameID string) error {
	if gameID != "" {
		return store.ClearMatches(gameID)
	}
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	for id := range stats {
		if err := store.ClearMatches(id); err != nil {
			return err
		}
	}
	return nil
}

func printResults(store *storage.Store, gameID string, limit int) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		if gameID == "" || id == gameID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	if len(ids) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'hexletters play' to record the first one!")
		return nil
	}

	for _, id := range ids {
		s := stats[id]
		fmt.Printf("%s - %d matches, %d wins", id, s.Matches, s.Wins)
		if s.Wins > 0 {
			fmt.Printf(", best %d moves, avg %.1f", s.BestMoves, s.AvgMoves)
		}
		fmt.Println()

		tally, err := store.WinTally(id)
		if err != nil {
			return err
		}
		fmt.Printf("  red %d, green %d\n", tally["red"], tally["green"])
		fmt.Println()

		recent, err := store.RecentMatches(id, limit)
		if err != nil {
			return err
		}

		fmt.Printf("  %-19s  %-6s  %-5s  %-8s  %s\n", "Date", "Winner", "Moves", "Duration", "Player")
		fmt.Printf("  %-19s  %-6s  %-5s  %-8s  %s\n", "----", "------", "-----", "--------", "------")
		for _, m := range recent {
			winner := m.Winner
			if winner == "" {
				winner = "-"
			}
			fmt.Printf("  %-19s  %-6s  %-5d  %-8s  %s\n",
				m.CreatedAt.Format("2006-01-02 15:04:05"), winner, m.Moves,
				fmt.Sprintf("%ds", m.DurationSecs), m.Player)
		}
		fmt.Println()
	}
	return nil
}
