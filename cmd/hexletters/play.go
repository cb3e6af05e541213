package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hexletters/internal/core"
	"github.com/vovakirdan/hexletters/internal/games/hexletters"
	"github.com/vovakirdan/hexletters/internal/platform/tui"
	"github.com/vovakirdan/hexletters/internal/registry"
	"github.com/vovakirdan/hexletters/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: hexletters).

Controls:
  Arrows/WASD/hjkl  - Move the cursor
  Space/Enter       - Cycle the letter's color
  X                 - Shuffle letters and clear colors
  V                 - Swap team sides
  C                 - Next color set
  F                 - Party!
  P                 - Pause
  R                 - New round (after a win)
  Esc/B             - Back
  Q/Ctrl+C          - Quit

Examples:
  hexletters play
  hexletters play --seed 42
  hexletters play --config ./my-board.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := hexletters.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'hexletters list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	runErr := tui.Run(game, store, runtimeConfig(), playerName())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig sizes the game to the current terminal.
// Without a terminal the defaults apply.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the match ledger. The game still works without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("match ledger unavailable, results will not be saved", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
