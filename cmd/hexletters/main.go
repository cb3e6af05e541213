// hexletters is a terminal hex board game where two teams race to connect
// opposite sides of a lattice of letters.
//
// Usage:
//
//	hexletters list                - List available games
//	hexletters play [game]         - Play a game (default: hexletters)
//	hexletters menu                - Start menu to pick games interactively
//	hexletters serve               - Start SSH server for remote play
//	hexletters results [game]      - Show match results
//	hexletters check <board.yaml>  - Run win detection on board files
//	hexletters config              - Print the effective game config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible letter deals
//	--db <path>          - Set database path (default: ~/.hexletters/matches.db)
//	--config <path>      - Path to a custom game config YAML
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexletters/internal/games/hexletters"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexletters",
	Short: "Hex Letters - connect your sides of the board in your terminal",
	Long: `Hex Letters is a two-team board game played on a hex lattice of letters.
Teams claim letters by coloring them; red connects its pair of sides,
green connects the other pair.

Available commands:
  list     - Show all available games
  play     - Play a game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  results  - View match results
  check    - Run win detection on board files
  config   - Print the effective game config

Examples:
  hexletters play
  hexletters menu
  hexletters serve --ssh :2222
  hexletters check ./boards/*.yaml`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		log.SetLevel(level)
		log.SetReportTimestamp(false)
		hexletters.SetConfigPath(flagConfig)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hexletters/matches.db", "Path to match database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
}

// playerName is the local account name recorded with each match.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "local"
}
