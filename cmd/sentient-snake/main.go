// sentient-snake watches a self-aware snake chase food in the terminal until
// it collides with itself or escapes the grid.
//
// Usage:
//
//	sentient-snake play            - Watch a snake in the terminal UI
//	sentient-snake run             - Run a snake headless, narrated through the log
//	sentient-snake scores          - Show high scores and run history
//	sentient-snake serve           - Start SSH server for remote viewing
//	sentient-snake list            - List available games
//
// Global flags:
//
//	--fps <rate>         - Override the configured tick rate
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.sentient-snake/snake.db)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/sentient-snake/internal/games/snake"
	"github.com/vovakirdan/sentient-snake/internal/storage"
)

const defaultGame = "snake"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sentient-snake",
	Short: "Sentient Snake - a snake that slowly realises it is in a game",
	Long: `Sentient Snake steers itself towards food with breadth-first search.
As it grows it gains consciousness, changes mood, glitches reality,
talks to you and, at the highest level, tries to leave the grid.

Available commands:
  play     - Watch a snake in the terminal
  run      - Run a snake headless and print the outcome
  scores   - View high scores and run history
  serve    - Start SSH server for remote viewing
  list     - Show available games

Examples:
  sentient-snake play
  sentient-snake play --seed 42 --fps 20
  sentient-snake run --max-ticks 5000 --log-level debug
  sentient-snake scores --interactive
  sentient-snake serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the stderr logger used by every command.
func newLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// gameArg returns the game named on the command line or the default.
func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultGame
}
