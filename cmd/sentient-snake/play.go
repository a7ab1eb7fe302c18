package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sentient-snake/internal/config"
	"github.com/vovakirdan/sentient-snake/internal/core"
	"github.com/vovakirdan/sentient-snake/internal/platform/tui"
	"github.com/vovakirdan/sentient-snake/internal/registry"
	"github.com/vovakirdan/sentient-snake/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Watch a snake in the terminal",
	Long: `Release a snake in the terminal UI. The snake steers itself; you only
control the pace.

Controls:
  P/Esc/Space  - Pause
  +/-          - Faster / slower
  R            - Restart (after the run ends)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Examples:
  sentient-snake play
  sentient-snake play --seed 42
  sentient-snake play --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := gameArg(args)
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'sentient-snake list' to see available games.")
		os.Exit(1)
	}

	// Fail on a broken config before the alt screen takes over.
	if _, err := config.Load(flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		ConfigPath: flagConfig,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the snake still runs
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
