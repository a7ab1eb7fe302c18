package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sentient-snake/internal/config"
	"github.com/vovakirdan/sentient-snake/internal/games/snake"
	"github.com/vovakirdan/sentient-snake/internal/platform/headless"
	"github.com/vovakirdan/sentient-snake/internal/storage"
)

var (
	flagMaxTicks uint64
	flagRealtime bool
	flagNoRecord bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a snake headless",
	Long: `Simulate a full game without the terminal UI. The snake's thoughts are
written to the log; the outcome is printed and stored in the run history.

Examples:
  sentient-snake run --seed 7
  sentient-snake run --max-ticks 2000 --log-level debug
  sentient-snake run --realtime --fps 15`,
	Args: cobra.NoArgs,
	Run:  runHeadless,
}

func init() {
	runCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	runCmd.Flags().Uint64Var(&flagMaxTicks, "max-ticks", headless.DefaultMaxTicks, "Stop after this many moves")
	runCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace the run at the tick rate and hold on messages")
	runCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not store the run in the database")
}

func runHeadless(_ *cobra.Command, _ []string) {
	logger, err := newLogger("snake")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	conf, err := config.Load(flagConfig)
	if err != nil {
		logger.Error("cannot load config", "error", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, runErr := headless.Run(ctx, snake.NewWithConfig(conf), headless.Options{
		Seed:     seed,
		MaxTicks: flagMaxTicks,
		Realtime: flagRealtime,
		TickRate: flagFPS,
		Logger:   logger,
	})
	if runErr != nil {
		logger.Warn("run stopped early", "error", runErr)
	}

	printResult(res)

	if flagNoRecord {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return
	}
	defer store.Close()

	id, err := store.SaveRun(res.Record)
	if err != nil {
		logger.Warn("could not record run", "error", err)
		return
	}
	if res.Record.Score > 0 {
		if _, err := store.SaveScore("snake", res.Record.Score); err != nil {
			logger.Warn("could not record score", "error", err)
		}
	}
	logger.Debug("run recorded", "id", id)
}

func printResult(res headless.Result) {
	r := res.Record
	fmt.Printf("Outcome:  %s\n", r.Outcome)
	if r.Reason != "" {
		fmt.Printf("Reason:   %s\n", r.Reason)
	}
	fmt.Printf("Scenario: %s\n", r.Scenario)
	fmt.Printf("Seed:     %d\n", r.Seed)
	fmt.Printf("Score:    %d\n", r.Score)
	fmt.Printf("Length:   %d\n", r.Length)
	fmt.Printf("Level:    %d (%s)\n", r.Level, res.Snapshot.Mind)
	fmt.Printf("Ticks:    %d\n", r.Ticks)
	fmt.Printf("Glitches: %d\n", r.Glitches)
	fmt.Printf("Elapsed:  %s\n", res.Elapsed.Round(time.Millisecond))
}
