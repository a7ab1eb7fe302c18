package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sentient-snake/internal/platform/tui"
	"github.com/vovakirdan/sentient-snake/internal/registry"
	"github.com/vovakirdan/sentient-snake/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
	flagRunID       string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and run history",
	Long: `Display the top scores, a summary of every recorded run and the most
recent runs.

Examples:
  sentient-snake scores
  sentient-snake scores --limit 20
  sentient-snake scores --interactive
  sentient-snake scores --run 3f2c9a4e-...
  sentient-snake scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores and runs to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the history in a table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and runs")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show the details of one run by ID")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := gameArg(args)
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'sentient-snake list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		err = clearHistory(store, gameID)
	case flagRunID != "":
		err = printRun(os.Stdout, store, flagRunID)
	case flagInteractive:
		width, height := 100, 30
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		err = tui.RunScoreboard(store, gameID, width, height)
	default:
		err = printHistory(store, gameID)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

func clearHistory(store *storage.Store, gameID string) error {
	if err := store.ClearScores(gameID); err != nil {
		return err
	}
	if err := store.ClearRuns(); err != nil {
		return err
	}
	fmt.Println("History cleared.")
	return nil
}

func printHistory(store *storage.Store, gameID string) error {
	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores")
	fmt.Println()
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'sentient-snake play' or 'sentient-snake run' to set the first one!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if highScore, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}

	stats, err := store.RunStats()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Escaped: %d  Game over: %d  Unfinished: %d  Avg length: %.1f\n",
		stats.Runs, stats.Escaped, stats.GameOvers, stats.Unfinished, stats.AvgLength)
	for _, name := range sortedScenarios(stats.Scenarios) {
		fmt.Printf("  escaped via %-17s %d\n", name+":", stats.Scenarios[name])
	}

	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent runs")
	fmt.Println()
	fmt.Printf("  %-36s  %-16s  %-10s  %-5s  %-3s  %-7s  %s\n", "ID", "Date", "Outcome", "Score", "Lvl", "Ticks", "Reason")
	for _, r := range runs {
		fmt.Printf("  %-36s  %-16s  %-10s  %-5d  %-3d  %-7d  %s\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.Outcome, r.Score, r.Level, r.Ticks, r.Reason)
	}
	return nil
}

func printRun(w io.Writer, store *storage.Store, id string) error {
	r, err := store.RunByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("no run with ID %q", id)
	}

	reason := r.Reason
	if reason == "" {
		reason = "-"
	}
	fmt.Fprintf(w, "Run %s\n\n", r.ID)
	fmt.Fprintf(w, "  Date:      %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "  Seed:      %d\n", r.Seed)
	fmt.Fprintf(w, "  Outcome:   %s\n", r.Outcome)
	fmt.Fprintf(w, "  Reason:    %s\n", reason)
	if r.Scenario != "" {
		fmt.Fprintf(w, "  Scenario:  %s\n", r.Scenario)
	}
	fmt.Fprintf(w, "  Score:     %d\n", r.Score)
	fmt.Fprintf(w, "  Length:    %d\n", r.Length)
	fmt.Fprintf(w, "  Level:     %d\n", r.Level)
	fmt.Fprintf(w, "  Ticks:     %d\n", r.Ticks)
	fmt.Fprintf(w, "  Glitches:  %d\n", r.Glitches)
	fmt.Fprintf(w, "\nReplay with: sentient-snake play --seed %d\n", r.Seed)
	return nil
}

func sortedScenarios(m map[string]int) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
