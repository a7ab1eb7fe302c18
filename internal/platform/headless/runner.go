// Package headless runs a snake to completion without a terminal UI,
// narrating its thoughts through a logger.
package headless

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sentient-snake/internal/core"
	"github.com/vovakirdan/sentient-snake/internal/games/snake"
	"github.com/vovakirdan/sentient-snake/internal/storage"
)

// DefaultMaxTicks bounds a run when no limit is given.
const DefaultMaxTicks = 100_000

// Options controls a headless run.
type Options struct {
	Seed int64
	// MaxTicks stops the run after this many snake moves.
	MaxTicks uint64
	// Realtime paces steps at the game's tick rate, so messages hold the
	// run for their full duration.
	Realtime bool
	// TickRate overrides the configured pace when positive.
	TickRate int
	Logger   *log.Logger
}

// Result summarises a finished run.
type Result struct {
	Snapshot snake.Snapshot
	Record   storage.Run
	// Finished is false when the run hit MaxTicks first.
	Finished bool
	Elapsed  time.Duration
}

// LogPresenter narrates messages through a logger.
type LogPresenter struct {
	Logger *log.Logger
}

// PresentMessage logs the message and how long it holds the screen.
func (p LogPresenter) PresentMessage(text string, d time.Duration) {
	p.Logger.Info(text, "hold", d)
}

// Run drives game until it ends, MaxTicks is reached or ctx is cancelled.
// The game is reset with opts.Seed before the first step.
func Run(ctx context.Context, game *snake.Game, opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if opts.MaxTicks == 0 {
		opts.MaxTicks = DefaultMaxTicks
	}

	game.SetNarrator(LogPresenter{Logger: logger})
	game.Reset(core.RuntimeConfig{Seed: opts.Seed, TickRate: opts.TickRate})

	snap := game.Snapshot()
	logger.Info("snake released",
		"seed", opts.Seed,
		"head", snap.Head,
		"heading", snap.Dir,
		"scenario", snap.Scenario,
	)

	start := time.Now()
	input := core.NewInputFrame()
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for !game.State().GameOver && game.Agent().Ticks() < opts.MaxTicks {
		if err := ctx.Err(); err != nil {
			return result(game, start, false), fmt.Errorf("headless: run interrupted: %w", err)
		}

		score := game.State().Score
		level := game.Agent().Level()
		game.Step(input)

		if s := game.State().Score; s != score {
			logger.Debug("food eaten", "score", s, "length", game.Agent().Len(), "tick", game.Agent().Ticks())
		}
		if l := game.Agent().Level(); l != level {
			logger.Debug("level up", "level", l, "mind", game.Agent().MentalState())
		}
		if effect, ok := game.Agent().Glitch(); ok {
			logger.Debug("reality glitch", "effect", effect.Kind, "duration", effect.Duration)
		}

		if opts.Realtime {
			interval := time.Second / time.Duration(game.TickRate())
			if timer == nil {
				timer = time.NewTimer(interval)
			} else {
				timer.Reset(interval)
			}
			select {
			case <-ctx.Done():
				return result(game, start, false), fmt.Errorf("headless: run interrupted: %w", ctx.Err())
			case <-timer.C:
			}
		}
	}

	res := result(game, start, game.Outcome().Terminal())
	logger.Info("run finished",
		"outcome", res.Record.Outcome,
		"reason", res.Record.Reason,
		"score", res.Record.Score,
		"length", res.Record.Length,
		"level", res.Record.Level,
		"ticks", res.Record.Ticks,
	)
	return res, nil
}

func result(game *snake.Game, start time.Time, finished bool) Result {
	return Result{
		Snapshot: game.Snapshot(),
		Record:   game.RunRecord(),
		Finished: finished,
		Elapsed:  time.Since(start),
	}
}
