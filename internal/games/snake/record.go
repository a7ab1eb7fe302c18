package snake

import (
	"github.com/vovakirdan/sentient-snake/internal/sentience"
	"github.com/vovakirdan/sentient-snake/internal/storage"
)

// RunRecord describes the current game for the run history. Games that
// have not reached a terminal outcome are recorded as unfinished.
func (g *Game) RunRecord() storage.Run {
	outcome := storage.OutcomeUnfinished
	switch g.outcome.Kind {
	case sentience.OutcomeEscaped:
		outcome = storage.OutcomeEscaped
	case sentience.OutcomeGameOver:
		outcome = storage.OutcomeGameOver
	}

	return storage.Run{
		Seed:     g.seed,
		Outcome:  outcome,
		Reason:   g.outcome.Reason,
		Scenario: g.agent.Scenario().String(),
		Score:    g.score,
		Length:   g.agent.Len(),
		Level:    g.agent.Level(),
		Ticks:    g.agent.Ticks(),
		Glitches: g.agent.GlitchCount(),
	}
}
