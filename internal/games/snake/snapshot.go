package snake

import "github.com/vovakirdan/sentient-snake/internal/sentience"

// Snapshot captures the game state for determinism testing and run records.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	Head     sentience.Cell
	Dir      sentience.Direction
	Food     sentience.Cell
	Level    int
	Mind     sentience.MentalState
	Escaping bool
	Glitches int
	Phase    sentience.Phase
	Scenario sentience.Scenario
	Outcome  sentience.OutcomeKind
	Reason   string
	Overlays int
	TickRate int
	Paused   bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		SnakeLen: g.agent.Len(),
		Head:     g.agent.Head(),
		Dir:      g.agent.Direction(),
		Food:     g.food,
		Level:    g.agent.Level(),
		Mind:     g.agent.MentalState(),
		Escaping: g.agent.Escaping(),
		Glitches: g.agent.GlitchCount(),
		Phase:    g.agent.Phase(),
		Scenario: g.agent.Scenario(),
		Outcome:  g.outcome.Kind,
		Reason:   g.outcome.Reason,
		Overlays: len(g.overlays),
		TickRate: g.tickRate,
		Paused:   g.paused,
	}
}
