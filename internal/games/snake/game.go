// Package snake wires the sentient snake engine into the arcade runtime:
// food, score, pacing, message overlays and rendering.
package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/sentient-snake/internal/config"
	"github.com/vovakirdan/sentient-snake/internal/core"
	"github.com/vovakirdan/sentient-snake/internal/registry"
	"github.com/vovakirdan/sentient-snake/internal/sentience"
)

// Tick rate bounds for the faster/slower controls.
const (
	MinTickRate = 1
	MaxTickRate = 60
)

// overlay is a message that holds the simulation for a number of ticks.
type overlay struct {
	text  string
	ticks int
}

// Game runs one autonomous snake. There is no steering input: the player
// only watches, pauses, restarts and changes the pace.
type Game struct {
	conf     *config.SnakeConfig
	rng      *rand.Rand
	seed     int64
	tick     uint64
	tickRate int

	grid    sentience.Grid
	agent   *sentience.Agent
	spawner *sentience.FoodSpawner
	food    sentience.Cell
	score   int
	outcome sentience.Outcome

	overlays    []overlay
	narrator    sentience.Presenter
	glitch      sentience.GlitchEffect
	glitchTicks int

	paused bool
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with an already loaded configuration.
func NewWithConfig(c config.SnakeConfig) *Game {
	return &Game{conf: &c}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "snake" }

// Title returns the display name.
func (g *Game) Title() string { return "Sentient Snake" }

// Reset starts a new snake. A positive cfg.TickRate overrides the
// configured pace. A config that fails to load falls back to the defaults;
// play and serve reject such a path before the first Reset.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.conf == nil {
		c, err := config.Load(cfg.ConfigPath)
		if err != nil {
			c = config.DefaultSnakeConfig()
		}
		g.conf = &c
	}

	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.outcome = sentience.Outcome{}
	g.overlays = g.overlays[:0]
	g.glitchTicks = 0
	g.paused = false

	g.tickRate = g.conf.Timing.TickRate
	if cfg.TickRate > 0 {
		g.tickRate = cfg.TickRate
	}
	g.tickRate = core.Clamp(g.tickRate, MinTickRate, MaxTickRate)

	g.grid = sentience.NewGrid(g.conf.Grid.Width, g.conf.Grid.Height)
	sx, sy := g.conf.StartCell()
	g.agent = sentience.NewAgent(sentience.World{
		Grid:      g.grid,
		Rand:      g.rng,
		Presenter: g,
		Timings: sentience.Timings{
			Message:   g.conf.Messages.Duration(),
			Transient: g.conf.Messages.Transient(),
			Escape:    g.conf.Messages.Escape(),
		},
		Start: sentience.Cell{X: sx, Y: sy},
	})
	g.spawner = sentience.NewFoodSpawner(g.grid, g.rng)
	g.food, _ = g.spawner.Relocate(g.agent.Occupied())
}

// SetNarrator forwards every message to p as well as the overlay queue.
func (g *Game) SetNarrator(p sentience.Presenter) {
	g.narrator = p
}

// PresentMessage queues an overlay. The simulation stays frozen until every
// queued overlay has been shown for its duration.
func (g *Game) PresentMessage(text string, d time.Duration) {
	g.overlays = append(g.overlays, overlay{text: text, ticks: g.durationTicks(d)})
	if g.narrator != nil {
		g.narrator.PresentMessage(text, d)
	}
}

// durationTicks converts a wall-clock duration into ticks at the current
// pace, rounding up to at least one tick.
func (g *Game) durationTicks(d time.Duration) int {
	n := int((d*time.Duration(g.tickRate) + time.Second - 1) / time.Second)
	if n < 1 {
		n = 1
	}
	return n
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionRestart) && g.outcome.Terminal() {
		g.Reset(core.RuntimeConfig{Seed: g.rng.Int63(), TickRate: g.tickRate})
		return core.StepResult{State: g.State()}
	}
	if input.Has(core.ActionPause) && !g.outcome.Terminal() {
		g.paused = !g.paused
	}
	if input.Has(core.ActionFaster) {
		g.tickRate = core.Min(g.tickRate+1, MaxTickRate)
	}
	if input.Has(core.ActionSlower) {
		g.tickRate = core.Clamp(g.tickRate-1, MinTickRate, MaxTickRate)
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	if g.glitchTicks > 0 {
		g.glitchTicks--
	}

	// Overlays freeze the world.
	if len(g.overlays) > 0 {
		g.overlays[0].ticks--
		if g.overlays[0].ticks <= 0 {
			g.overlays = g.overlays[1:]
		}
		return core.StepResult{State: g.State()}
	}
	if g.outcome.Terminal() {
		return core.StepResult{State: g.State()}
	}

	g.outcome = g.agent.Tick(g.food)
	if effect, ok := g.agent.Glitch(); ok {
		g.glitch = effect
		g.glitchTicks = g.durationTicks(effect.Duration)
	}

	switch g.outcome.Kind {
	case sentience.OutcomeAteFood:
		g.score++
		g.agent.Grow()
		g.food, _ = g.spawner.Relocate(g.agent.Occupied())
	case sentience.OutcomeGameOver:
		g.PresentMessage("Game Over: "+g.outcome.Reason, g.conf.Messages.Escape())
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state. The game only reports over once
// the closing messages have been shown.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.outcome.Terminal() && len(g.overlays) == 0,
		Paused:   g.paused,
	}
}

// TickRate returns the current pace in ticks per second.
func (g *Game) TickRate() int { return g.tickRate }

// Seed returns the seed of the current game.
func (g *Game) Seed() int64 { return g.seed }

// Agent exposes the snake for inspection.
func (g *Game) Agent() *sentience.Agent { return g.agent }

// Outcome returns the most recent tick outcome.
func (g *Game) Outcome() sentience.Outcome { return g.outcome }

// Message returns the overlay currently on screen.
func (g *Game) Message() (string, bool) {
	if len(g.overlays) == 0 {
		return "", false
	}
	return g.overlays[0].text, true
}
