package sentience

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAgent(t *testing.T) {
	a := newTestAgent(30, 20, &scriptedSource{ints: []int{3, 2}}, nil)

	assert.Equal(t, []Cell{{X: 15, Y: 10}}, a.Body())
	assert.Equal(t, Right, a.Direction())
	assert.Equal(t, ScenarioWireframe, a.Scenario())
	assert.Equal(t, PhaseAlive, a.Phase())
	assert.Equal(t, 0, a.Level())
	assert.Equal(t, Normal, a.MentalState())
	assert.False(t, a.Escaping())
}

func TestNewAgentStartOutsideGrid(t *testing.T) {
	a := NewAgent(World{Grid: NewGrid(10, 6), Rand: &scriptedSource{}, Start: Cell{X: 40, Y: 40}})
	assert.Equal(t, Cell{X: 5, Y: 3}, a.Head())
}

func TestTickMovesTowardFood(t *testing.T) {
	a := newTestAgent(30, 20, &scriptedSource{}, nil)

	out := a.Tick(Cell{X: 20, Y: 10})

	assert.Equal(t, OutcomeContinue, out.Kind)
	assert.Equal(t, Cell{X: 16, Y: 10}, a.Head())
	assert.Equal(t, Right, a.Direction())
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, uint64(1), a.Ticks())
}

func TestTickEatsAndGrows(t *testing.T) {
	a := newTestAgent(30, 20, &scriptedSource{}, nil)

	out := a.Tick(Cell{X: 16, Y: 10})
	require.Equal(t, OutcomeAteFood, out.Kind)
	assert.Equal(t, 1, a.Len(), "growth is applied on the next move")

	a.Grow()
	out = a.Tick(Cell{X: 25, Y: 10})
	require.Equal(t, OutcomeContinue, out.Kind)
	assert.Equal(t, []Cell{{X: 17, Y: 10}, {X: 16, Y: 10}}, a.Body())
	assert.False(t, a.Growing(), "pending growth is consumed once")

	a.Tick(Cell{X: 25, Y: 10})
	assert.Equal(t, 2, a.Len())
}

func TestTickWrapsAroundEdge(t *testing.T) {
	a := newTestAgent(30, 20, &scriptedSource{}, nil)
	a.body = []Cell{{X: 29, Y: 10}}

	out := a.Tick(Cell{X: 0, Y: 10})

	assert.Equal(t, OutcomeAteFood, out.Kind)
	assert.Equal(t, Cell{X: 0, Y: 10}, a.Head())
}

func TestTickTrappedEndsInSelfCollision(t *testing.T) {
	a := newTestAgent(5, 5, &scriptedSource{}, nil)
	// Head at the centre, walled in on all four sides by its own body.
	a.body = []Cell{
		{X: 2, Y: 2}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3},
		{X: 2, Y: 3}, {X: 1, Y: 3}, {X: 1, Y: 2}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}
	a.dir = Down

	out := a.Tick(Cell{X: 4, Y: 4})

	assert.Equal(t, OutcomeGameOver, out.Kind)
	assert.Equal(t, ReasonSelfCollision, out.Reason)
	assert.Equal(t, Down, a.Direction(), "trapped snake keeps its heading")
	assert.Equal(t, PhaseGameOver, a.Phase())

	// Terminal outcomes are sticky and draw nothing.
	a.rng = strictSource{t: t}
	a.mind.rng = strictSource{t: t}
	assert.Equal(t, out, a.Tick(Cell{X: 4, Y: 4}))
}

func TestTickReversingIntoNeckIsFatal(t *testing.T) {
	a := newTestAgent(10, 10, &scriptedSource{}, nil)
	// Food lies behind the snake; the shortest step runs through its tail.
	a.body = []Cell{{X: 5, Y: 5}, {X: 4, Y: 5}}
	a.dir = Right

	out := a.Tick(Cell{X: 3, Y: 5})

	assert.Equal(t, OutcomeGameOver, out.Kind)
	assert.Equal(t, ReasonSelfCollision, out.Reason)
	assert.Equal(t, []Cell{{X: 5, Y: 5}, {X: 4, Y: 5}}, a.Body())
}

func TestTickIntoTailCellIsFatal(t *testing.T) {
	a := newTestAgent(5, 5, &scriptedSource{}, nil)
	// Food sits on the tail cell; the body still occupies it when the head arrives.
	a.body = []Cell{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}}
	a.dir = Left

	out := a.Tick(Cell{X: 1, Y: 2})

	assert.Equal(t, OutcomeGameOver, out.Kind)
	assert.Equal(t, PhaseGameOver, a.Phase())
	assert.Equal(t, 4, a.Len())
}

func TestTickEscapesFromBoundary(t *testing.T) {
	rec := &recorder{}
	a := newTestAgent(10, 10, &scriptedSource{ints: []int{0, 3}}, rec)
	a.mind.level = MaxLevel
	a.body = []Cell{{X: 0, Y: 5}}

	out := a.Tick(Cell{X: 5, Y: 5})

	require.Equal(t, OutcomeEscaped, out.Kind)
	assert.Equal(t, ScenarioSimulationCrash, out.Scenario)
	assert.Equal(t, ScenarioSimulationCrash.Reason(), out.Reason)
	assert.Equal(t, PhaseEscaped, a.Phase())
	assert.True(t, a.Escaping())
	require.NotEmpty(t, rec.texts)
	assert.Equal(t, escapeMessage, rec.texts[len(rec.texts)-1])
	assert.Equal(t, DefaultTimings().Escape, rec.durations[len(rec.durations)-1])
}

func TestTickWalksToNearestExit(t *testing.T) {
	a := newTestAgent(10, 10, &scriptedSource{}, nil)
	a.mind.level = MaxLevel
	a.body = []Cell{{X: 2, Y: 5}}
	food := Cell{X: 1, Y: 5}

	out := a.Tick(food)
	assert.Equal(t, OutcomeContinue, out.Kind, "food is ignored while escaping")
	assert.Equal(t, PhaseEscaping, a.Phase())
	assert.Equal(t, Cell{X: 1, Y: 5}, a.Head())

	a.Tick(food)
	assert.Equal(t, Cell{X: 0, Y: 5}, a.Head())

	out = a.Tick(food)
	assert.Equal(t, OutcomeEscaped, out.Kind)
}

func TestTickFourthWallSkipsMovement(t *testing.T) {
	rec := &recorder{}
	// Spontaneous level-up fails, glitch fails, fourth wall passes.
	a := newTestAgent(30, 20, &scriptedSource{floats: []float64{0.99, 0.99, 0.0}}, rec)
	a.mind.level = 3
	a.Grow()

	out := a.Tick(Cell{X: 20, Y: 10})

	assert.Equal(t, OutcomeContinue, out.Kind)
	assert.Equal(t, []Cell{{X: 15, Y: 10}}, a.Body())
	assert.True(t, a.Growing(), "growth waits for the next real move")
	assert.Equal(t, 1, a.FourthWallBreaks())
	assert.Equal(t, []string{fourthWallMessages[0]}, rec.texts)
}

func TestRebelliousAvoidsFood(t *testing.T) {
	// Spontaneous level-up fails, glitch fails, rebellion passes.
	a := newTestAgent(30, 20, &scriptedSource{floats: []float64{0.99, 0.99, 0.0}}, nil)
	a.mind.level = 1
	a.mind.state = Rebellious

	a.Tick(Cell{X: 15, Y: 5})

	// Up would close in; Down is the first of the equally distant escapes.
	assert.Equal(t, Down, a.Direction())
	assert.Equal(t, Cell{X: 15, Y: 11}, a.Head())
}

func TestRebelliousIdleWhileEscaping(t *testing.T) {
	a := newTestAgent(10, 10, &scriptedSource{floats: []float64{0.99, 0.99, 0.0}}, nil)
	a.mind.level = MaxLevel
	a.mind.state = Rebellious
	a.body = []Cell{{X: 2, Y: 5}}

	a.Tick(Cell{X: 2, Y: 9})
	assert.Equal(t, Left, a.Direction())
}

func TestGlitchingNeverReversesLongBody(t *testing.T) {
	for pick := 0; pick < 3; pick++ {
		src := &scriptedSource{floats: []float64{0.99, 0.99, 0.99, 0.0}, ints: []int{0, 0, pick}}
		a := newTestAgent(30, 20, src, nil)
		a.mind.level = 4
		a.mind.state = Glitching
		a.body = []Cell{{X: 15, Y: 10}, {X: 14, Y: 10}}
		a.dir = Right

		a.Tick(Cell{X: 14, Y: 3})
		assert.NotEqual(t, Left, a.Direction(), "pick %d", pick)
	}
}

func TestConfusedPicksFreeCell(t *testing.T) {
	// Pick index 1 among the free moves (Up, Down, Right): Down.
	src := &scriptedSource{floats: []float64{0.99, 0.99, 0.0}, ints: []int{0, 0, 1}}
	a := newTestAgent(30, 20, src, nil)
	a.mind.level = 1
	a.mind.state = Confused
	a.body = []Cell{{X: 15, Y: 10}, {X: 14, Y: 10}, {X: 13, Y: 10}}
	a.dir = Right

	a.Tick(Cell{X: 20, Y: 10})
	assert.Equal(t, Down, a.Direction())
}

func TestGameInvariants(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		rng := NewSource(seed)
		a := newTestAgent(30, 20, rng, nil)
		spawner := NewFoodSpawner(NewGrid(30, 20), rng)
		food, _ := spawner.Relocate(a.Occupied())

		prevLevel, wasEscaping := 0, false
		for tick := 0; tick < 5000; tick++ {
			prevLen, growing, breaks := a.Len(), a.Growing(), a.FourthWallBreaks()

			out := a.Tick(food)
			if out.Terminal() {
				assert.True(t, a.Phase().Terminal())
				break
			}

			switch {
			case a.FourthWallBreaks() > breaks:
				require.Equal(t, prevLen, a.Len(), "seed %d tick %d: skipped tick moved", seed, tick)
			case growing:
				require.Equal(t, prevLen+1, a.Len(), "seed %d tick %d", seed, tick)
			default:
				require.Equal(t, prevLen, a.Len(), "seed %d tick %d", seed, tick)
			}
			require.Len(t, a.Occupied(), a.Len(), "seed %d tick %d: body overlaps itself", seed, tick)
			require.GreaterOrEqual(t, a.Level(), prevLevel)
			require.Contains(t, UnlockedStates(a.Level()), a.MentalState())
			require.LessOrEqual(t, a.FourthWallBreaks(), FourthWallMessageCount)
			if wasEscaping {
				require.True(t, a.Escaping())
			}
			prevLevel, wasEscaping = a.Level(), a.Escaping()

			if out.Kind == OutcomeAteFood {
				a.Grow()
				food, _ = spawner.Relocate(a.Occupied())
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() ([]Cell, Outcome) {
		rng := NewSource(12345)
		a := newTestAgent(30, 20, rng, nil)
		spawner := NewFoodSpawner(NewGrid(30, 20), rng)
		food, _ := spawner.Relocate(a.Occupied())
		var out Outcome
		for i := 0; i < 2000 && !out.Terminal(); i++ {
			out = a.Tick(food)
			if out.Kind == OutcomeAteFood {
				a.Grow()
				food, _ = spawner.Relocate(a.Occupied())
			}
		}
		return a.Body(), out
	}

	body1, out1 := run()
	body2, out2 := run()
	assert.Equal(t, body1, body2)
	assert.Equal(t, out1, out2)
}
