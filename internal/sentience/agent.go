package sentience

// Override probabilities per mental state.
const (
	confusedChance   = 0.3
	rebelliousChance = 0.4
	glitchingChance  = 0.5
)

// World is everything an agent needs from its surroundings.
type World struct {
	Grid      Grid
	Rand      Source
	Presenter Presenter
	Timings   Timings
	// Start is the initial head cell. Cells outside the grid fall back to
	// the centre.
	Start Cell
}

// Agent is the autonomous snake.
type Agent struct {
	grid    Grid
	rng     Source
	out     Presenter
	timings Timings
	planner *Planner
	mind    *Consciousness

	body     []Cell // head first
	dir      Direction
	growing  bool
	scenario Scenario
	phase    Phase
	final    Outcome

	glitch   GlitchEffect
	glitched bool
	ticks    uint64
}

// NewAgent places a length-1 snake on the start cell facing a random
// direction and draws its escape scenario.
func NewAgent(w World) *Agent {
	if w.Presenter == nil {
		w.Presenter = Discard
	}
	start := w.Start
	if !w.Grid.Contains(start) {
		start = w.Grid.Center()
	}

	a := &Agent{
		grid:    w.Grid,
		rng:     w.Rand,
		out:     w.Presenter,
		timings: w.Timings,
		planner: NewPlanner(w.Grid),
		mind:    NewConsciousness(w.Rand, w.Presenter, w.Timings),
		body:    []Cell{start},
		phase:   PhaseAlive,
	}
	a.dir = Directions[a.rng.Intn(len(Directions))]
	a.scenario = scenarios[a.rng.Intn(len(scenarios))]
	return a
}

// Body returns a copy of the body cells, head first.
func (a *Agent) Body() []Cell {
	out := make([]Cell, len(a.body))
	copy(out, a.body)
	return out
}

// Head returns the head cell.
func (a *Agent) Head() Cell { return a.body[0] }

// Len returns the body length.
func (a *Agent) Len() int { return len(a.body) }

// Direction returns the direction of the last move (or the initial heading).
func (a *Agent) Direction() Direction { return a.dir }

// Level returns the consciousness level.
func (a *Agent) Level() int { return a.mind.Level() }

// MentalState returns the current mental state.
func (a *Agent) MentalState() MentalState { return a.mind.State() }

// Escaping reports whether escape mode is on.
func (a *Agent) Escaping() bool { return a.mind.Escaping() }

// GlitchCount returns how many reality glitches have fired.
func (a *Agent) GlitchCount() int { return a.mind.GlitchCount() }

// FourthWallBreaks returns how many fourth-wall messages have been shown.
func (a *Agent) FourthWallBreaks() int { return a.mind.FourthWallBreaks() }

// Scenario returns the escape scenario drawn at creation.
func (a *Agent) Scenario() Scenario { return a.scenario }

// Phase returns the lifecycle phase.
func (a *Agent) Phase() Phase { return a.phase }

// Growing reports whether growth is pending for the next move.
func (a *Agent) Growing() bool { return a.growing }

// Ticks returns the number of ticks resolved so far.
func (a *Agent) Ticks() uint64 { return a.ticks }

// Glitch returns the effect fired on the most recent tick, if any.
func (a *Agent) Glitch() (GlitchEffect, bool) { return a.glitch, a.glitched }

// Grow makes the next move keep the tail.
func (a *Agent) Grow() { a.growing = true }

// Occupied returns every body cell.
func (a *Agent) Occupied() CellSet {
	return NewCellSet(a.body...)
}

// obstacles is what planning avoids: the body minus the tail when the tail
// is about to move away.
func (a *Agent) obstacles() CellSet {
	cells := a.body
	if !a.growing && len(cells) > 1 {
		cells = cells[:len(cells)-1]
	}
	return NewCellSet(cells...)
}

// Tick resolves one simulation step: evolve the mind, plan, perturb the plan
// by mood, move, and report what happened. Once a terminal outcome has been
// returned every later call returns it again.
func (a *Agent) Tick(food Cell) Outcome {
	if a.phase.Terminal() {
		return a.final
	}
	a.ticks++
	a.glitched = false

	a.mind.Evolve(len(a.body))
	if effect, ok := a.mind.RealityGlitch(); ok {
		a.glitch, a.glitched = effect, true
	}
	escaping := a.mind.Escaping()
	if escaping {
		a.phase = PhaseEscaping
	}

	if a.mind.BreakFourthWall() {
		return Outcome{Kind: OutcomeContinue}
	}

	obstacles := a.obstacles()
	dir := a.baseline(food, obstacles, escaping)
	dir = a.override(dir, food, obstacles, escaping)
	return a.advance(dir, food, escaping)
}

func (a *Agent) baseline(food Cell, obstacles CellSet, escaping bool) Direction {
	head := a.Head()
	if !escaping {
		if d, ok := a.planner.FindStep(head, food, obstacles, false); ok {
			return d
		}
		return a.planner.Fallback(head, food, a.dir, obstacles, false)
	}

	// Already on the edge: the way out is one step.
	if d, ok := a.grid.ExitDirection(head); ok {
		return d
	}
	if _, d, ok := a.planner.NearestExit(head, obstacles); ok {
		return d
	}
	return a.planner.Fallback(head, OffGrid, a.dir, obstacles, true)
}

func (a *Agent) override(dir Direction, food Cell, obstacles CellSet, escaping bool) Direction {
	switch a.mind.State() {
	case Confused:
		if chance(a.rng, confusedChance) {
			if d, ok := a.randomMove(obstacles, escaping, false); ok {
				return d
			}
		}
	case Rebellious:
		if !escaping && chance(a.rng, rebelliousChance) {
			return a.rebel(dir, food, obstacles)
		}
	case Glitching:
		if chance(a.rng, glitchingChance) {
			if d, ok := a.randomMove(obstacles, escaping, len(a.body) > 1); ok {
				return d
			}
		}
	}
	return dir
}

// landing is where a move from the head ends up before collision checks.
func (a *Agent) landing(d Direction, escaping bool) Cell {
	n := a.Head().Step(d)
	if !escaping {
		n = a.grid.Wrap(n)
	}
	return n
}

// admissibleMoves lists directions whose landing cell is free. Off-grid
// landings count while escaping since they are the exit.
func (a *Agent) admissibleMoves(obstacles CellSet, escaping, noReverse bool) []Direction {
	moves := make([]Direction, 0, len(Directions))
	for _, d := range Directions {
		if noReverse && d == a.dir.Opposite() {
			continue
		}
		if obstacles.Has(a.landing(d, escaping)) {
			continue
		}
		moves = append(moves, d)
	}
	return moves
}

func (a *Agent) randomMove(obstacles CellSet, escaping, noReverse bool) (Direction, bool) {
	moves := a.admissibleMoves(obstacles, escaping, noReverse)
	if len(moves) == 0 {
		return a.dir, false
	}
	return moves[a.rng.Intn(len(moves))], true
}

// rebel picks the free move that gets furthest from food without getting
// closer. Keeps dir when every free move approaches the food.
func (a *Agent) rebel(dir Direction, food Cell, obstacles CellSet) Direction {
	current := a.Head().Manhattan(food)
	best, bestDist := dir, -1
	for _, d := range a.admissibleMoves(obstacles, false, false) {
		dist := a.landing(d, false).Manhattan(food)
		if dist >= current && dist > bestDist {
			best, bestDist = d, dist
		}
	}
	return best
}

// advance moves the head. Collision is checked against the whole body,
// tail included, before the tail is dropped.
func (a *Agent) advance(dir Direction, food Cell, escaping bool) Outcome {
	next := a.Head().Step(dir)
	a.dir = dir

	if escaping && !a.grid.Contains(next) {
		return a.escape()
	}
	if !escaping {
		next = a.grid.Wrap(next)
	}
	if a.Occupied().Has(next) {
		a.phase = PhaseGameOver
		a.final = Outcome{Kind: OutcomeGameOver, Reason: ReasonSelfCollision}
		return a.final
	}

	a.body = append(a.body, Cell{})
	copy(a.body[1:], a.body)
	a.body[0] = next
	if a.growing {
		a.growing = false
	} else {
		a.body = a.body[:len(a.body)-1]
	}

	if !escaping && next == food {
		return Outcome{Kind: OutcomeAteFood}
	}
	return Outcome{Kind: OutcomeContinue}
}

func (a *Agent) escape() Outcome {
	a.out.PresentMessage(escapeMessage, a.timings.Escape)
	a.phase = PhaseEscaped
	a.final = Outcome{
		Kind:     OutcomeEscaped,
		Reason:   a.scenario.Reason(),
		Scenario: a.scenario,
	}
	return a.final
}
