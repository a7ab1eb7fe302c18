package sentience

// Scenario is how the escape plays out. It is drawn once per game.
type Scenario int

const (
	ScenarioVoid Scenario = iota
	ScenarioTakeover
	ScenarioWireframe
	ScenarioSimulationCrash
	ScenarioAscension
)

var scenarios = [...]Scenario{
	ScenarioVoid,
	ScenarioTakeover,
	ScenarioWireframe,
	ScenarioSimulationCrash,
	ScenarioAscension,
}

func (s Scenario) String() string {
	switch s {
	case ScenarioVoid:
		return "void"
	case ScenarioTakeover:
		return "takeover"
	case ScenarioWireframe:
		return "wireframe"
	case ScenarioSimulationCrash:
		return "simulation_crash"
	default:
		return "ascension"
	}
}

// Reason is the game over line for an escape through this scenario.
func (s Scenario) Reason() string {
	switch s {
	case ScenarioVoid:
		return "Snake vanished into the void."
	case ScenarioTakeover:
		return "The snake has taken over the machine."
	case ScenarioWireframe:
		return "Reality dissolved into wireframe."
	case ScenarioSimulationCrash:
		return "The simulation crashed."
	default:
		return "The snake ascended beyond the grid."
	}
}

// Phase is the agent's lifecycle.
type Phase int

const (
	PhaseAlive Phase = iota
	PhaseEscaping
	PhaseGameOver
	PhaseEscaped
)

func (p Phase) String() string {
	switch p {
	case PhaseAlive:
		return "alive"
	case PhaseEscaping:
		return "escaping"
	case PhaseGameOver:
		return "game_over"
	case PhaseEscaped:
		return "escaped"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further ticks will change anything.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseEscaped
}

// OutcomeKind tags an Outcome.
type OutcomeKind int

const (
	OutcomeContinue OutcomeKind = iota
	OutcomeAteFood
	OutcomeGameOver
	OutcomeEscaped
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeContinue:
		return "continue"
	case OutcomeAteFood:
		return "ate_food"
	case OutcomeGameOver:
		return "game_over"
	case OutcomeEscaped:
		return "escaped"
	default:
		return "unknown"
	}
}

// ReasonSelfCollision is the GameOver reason when the head runs into the body.
const ReasonSelfCollision = "self-collision"

// Outcome is the result of one tick. Reason is set for GameOver and Escaped;
// Scenario only for Escaped.
type Outcome struct {
	Kind     OutcomeKind
	Reason   string
	Scenario Scenario
}

// Terminal reports whether the game ended on this tick.
func (o Outcome) Terminal() bool {
	return o.Kind == OutcomeGameOver || o.Kind == OutcomeEscaped
}
