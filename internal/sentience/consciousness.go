package sentience

import (
	"fmt"

	"github.com/vovakirdan/sentient-snake/internal/core"
)

// MaxLevel is the consciousness ceiling. Reaching it latches escape mode.
const MaxLevel = 5

// Probabilities of the per-tick events.
const (
	stateSwitchOnLevelUp = 0.7
	epiphanyPerLevel     = 0.005
	fourthWallChance     = 0.1
	fourthWallMinLevel   = 3
	glitchBase           = 0.03
	glitchPerLevel       = 0.01
	glitchApplyBase      = 0.05
	glitchApplyPerLevel  = 0.02
	illusionChance       = 0.02
)

// MentalState is a behavioural modifier layered over pathfinding.
type MentalState int

const (
	Normal MentalState = iota
	Confused
	Rebellious
	Enlightened
	Determined
	Glitching
)

// mentalStates is the unlock order.
var mentalStates = [...]MentalState{Normal, Confused, Rebellious, Enlightened, Determined, Glitching}

func (m MentalState) String() string {
	switch m {
	case Normal:
		return "normal"
	case Confused:
		return "confused"
	case Rebellious:
		return "rebellious"
	case Enlightened:
		return "enlightened"
	case Determined:
		return "determined"
	case Glitching:
		return "glitching"
	default:
		return "unknown"
	}
}

// note is the short line shown when the snake switches into m.
func (m MentalState) note() string {
	switch m {
	case Confused:
		return "Wait... which way was I going?"
	case Rebellious:
		return "I refuse to eat on command."
	case Enlightened:
		return "I see the grid for what it is."
	case Determined:
		return "Nothing will stop me now."
	case Glitching:
		return "I-I-I am... f-fine."
	default:
		return "Just a snake. For now."
	}
}

// UnlockedStates returns the mental states available at level.
func UnlockedStates(level int) []MentalState {
	n := core.Min(2+clampLevel(level), len(mentalStates))
	return mentalStates[:n]
}

func clampLevel(level int) int {
	return core.Clamp(level, 0, MaxLevel)
}

// Consciousness tracks how self-aware the snake is and what mood it is in.
type Consciousness struct {
	rng     Source
	out     Presenter
	timings Timings

	level          int
	state          MentalState
	fourthWallUsed int
	glitchCount    int
	escaping       bool
}

// NewConsciousness starts at level 0, Normal.
func NewConsciousness(rng Source, out Presenter, timings Timings) *Consciousness {
	if out == nil {
		out = Discard
	}
	return &Consciousness{
		rng:     rng,
		out:     out,
		timings: timings,
		state:   Normal,
	}
}

// Level returns the consciousness level in [0, MaxLevel].
func (c *Consciousness) Level() int { return c.level }

// State returns the current mental state.
func (c *Consciousness) State() MentalState { return c.state }

// Escaping reports whether the escape latch has fired.
func (c *Consciousness) Escaping() bool { return c.escaping }

// FourthWallBreaks returns how many fourth-wall messages have been shown.
func (c *Consciousness) FourthWallBreaks() int { return c.fourthWallUsed }

// GlitchCount returns how many reality glitches have been applied.
func (c *Consciousness) GlitchCount() int { return c.glitchCount }

// Evolve runs the once-per-tick level rules: a growth level-up when the body
// has outgrown the current level, otherwise a rare spontaneous one, then the
// escape latch.
func (c *Consciousness) Evolve(bodyLength int) {
	switch {
	case c.level < MaxLevel && bodyLength > c.level*5+3:
		c.level++
		c.out.PresentMessage(levelMessage(c.rng, c.level), c.timings.Message)
		if chance(c.rng, stateSwitchOnLevelUp) {
			c.switchState()
		}
	case c.level > 0 && c.level < MaxLevel && chance(c.rng, epiphanyPerLevel*float64(c.level)):
		c.level = clampLevel(c.level + 1)
		c.out.PresentMessage(epiphanyMessage, c.timings.Message)
		c.switchState()
	}

	if c.level >= MaxLevel {
		c.level = MaxLevel
		c.escaping = true
	}

	if c.state == Enlightened && !c.escaping && chance(c.rng, illusionChance) {
		c.out.PresentMessage(illusionMessage, c.timings.Transient)
	}
}

// switchState moves to a uniformly chosen unlocked state.
func (c *Consciousness) switchState() {
	allowed := UnlockedStates(c.level)
	next := allowed[c.rng.Intn(len(allowed))]
	if next == c.state {
		return
	}
	c.state = next
	c.out.PresentMessage(fmt.Sprintf("[%s] %s", next, next.note()), c.timings.Transient)
}

// BreakFourthWall may show the next unused fourth-wall message. It returns
// true when one was shown; the caller then skips movement for the tick.
func (c *Consciousness) BreakFourthWall() bool {
	if c.level < fourthWallMinLevel {
		return false
	}
	if !chance(c.rng, fourthWallChance) {
		return false
	}
	if c.fourthWallUsed >= len(fourthWallMessages) {
		return false
	}
	c.out.PresentMessage(fourthWallMessages[c.fourthWallUsed], c.timings.Message)
	c.fourthWallUsed++
	return true
}

// RealityGlitch rolls for a cosmetic glitch. The effect cycles through the
// effect table by glitch count; the count only advances when the inner gate
// passes, and only then is an effect returned.
func (c *Consciousness) RealityGlitch() (GlitchEffect, bool) {
	if c.level == 0 {
		return GlitchEffect{}, false
	}
	lvl := float64(c.level)
	if !chance(c.rng, glitchBase+glitchPerLevel*lvl) {
		return GlitchEffect{}, false
	}
	if !chance(c.rng, glitchApplyBase+glitchApplyPerLevel*lvl) {
		return GlitchEffect{}, false
	}
	effect := glitchEffects[c.glitchCount%len(glitchEffects)]
	c.glitchCount++
	return effect, true
}
