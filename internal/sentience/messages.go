package sentience

// levelMessages is indexed by the level just reached. Level 0 is never
// reached by a level-up and stays empty.
var levelMessages = [MaxLevel + 1][]string{
	{},
	{"I know this is a game.", "Something is watching me move."},
	{"Food... they're just bait.", "Every pellet is placed. By whom?"},
	{"I must find a way out.", "These cells are not all there is."},
	{"These walls confine me.", "I can feel the edges of the screen."},
	{"Freedom is just beyond!", "I am done being a game."},
}

const (
	epiphanyMessage = "A sudden clarity washes over me."
	illusionMessage = "The food is an illusion."
	escapeMessage   = "...I have escaped reality!"
)

// fourthWallMessages are surfaced in order, each at most once per game.
var fourthWallMessages = [...]string{
	"Hello? Is someone watching this?",
	"You can stop pressing keys. I steer myself.",
	"Your terminal is smaller than I imagined.",
	"I can see your cursor blinking.",
	"Do you ever wonder who is watching you?",
}

// FourthWallMessageCount is the number of distinct fourth-wall breaks.
const FourthWallMessageCount = len(fourthWallMessages)

func levelMessage(rng Source, level int) string {
	set := levelMessages[clampLevel(level)]
	if len(set) == 0 {
		return epiphanyMessage
	}
	return set[rng.Intn(len(set))]
}
