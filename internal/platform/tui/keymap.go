package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sentient-snake/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// The snake steers itself, so only control keys are bound.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "p", "esc", " ":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "+", "=", "right", "l":
		return core.ActionFaster, false
	case "-", "_", "left", "h":
		return core.ActionSlower, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}
