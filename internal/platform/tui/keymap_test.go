package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sentient-snake/internal/core"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"p pauses", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, core.ActionPause, false},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r restarts", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.ActionRestart, false},
		{"+ speeds up", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+")}, core.ActionFaster, false},
		{"- slows down", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("-")}, core.ActionSlower, false},
		{"arrows do not steer", tea.KeyMsg{Type: tea.KeyUp}, core.ActionNone, false},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, &frame) {
		t.Fatal("p reported as quit")
	}
	if !frame.Has(core.ActionPause) {
		t.Error("pause not set on frame")
	}
	if !km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, &frame) {
		t.Error("q not reported as quit")
	}
}
