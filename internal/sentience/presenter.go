package sentience

import "time"

// Presenter shows narration to whoever is watching. PresentMessage is
// synchronous: the engine treats the message as fully shown when it returns.
type Presenter interface {
	PresentMessage(text string, duration time.Duration)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(text string, duration time.Duration)

// PresentMessage calls f.
func (f PresenterFunc) PresentMessage(text string, duration time.Duration) {
	f(text, duration)
}

// Discard drops every message.
var Discard Presenter = PresenterFunc(func(string, time.Duration) {})

// Timings are the display durations the engine asks for.
type Timings struct {
	Message   time.Duration // level-ups and fourth-wall breaks
	Transient time.Duration // mental state changes
	Escape    time.Duration // the escape line
}

// DefaultTimings mirrors the shipped config.
func DefaultTimings() Timings {
	return Timings{
		Message:   1200 * time.Millisecond,
		Transient: 500 * time.Millisecond,
		Escape:    2000 * time.Millisecond,
	}
}
