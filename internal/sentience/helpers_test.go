package sentience

import (
	"testing"
	"time"
)

// scriptedSource replays fixed draws. When a queue runs dry Float64 returns
// 0.99 (every gate in the engine fails) and Intn returns 0.
type scriptedSource struct {
	floats []float64
	ints   []int
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.99
	}
	f := s.floats[0]
	s.floats = s.floats[1:]
	return f
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

// strictSource fails the test on any draw.
type strictSource struct {
	t *testing.T
}

func (s strictSource) Float64() float64 {
	s.t.Helper()
	s.t.Fatal("unexpected Float64 draw")
	return 0
}

func (s strictSource) Intn(int) int {
	s.t.Helper()
	s.t.Fatal("unexpected Intn draw")
	return 0
}

type recorder struct {
	texts     []string
	durations []time.Duration
}

func (r *recorder) PresentMessage(text string, d time.Duration) {
	r.texts = append(r.texts, text)
	r.durations = append(r.durations, d)
}

func newTestAgent(w, h int, rng Source, out Presenter) *Agent {
	return NewAgent(World{
		Grid:      NewGrid(w, h),
		Rand:      rng,
		Presenter: out,
		Timings:   DefaultTimings(),
		Start:     Cell{X: w / 2, Y: h / 2},
	})
}
