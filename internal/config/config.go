// Package config provides YAML-based game configuration loading for the
// sentient snake.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SnakeConfig contains all configuration for the Sentient Snake game.
type SnakeConfig struct {
	Grid     GridConfig     `yaml:"grid"`
	Timing   TimingConfig   `yaml:"timing"`
	Messages MessagesConfig `yaml:"messages"`
}

// GridConfig defines the playfield. Start defaults to the grid centre when unset.
type GridConfig struct {
	Width  int       `yaml:"width"`
	Height int       `yaml:"height"`
	Start  *StartPos `yaml:"start,omitempty"`
}

// StartPos is the head cell the snake spawns on.
type StartPos struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// TimingConfig defines the simulation rate.
type TimingConfig struct {
	TickRate int `yaml:"tick_rate"` // Moves per second
}

// MessagesConfig defines how long narration stays on screen, in milliseconds.
type MessagesConfig struct {
	DurationMS  int `yaml:"duration_ms"`
	TransientMS int `yaml:"transient_ms"`
	EscapeMS    int `yaml:"escape_ms"`
}

// Duration returns the default message display duration.
func (m MessagesConfig) Duration() time.Duration {
	return time.Duration(m.DurationMS) * time.Millisecond
}

// Transient returns the display duration for short state-change notes.
func (m MessagesConfig) Transient() time.Duration {
	return time.Duration(m.TransientMS) * time.Millisecond
}

// Escape returns the display duration for the escape and game over messages.
func (m MessagesConfig) Escape() time.Duration {
	return time.Duration(m.EscapeMS) * time.Millisecond
}

// Validation errors.
var (
	ErrGridTooSmall = errors.New("config: grid must be at least 3x3")
	ErrTickRate     = errors.New("config: tick_rate must be positive")
	ErrStartOutside = errors.New("config: start position outside grid")
)

// Validate checks the config for values the simulation cannot run with.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width < 3 || c.Grid.Height < 3 {
		return fmt.Errorf("%w (got %dx%d)", ErrGridTooSmall, c.Grid.Width, c.Grid.Height)
	}
	if c.Timing.TickRate <= 0 {
		return ErrTickRate
	}
	if s := c.Grid.Start; s != nil {
		if s.X < 0 || s.X >= c.Grid.Width || s.Y < 0 || s.Y >= c.Grid.Height {
			return fmt.Errorf("%w: (%d, %d)", ErrStartOutside, s.X, s.Y)
		}
	}
	return nil
}

// StartCell returns the configured start, or the grid centre.
func (c SnakeConfig) StartCell() (int, int) {
	if c.Grid.Start != nil {
		return c.Grid.Start.X, c.Grid.Start.Y
	}
	return c.Grid.Width / 2, c.Grid.Height / 2
}
