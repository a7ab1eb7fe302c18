package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Sentient Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  30,
			Height: 20,
		},
		Timing: TimingConfig{
			TickRate: 10,
		},
		Messages: MessagesConfig{
			DurationMS:  1200,
			TransientMS: 500,
			EscapeMS:    2000,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
