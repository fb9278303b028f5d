package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the built-in Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Field: FieldConfig{
			Width:  640,
			Height: 480,
		},
		Ball: BallConfig{
			Radius: 5,
			Speed:  SpeedConfig{X: 2, Y: 2},
		},
		Bar: BarConfig{
			Width:    80,
			Height:   3,
			Velocity: 10,
		},
		Blocks: BlockConfig{
			Quantity: 10,
			Width:    20,
			Height:   40,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
