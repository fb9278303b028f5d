// Package config provides YAML/TOML configuration loading for the breakout
// game. The values are the static geometry of one game: field size, ball,
// paddle and block layout.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// BreakoutConfig contains all configuration for the Breakout game.
type BreakoutConfig struct {
	Field  FieldConfig `yaml:"field" toml:"field"`
	Ball   BallConfig  `yaml:"ball" toml:"ball"`
	Bar    BarConfig   `yaml:"bar" toml:"bar"`
	Blocks BlockConfig `yaml:"blocks" toml:"blocks"`
}

// FieldConfig is the size of the playing surface in canvas pixels.
type FieldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// BallConfig defines the ball.
type BallConfig struct {
	Radius float64     `yaml:"radius" toml:"radius"`
	Speed  SpeedConfig `yaml:"speed" toml:"speed"`
}

// SpeedConfig is a per-frame displacement. The ball starts moving
// right and up: (+X, -Y).
type SpeedConfig struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

// BarConfig defines the paddle (hit bar).
type BarConfig struct {
	Width    float64 `yaml:"width" toml:"width"`
	Height   float64 `yaml:"height" toml:"height"`
	Velocity float64 `yaml:"velocity" toml:"velocity"` // Pixels per move step
}

// BlockConfig defines the staircase of blocks.
type BlockConfig struct {
	Quantity int     `yaml:"quantity" toml:"quantity"`
	Width    float64 `yaml:"width" toml:"width"`
	Height   float64 `yaml:"height" toml:"height"`
}

// Validate checks that the configuration describes a playable field.
func (c BreakoutConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field must have positive size, got %gx%g",
			ErrInvalidConfig, c.Field.Width, c.Field.Height)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("%w: ball radius must be positive, got %g", ErrInvalidConfig, c.Ball.Radius)
	case c.Ball.Speed.Y == 0:
		// The paddle bounce divides by the vertical speed.
		return fmt.Errorf("%w: ball vertical speed must be non-zero", ErrInvalidConfig)
	case c.Bar.Width <= 0 || c.Bar.Height <= 0:
		return fmt.Errorf("%w: bar must have positive size, got %gx%g",
			ErrInvalidConfig, c.Bar.Width, c.Bar.Height)
	case c.Bar.Width > c.Field.Width:
		return fmt.Errorf("%w: bar width %g exceeds field width %g",
			ErrInvalidConfig, c.Bar.Width, c.Field.Width)
	case c.Bar.Velocity < 0:
		return fmt.Errorf("%w: bar velocity must not be negative, got %g", ErrInvalidConfig, c.Bar.Velocity)
	case c.Blocks.Quantity < 0:
		return fmt.Errorf("%w: block quantity must not be negative, got %d", ErrInvalidConfig, c.Blocks.Quantity)
	case c.Blocks.Quantity > 0 && (c.Blocks.Width <= 0 || c.Blocks.Height <= 0):
		return fmt.Errorf("%w: blocks must have positive size, got %gx%g",
			ErrInvalidConfig, c.Blocks.Width, c.Blocks.Height)
	}
	return nil
}
