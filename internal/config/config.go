// Package config provides YAML-based configuration for Space Racer.
// Configuration covers the playfield, the frame loop, input handling,
// rendering and logging. Gameplay tuning is fixed in the game package.
package config

import (
	"errors"
	"fmt"
)

// SpaceRacerConfig holds all configuration for a Space Racer session.
type SpaceRacerConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Loop      LoopConfig      `yaml:"loop"`
	Input     InputConfig     `yaml:"input"`
	Render    RenderConfig    `yaml:"render"`
	Log       LogConfig       `yaml:"log"`
}

// PlayfieldConfig is the size of the simulated world in pixels.
type PlayfieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LoopConfig controls the fixed-rate frame loop.
type LoopConfig struct {
	TickRate int `yaml:"tick_rate"` // Ticks per second; also sets how far explosions age per tick
}

// InputConfig controls how terminal key events become held controls.
type InputConfig struct {
	// HoldTicks is how many ticks a key press keeps its action held.
	// Terminals report presses and repeats but never releases.
	HoldTicks int `yaml:"hold_ticks"`
}

// RenderConfig controls the terminal presentation.
type RenderConfig struct {
	ShowHelp   bool   `yaml:"show_help"`
	ShipSprite string `yaml:"ship_sprite"` // Optional ship image; only its presence matters
}

// LogConfig controls the session logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty means ~/.spaceracer/spaceracer.log
}

// Validate reports every invalid setting.
func (c SpaceRacerConfig) Validate() error {
	var errs []error
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield must be positive, got %dx%d", c.Playfield.Width, c.Playfield.Height))
	}
	if c.Loop.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("loop.tick_rate must be positive, got %d", c.Loop.TickRate))
	}
	if c.Input.HoldTicks < 1 {
		errs = append(errs, fmt.Errorf("input.hold_ticks must be at least 1, got %d", c.Input.HoldTicks))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
