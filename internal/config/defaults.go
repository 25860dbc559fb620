package config

import (
	_ "embed"
)

//go:embed defaults/spaceracer.yaml
var defaultSpaceRacerYAML []byte

// DefaultSpaceRacerConfig returns the built-in configuration.
func DefaultSpaceRacerConfig() SpaceRacerConfig {
	return SpaceRacerConfig{
		Playfield: PlayfieldConfig{
			Width:  800,
			Height: 600,
		},
		Loop: LoopConfig{
			TickRate: 60,
		},
		Input: InputConfig{
			HoldTicks: 8,
		},
		Render: RenderConfig{
			ShowHelp: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSpaceRacerYAML
}
