package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default configuration.
// Kept in sync with defaults/breakout.yaml as a fallback if the embedded
// file fails to parse.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Arena: ArenaConfig{
			Left:          -450,
			Right:         450,
			Bottom:        -300,
			Top:           300,
			WallThickness: 10,
		},
		Paddle: PaddleConfig{
			Width:    120,
			Height:   20,
			Speed:    500,
			Padding:  10,
			FloorGap: 60,
		},
		Ball: BallConfig{
			Radius: 15,
			Speed:  400,
			StartX: 0,
			StartY: -50,
			DirX:   0.5,
			DirY:   -0.5,
		},
		Bricks: BrickConfig{
			Width:      80,
			Height:     15,
			Gap:        40,
			PaddleGap:  270,
			CeilingGap: 20,
			SideGap:    20,
		},
	}
}
