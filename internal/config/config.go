// Package config provides YAML-based configuration loading and difficulty
// presets for the breakout platform.
package config

// BreakoutConfig contains all simulation constants, in arena units.
// These are session-initialization parameters, not runtime inputs.
type BreakoutConfig struct {
	Arena  ArenaConfig  `yaml:"arena"`
	Paddle PaddleConfig `yaml:"paddle"`
	Ball   BallConfig   `yaml:"ball"`
	Bricks BrickConfig  `yaml:"bricks"`
}

// ArenaConfig defines the play field bounds and wall thickness.
type ArenaConfig struct {
	Left          float64 `yaml:"left"`
	Right         float64 `yaml:"right"`
	Bottom        float64 `yaml:"bottom"`
	Top           float64 `yaml:"top"`
	WallThickness float64 `yaml:"wall_thickness"`
}

// PaddleConfig defines paddle geometry and motion.
type PaddleConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"`     // Units per second
	Padding  float64 `yaml:"padding"`   // Closest the paddle may get to a wall
	FloorGap float64 `yaml:"floor_gap"` // Paddle row height above the bottom wall
}

// BallConfig defines ball geometry and launch state.
type BallConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // Units per second
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	DirX   float64 `yaml:"dir_x"` // Initial direction, normalized at startup
	DirY   float64 `yaml:"dir_y"`
}

// BrickConfig defines the brick grid layout. Row and column counts are
// computed from the available space, so the ceiling and side gaps are
// lower bounds.
type BrickConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Gap        float64 `yaml:"gap"`
	PaddleGap  float64 `yaml:"paddle_gap"`
	CeilingGap float64 `yaml:"ceiling_gap"`
	SideGap    float64 `yaml:"side_gap"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyBreakoutPreset adjusts the config for a difficulty preset before the
// session starts. Unknown presets leave the config unchanged.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Width = 160
		cfg.Ball.Speed = 300
	case DifficultyHard:
		cfg.Paddle.Width = 90
		cfg.Ball.Speed = 520
	}
}
