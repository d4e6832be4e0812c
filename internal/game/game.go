// Package game wraps the breakout simulation in a platform-facing lifecycle:
// reset, fixed-tick stepping with pause/restart handling, and rendering of
// the simulation state into a screen buffer.
package game

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/sim"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
)

// Brick glyphs by row (cycling through)
var BrickGlyphs = []rune{'█', '▓', '▒', '░', '#', '+', '*', '='}

// Brick colors by row (cycling through)
var brickColors = []core.Color{
	core.ColorBrightRed,
	core.ColorOrange,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorBrightCyan,
	core.ColorBrightBlue,
	core.ColorBrightMagenta,
}

// Game state constants
const (
	StatePlaying = "playing" // Ball in play
	StatePaused  = "paused"  // Game paused
	StateCleared = "cleared" // Every brick destroyed
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	default:
		difficultyPreset = ""
	}
}

// Game implements the Breakout lifecycle around the simulation core.
type Game struct {
	world *sim.World
	state string

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.BreakoutConfig

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Breakout game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset initializes or restarts the game. Geometry errors are fatal
// misconfiguration: the session must not start with a degenerate world.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	g.runtime = runtime

	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.minScreenW = 30
	g.minScreenH = 15
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	world, err := sim.NewWorld(params(cfg), runtime.Timestep())
	if err != nil {
		return fmt.Errorf("game: invalid configuration: %w", err)
	}
	g.world = world
	g.state = StatePlaying
	return nil
}

// SetScreenSize updates the runtime dimensions after a terminal resize.
// The simulation is independent of the terminal size, so only the
// too-small guard is re-derived; the session itself keeps running.
func (g *Game) SetScreenSize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
}

// params maps the loaded configuration onto simulation parameters.
func params(cfg config.BreakoutConfig) sim.Params {
	return sim.Params{
		Arena: sim.Arena{
			Left:          cfg.Arena.Left,
			Right:         cfg.Arena.Right,
			Bottom:        cfg.Arena.Bottom,
			Top:           cfg.Arena.Top,
			WallThickness: cfg.Arena.WallThickness,
		},
		PaddleWidth:    cfg.Paddle.Width,
		PaddleHeight:   cfg.Paddle.Height,
		PaddleSpeed:    cfg.Paddle.Speed,
		PaddlePadding:  cfg.Paddle.Padding,
		PaddleFloorGap: cfg.Paddle.FloorGap,
		BallRadius:     cfg.Ball.Radius,
		BallSpeed:      cfg.Ball.Speed,
		BallStart:      core.Vec2{X: cfg.Ball.StartX, Y: cfg.Ball.StartY},
		BallDir:        core.Vec2{X: cfg.Ball.DirX, Y: cfg.Ball.DirY},
		Bricks: sim.BrickLayout{
			Width:      cfg.Bricks.Width,
			Height:     cfg.Bricks.Height,
			Gap:        cfg.Bricks.Gap,
			PaddleGap:  cfg.Bricks.PaddleGap,
			CeilingGap: cfg.Bricks.CeilingGap,
			SideGap:    cfg.Bricks.SideGap,
		},
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall || g.world == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle restart after the board is cleared
	if in.Has(core.ActionRestart) && g.state == StateCleared {
		// The config validated at session start, so this cannot fail.
		world, err := sim.NewWorld(params(g.cfg), g.runtime.Timestep())
		if err == nil {
			g.world = world
			g.state = StatePlaying
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.world.Step(in)

	if g.world.Cleared() {
		g.state = StateCleared
	}

	return core.StepResult{
		State:      g.State(),
		Collisions: g.world.Collisions(),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	var score int
	if g.world != nil {
		score = g.world.Score()
	}
	return core.GameState{
		Score:   score,
		Cleared: g.state == StateCleared,
		Paused:  g.state == StatePaused,
	}
}
