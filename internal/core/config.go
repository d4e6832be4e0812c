package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and to derive the fixed timestep.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Timestep returns the fixed simulation timestep in seconds.
func (c RuntimeConfig) Timestep() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of the game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score   int  // Current score
	Cleared bool // Whether every brick has been destroyed
	Paused  bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Collisions is the number of ball contacts processed this tick.
	// Consumed by the audio collaborator; reset every tick.
	Collisions int
}
