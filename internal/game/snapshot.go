package game

import "math"

// Snapshot contains the complete game state for determinism testing.
// Uses primitive types only for stable hashing.
type Snapshot struct {
	Tick    int
	PaddleX float64
	BallX   float64
	BallY   float64
	BallVX  float64
	BallVY  float64

	Score           int
	BricksRemaining int
	State           string

	// Brick liveness, row-major from the bottom row up.
	BrickAlive []bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.world == nil {
		return Snapshot{State: g.state}
	}

	bricks := g.world.Bricks()
	alive := make([]bool, len(bricks))
	for i, b := range bricks {
		alive[i] = b.Alive
	}

	ball := g.world.Ball()
	return Snapshot{
		Tick:            g.world.Tick(),
		PaddleX:         g.world.Paddle().Pos.X,
		BallX:           ball.Pos.X,
		BallY:           ball.Pos.Y,
		BallVX:          ball.Vel.X,
		BallVY:          ball.Vel.Y,
		Score:           g.world.Score(),
		BricksRemaining: g.world.BricksAlive(),
		State:           g.state,
		BrickAlive:      alive,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := uint64(snap.Tick) //#nosec G115 -- tick count is always positive
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- score is non-negative
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- count is non-negative

	for _, r := range snap.State {
		h = h*31 + uint64(r)
	}
	for _, a := range snap.BrickAlive {
		h *= 31
		if a {
			h++
		}
	}
	return h
}
