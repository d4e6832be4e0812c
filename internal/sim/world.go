package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Scoreboard is the session score: non-negative, monotonically
// non-decreasing, mutated only by the collision engine.
type Scoreboard struct {
	score int
}

// Add increments the score by n destroyed bricks.
func (s *Scoreboard) Add(n int) {
	s.score += n
}

// Value returns the current score.
func (s Scoreboard) Value() int {
	return s.score
}

// Params holds the simulation's construction-time constants, in arena units.
type Params struct {
	Arena Arena

	PaddleWidth    float64
	PaddleHeight   float64
	PaddleSpeed    float64 // Units per second
	PaddlePadding  float64 // Closest the paddle may get to a wall
	PaddleFloorGap float64 // Height of the paddle row above the bottom wall

	BallRadius float64
	BallSpeed  float64   // Units per second
	BallStart  core.Vec2 // Starting position
	BallDir    core.Vec2 // Initial direction, normalized at construction

	Bricks BrickLayout
}

// World owns all mutable simulation state for one session. Single-threaded:
// each tick runs paddle motion, integration and collision resolution in that
// strict order, and nothing else touches the state between ticks.
type World struct {
	arena  Arena
	walls  [4]Wall
	paddle Paddle
	ball   Ball
	bricks []Brick

	rows, cols int
	alive      int

	score Scoreboard
	dt    float64
	tick  int

	// Paddle motion per tick (speed scaled by the timestep).
	paddleStep float64

	// Contacts processed in the most recent tick; the audio collaborator
	// reads it through Collisions() and it resets at the top of each tick.
	collisions int

	// Paddle clamp range, precomputed from arena, wall and paddle geometry.
	paddleMinX float64
	paddleMaxX float64
}

// NewWorld validates the parameters and builds the initial state: four
// walls, a centered paddle, the ball with its launch velocity, and the
// brick grid. Invalid geometry is a construction error; the process should
// refuse to start rather than run with a degenerate world.
func NewWorld(p Params, dt float64) (*World, error) {
	if err := p.Arena.Validate(); err != nil {
		return nil, err
	}
	if dt <= 0 {
		return nil, fmt.Errorf("sim: timestep must be positive, got %g", dt)
	}
	if p.PaddleWidth <= 0 || p.PaddleHeight <= 0 {
		return nil, fmt.Errorf("sim: paddle size must be positive, got %gx%g", p.PaddleWidth, p.PaddleHeight)
	}
	if p.BallRadius <= 0 {
		return nil, fmt.Errorf("sim: ball radius must be positive, got %g", p.BallRadius)
	}
	if p.BallSpeed <= 0 {
		return nil, fmt.Errorf("sim: ball speed must be positive, got %g", p.BallSpeed)
	}
	if p.BallDir.Len() == 0 {
		return nil, fmt.Errorf("sim: ball direction must be non-zero")
	}

	a := p.Arena
	paddleY := a.Bottom + p.PaddleFloorGap

	bricks, rows, cols, err := buildBricks(a, paddleY, p.Bricks)
	if err != nil {
		return nil, err
	}

	halfW := p.PaddleWidth / 2
	minX := a.Left + a.WallThickness/2 + halfW + p.PaddlePadding
	maxX := a.Right - a.WallThickness/2 - halfW - p.PaddlePadding
	if minX > maxX {
		return nil, fmt.Errorf("sim: paddle does not fit between the walls")
	}

	w := &World{
		arena: a,
		walls: a.Walls(),
		paddle: Paddle{
			Pos:  core.Vec2{X: a.Center().X, Y: paddleY},
			Half: core.Vec2{X: halfW, Y: p.PaddleHeight / 2},
		},
		ball: Ball{
			Pos:    p.BallStart,
			Vel:    p.BallDir.Normalize().Scale(p.BallSpeed),
			Radius: p.BallRadius,
		},
		bricks:     bricks,
		rows:       rows,
		cols:       cols,
		alive:      len(bricks),
		dt:         dt,
		paddleStep: p.PaddleSpeed * dt,
		paddleMinX: minX,
		paddleMaxX: maxX,
	}

	return w, nil
}

// Step advances the simulation by one fixed tick: sample input for paddle
// motion, integrate the ball, then resolve collisions. All three complete
// synchronously before the tick returns.
func (w *World) Step(in core.InputFrame) {
	w.tick++
	w.collisions = 0

	w.movePaddle(in)
	w.integrate()
	w.resolveCollisions()
}

// movePaddle advances the paddle from the tick's input. Simultaneous
// left+right cancels out. The position is clamped so the paddle can never
// overlap a wall or leave the arena.
func (w *World) movePaddle(in core.InputFrame) {
	dir := 0.0
	if in.Has(core.ActionLeft) {
		dir -= 1
	}
	if in.Has(core.ActionRight) {
		dir += 1
	}

	newX := w.paddle.Pos.X + dir*w.paddleStep
	w.paddle.Pos.X = core.ClampF(newX, w.paddleMinX, w.paddleMaxX)
}

// integrate advances the ball by its velocity over one timestep. It runs
// before the collision engine so collision tests see the post-motion
// position; boundary containment is enforced entirely by reflection.
func (w *World) integrate() {
	w.ball.Pos = w.ball.Pos.Add(w.ball.Vel.Scale(w.dt))
}

// resolveCollisions tests the ball against every collider in a fixed order:
// the four walls, the paddle, then live bricks row-major from the bottom
// row up. Each contact sees the velocity as mutated so far this tick, so
// simultaneous multi-contact reflections compound sequentially; that is
// accepted behavior, not corrected.
func (w *World) resolveCollisions() {
	for i := range w.walls {
		w.contact(w.walls[i].Pos, w.walls[i].Half)
	}

	w.contact(w.paddle.Pos, w.paddle.Half)

	for i := range w.bricks {
		b := &w.bricks[i]
		if !b.Alive {
			continue
		}
		c := Collide(w.ball.Pos, w.ball.Half(), b.Pos, b.Half)
		if c == ContactNone {
			continue
		}
		b.Alive = false
		w.alive--
		w.score.Add(1)
		w.ball.Vel = Reflect(w.ball.Vel, c)
		w.collisions++
	}
}

// contact processes one static collider: on overlap, reflect and count.
func (w *World) contact(pos, half core.Vec2) {
	c := Collide(w.ball.Pos, w.ball.Half(), pos, half)
	if c == ContactNone {
		return
	}
	w.ball.Vel = Reflect(w.ball.Vel, c)
	w.collisions++
}

// Arena returns the play field geometry.
func (w *World) Arena() Arena {
	return w.arena
}

// Walls returns the four boundary colliders.
func (w *World) Walls() [4]Wall {
	return w.walls
}

// Paddle returns the paddle state.
func (w *World) Paddle() Paddle {
	return w.paddle
}

// Ball returns the ball state.
func (w *World) Ball() Ball {
	return w.ball
}

// Bricks returns the brick slice, row-major from the bottom row up.
// Dead bricks stay in place with Alive=false so indices remain stable.
func (w *World) Bricks() []Brick {
	return w.bricks
}

// Grid returns the brick grid dimensions.
func (w *World) Grid() (rows, cols int) {
	return w.rows, w.cols
}

// BricksAlive returns the number of live bricks.
func (w *World) BricksAlive() int {
	return w.alive
}

// Cleared reports whether every brick has been destroyed.
func (w *World) Cleared() bool {
	return w.alive == 0
}

// Score returns the current score.
func (w *World) Score() int {
	return w.score.Value()
}

// Collisions returns the number of contacts processed in the latest tick.
func (w *World) Collisions() int {
	return w.collisions
}

// Tick returns the number of ticks stepped so far.
func (w *World) Tick() int {
	return w.tick
}

// PaddleBounds returns the clamp range for the paddle center.
func (w *World) PaddleBounds() (minX, maxX float64) {
	return w.paddleMinX, w.paddleMaxX
}
