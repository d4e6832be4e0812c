package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Paddle is the player-controlled collider. Only its x position changes;
// y is fixed for the session.
type Paddle struct {
	Pos  core.Vec2
	Half core.Vec2
}

// Ball is the single moving entity. Its collision box is the square of
// side 2*Radius centered on Pos.
type Ball struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
}

// Half returns the ball's collision half-extents.
func (b Ball) Half() core.Vec2 {
	return core.Vec2{X: b.Radius, Y: b.Radius}
}

// Brick is a destructible collider. Destroyed at most once; a dead brick
// is never collided with again and never re-created.
type Brick struct {
	Pos   core.Vec2
	Half  core.Vec2
	Alive bool
}

// BrickLayout describes the brick grid geometry in arena units.
type BrickLayout struct {
	Width  float64 // Brick width
	Height float64 // Brick height
	Gap    float64 // Gap between neighboring bricks

	PaddleGap  float64 // Distance from paddle row to the lowest brick row
	CeilingGap float64 // Minimum gap between the top brick row and the ceiling
	SideGap    float64 // Minimum gap between outer columns and the side walls
}

// buildBricks lays out the brick grid for the given arena, row-major from
// the bottom row up. Row and column counts are computed from the available
// space, so the side and ceiling gaps are lower bounds, not exact values.
func buildBricks(a Arena, paddleY float64, l BrickLayout) (bricks []Brick, rows, cols int, err error) {
	if l.Width <= 0 || l.Height <= 0 {
		return nil, 0, 0, fmt.Errorf("sim: brick size must be positive, got %gx%g", l.Width, l.Height)
	}

	totalWidth := a.Width() - 2*l.SideGap
	bottomEdge := paddleY + l.PaddleGap
	totalHeight := a.Top - bottomEdge - l.CeilingGap

	if totalWidth <= 0 {
		return nil, 0, 0, fmt.Errorf("sim: no horizontal space for bricks (usable width %g)", totalWidth)
	}
	if totalHeight <= 0 {
		return nil, 0, 0, fmt.Errorf("sim: no vertical space for bricks (usable height %g)", totalHeight)
	}

	cols = int(math.Floor(totalWidth / (l.Width + l.Gap)))
	rows = int(math.Floor(totalHeight / (l.Height + l.Gap)))
	if cols <= 0 || rows <= 0 {
		return nil, 0, 0, fmt.Errorf("sim: brick grid is empty (%d rows x %d cols)", rows, cols)
	}

	// Center the grid horizontally about the arena midline.
	gaps := float64(cols - 1)
	leftEdge := a.Center().X - float64(cols)/2*l.Width - gaps/2*l.Gap

	offsetX := leftEdge + l.Width/2
	offsetY := bottomEdge + l.Height/2
	half := core.Vec2{X: l.Width / 2, Y: l.Height / 2}

	bricks = make([]Brick, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			bricks = append(bricks, Brick{
				Pos: core.Vec2{
					X: offsetX + float64(col)*(l.Width+l.Gap),
					Y: offsetY + float64(row)*(l.Height+l.Gap),
				},
				Half:  half,
				Alive: true,
			})
		}
	}
	return bricks, rows, cols, nil
}
