// Package sim implements the fixed-timestep breakout simulation: paddle
// motion, velocity integration, AABB collision detection and response, and
// score bookkeeping. It is pure logic with no platform dependencies; the
// terminal layer renders its state and supplies per-tick input.
package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Arena defines the rectangular play field in arena units.
// Immutable after construction.
type Arena struct {
	Left   float64
	Right  float64
	Bottom float64
	Top    float64

	// WallThickness is the thickness of the boundary wall colliders.
	WallThickness float64
}

// Width returns the horizontal extent of the play field.
func (a Arena) Width() float64 {
	return a.Right - a.Left
}

// Height returns the vertical extent of the play field.
func (a Arena) Height() float64 {
	return a.Top - a.Bottom
}

// Center returns the midpoint of the play field.
func (a Arena) Center() core.Vec2 {
	return core.Vec2{X: (a.Left + a.Right) / 2, Y: (a.Bottom + a.Top) / 2}
}

// Validate checks the arena's geometric invariants.
func (a Arena) Validate() error {
	if a.Width() <= 0 {
		return fmt.Errorf("sim: arena width must be positive, got %g", a.Width())
	}
	if a.Height() <= 0 {
		return fmt.Errorf("sim: arena height must be positive, got %g", a.Height())
	}
	if a.WallThickness <= 0 {
		return fmt.Errorf("sim: wall thickness must be positive, got %g", a.WallThickness)
	}
	return nil
}

// WallLocation identifies which side of the arena a wall sits on.
type WallLocation int

const (
	WallLeft WallLocation = iota
	WallRight
	WallBottom
	WallTop
)

// String returns a human-readable name for the wall location.
func (l WallLocation) String() string {
	switch l {
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	case WallBottom:
		return "bottom"
	case WallTop:
		return "top"
	default:
		return "unknown"
	}
}

// Position returns the wall's center point for the given arena.
func (l WallLocation) Position(a Arena) core.Vec2 {
	c := a.Center()
	switch l {
	case WallLeft:
		return core.Vec2{X: a.Left, Y: c.Y}
	case WallRight:
		return core.Vec2{X: a.Right, Y: c.Y}
	case WallBottom:
		return core.Vec2{X: c.X, Y: a.Bottom}
	default:
		return core.Vec2{X: c.X, Y: a.Top}
	}
}

// HalfExtent returns the wall's half-size for the given arena.
// Walls overhang the arena corners by half a thickness on each end so the
// boundary is gap-free.
func (l WallLocation) HalfExtent(a Arena) core.Vec2 {
	switch l {
	case WallLeft, WallRight:
		return core.Vec2{X: a.WallThickness / 2, Y: (a.Height() + a.WallThickness) / 2}
	default:
		return core.Vec2{X: (a.Width() + a.WallThickness) / 2, Y: a.WallThickness / 2}
	}
}

// Wall is one immovable boundary collider. Static for the lifetime of the
// simulation; never mutated or destroyed.
type Wall struct {
	Loc  WallLocation
	Pos  core.Vec2
	Half core.Vec2
}

// Walls derives the four boundary colliders from the arena bounds.
// The order is fixed (left, right, bottom, top) so collision resolution
// is deterministic.
func (a Arena) Walls() [4]Wall {
	var walls [4]Wall
	for i, loc := range [4]WallLocation{WallLeft, WallRight, WallBottom, WallTop} {
		walls[i] = Wall{Loc: loc, Pos: loc.Position(a), Half: loc.HalfExtent(a)}
	}
	return walls
}
