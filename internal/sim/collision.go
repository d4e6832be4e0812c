package sim

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Contact classifies which side of a collider the ball entered through.
type Contact int

const (
	ContactNone Contact = iota
	ContactLeft
	ContactRight
	ContactTop
	ContactBottom

	// ContactInside means the ball's center lies within the collider, so no
	// entry side can be determined. No reflection is performed; this is a
	// fallback not expected in ordinary play.
	ContactInside
)

// String returns a human-readable name for the contact side.
func (c Contact) String() string {
	switch c {
	case ContactNone:
		return "none"
	case ContactLeft:
		return "left"
	case ContactRight:
		return "right"
	case ContactTop:
		return "top"
	case ContactBottom:
		return "bottom"
	case ContactInside:
		return "inside"
	default:
		return "unknown"
	}
}

// Collide tests two AABBs given as center plus half-extents, where a is the
// ball's box and b the collider. It returns ContactNone when the boxes do
// not overlap. On overlap the contact side is chosen by the axis of minimum
// penetration; equal depths favor the vertical axis. Boxes that merely touch
// do not collide.
func Collide(aPos, aHalf, bPos, bHalf core.Vec2) Contact {
	d := aPos.Sub(bPos)

	penX := aHalf.X + bHalf.X - math.Abs(d.X)
	penY := aHalf.Y + bHalf.Y - math.Abs(d.Y)
	if penX <= 0 || penY <= 0 {
		return ContactNone
	}

	if math.Abs(d.X) < bHalf.X && math.Abs(d.Y) < bHalf.Y {
		return ContactInside
	}

	if penX < penY {
		if d.X < 0 {
			return ContactLeft
		}
		return ContactRight
	}
	if d.Y > 0 {
		return ContactTop
	}
	return ContactBottom
}

// Reflect applies the bounce rule for a contact to the given velocity.
// A component is negated only when the ball is still moving into the
// surface, so a ball already moving away is not double-reflected:
//
//	Left   negates vx only if vx > 0
//	Right  negates vx only if vx < 0
//	Top    negates vy only if vy < 0
//	Bottom negates vy only if vy > 0
//
// Inside contacts leave the velocity unchanged.
func Reflect(vel core.Vec2, c Contact) core.Vec2 {
	switch c {
	case ContactLeft:
		if vel.X > 0 {
			vel.X = -vel.X
		}
	case ContactRight:
		if vel.X < 0 {
			vel.X = -vel.X
		}
	case ContactTop:
		if vel.Y < 0 {
			vel.Y = -vel.Y
		}
	case ContactBottom:
		if vel.Y > 0 {
			vel.Y = -vel.Y
		}
	}
	return vel
}
