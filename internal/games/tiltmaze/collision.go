package tiltmaze

import (
	"github.com/ShiJbey/tilt-escape/internal/core"
)

// Direction classifies which face of a box a collision came through.
// Declaration order matters: ties in VectorDirection resolve to the
// earlier entry.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Collision is the result of a circle-vs-box test.
// Diff is the vector from the circle center to the closest point on the
// box; Dir is its compass classification. Both are meaningful only when
// Hit is true.
type Collision struct {
	Hit  bool
	Dir  Direction
	Diff core.Vec2
}

// compass basis, indexed by Direction.
var compass = [4]core.Vec2{
	{X: 0, Y: 1},  // Up
	{X: 1, Y: 0},  // Right
	{X: 0, Y: -1}, // Down
	{X: -1, Y: 0}, // Left
}

// VectorDirection classifies a vector against the compass basis by
// maximum dot product. Ties keep the first (earlier) direction; the
// zero vector defaults to Up.
func VectorDirection(target core.Vec2) Direction {
	if target.Len() == 0 {
		return DirUp
	}

	unit := target.Normalize()
	max := 0.0
	best := DirUp
	for i, c := range compass {
		if dot := unit.Dot(c); dot > max {
			max = dot
			best = Direction(i)
		}
	}
	return best
}

// CircleBoxCollision tests a circle against an axis-aligned box using the
// closest-point method: clamp the center-to-center difference to the box
// half-extents and compare the resulting separation against the radius.
// Touching exactly at radius distance does not count as a hit.
func CircleBoxCollision(center core.Vec2, radius float64, box core.Box) Collision {
	half := box.HalfExtents()
	boxCenter := box.Center()

	difference := center.Sub(boxCenter)
	clamped := difference.ClampVec(half.Neg(), half)
	closest := boxCenter.Add(clamped)
	difference = closest.Sub(center)

	if difference.Len() < radius {
		return Collision{Hit: true, Dir: VectorDirection(difference), Diff: difference}
	}
	return Collision{}
}

// WallCollision tests the player against a single wall.
func (l *Level) WallCollision(w Wall) Collision {
	return CircleBoxCollision(l.Player.Center(), l.Player.Radius, w.Box())
}

// CaughtByGuard reports whether the player overlaps any guard's vision
// hotspot. The hotspot is modeled as an invisible unit box one cell away
// from the guard in its look direction.
func (l *Level) CaughtByGuard() bool {
	for _, g := range l.Guards {
		hotspot := g.Pos.Add(g.Vision.Dir.VisionOffset())
		box := core.Box{Pos: hotspot, Size: core.Vec2{X: 1, Y: 1}}
		if CircleBoxCollision(l.Player.Center(), l.Player.Radius, box).Hit {
			return true
		}
	}
	return false
}

// FellInHole reports whether the player's center is strictly inside any
// hole cell. Grazing a hole's edge is survivable.
func (l *Level) FellInHole() bool {
	center := l.Player.Pos.Add(core.Vec2{X: 0.5, Y: 0.5})
	for _, h := range l.Holes {
		inX := center.X > h.X && center.X < h.X+1
		inY := center.Y > h.Y && center.Y < h.Y+1
		if inX && inY {
			return true
		}
	}
	return false
}
