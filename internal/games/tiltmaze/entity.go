// Package tiltmaze implements the Tilt Escape maze game: the player rolls
// a ball through guarded mazes by tilting the board, escaping each level
// through a gap in its outer wall.
package tiltmaze

import (
	"github.com/ShiJbey/tilt-escape/internal/core"
)

// Player is the ball the player steers by tilting the board.
// Pos is the min corner of the ball's bounding square; the circle
// center sits at Pos + Radius on both axes.
type Player struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
}

// Center returns the circle center of the player.
func (p Player) Center() core.Vec2 {
	return p.Pos.Add(core.Vec2{X: p.Radius, Y: p.Radius})
}

// Wall is a solid axis-aligned block. Pos is the min corner.
type Wall struct {
	Pos  core.Vec2
	Size core.Vec2
}

// Box returns the wall as a collision box.
func (w Wall) Box() core.Box {
	return core.Box{Pos: w.Pos, Size: w.Size}
}
