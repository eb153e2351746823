package tiltmaze

import (
	"github.com/ShiJbey/tilt-escape/internal/core"
)

// Map characters recognized by the parser. Any other character is floor.
const (
	charWall   = '#'
	charPlayer = 'P'
	charHole   = 'H'
)

// Params carries the tuning used when instantiating level entities.
type Params struct {
	PlayerRadius   float64
	GuardRadius    float64
	VisionRadius   float64
	VisionDistance float64
	MaxWaitSeconds float64
	MaxLookSeconds float64
	Seed           int64
}

// DefaultParams returns entity tuning matching the default config.
func DefaultParams() Params {
	return Params{
		PlayerRadius:   0.5,
		GuardRadius:    0.5,
		VisionRadius:   0.5,
		VisionDistance: 1.0,
		MaxWaitSeconds: 2.0,
		MaxLookSeconds: 2.0,
	}
}

// Level is a fully instantiated maze: the raw character matrix plus the
// entities spawned from it.
type Level struct {
	// Matrix stores every character of the source map, row-major.
	// Row index is the board y coordinate, column index is x.
	Matrix [][]byte

	Walls  []Wall
	Holes  []core.Vec2
	Guards []*Guard
	Player Player
}

// ParseLevel builds a level from the lines of a map file.
//
// Recognized characters:
//
//	'#'  unit wall block
//	'P'  player spawn (the last occurrence wins)
//	'H'  hole cell
//	0-9  guard waypoint; the first occurrence of a digit spawns that
//	     guard, later occurrences append waypoints in file order
//
// Every character, recognized or not, is recorded in the matrix so floor
// queries can consult the original map.
func ParseLevel(lines []string, p Params) *Level {
	wallSize := core.Vec2{X: 1, Y: 1}

	l := &Level{}
	for _, line := range lines {
		y := float64(len(l.Matrix))
		row := make([]byte, 0, len(line))
		for i := 0; i < len(line); i++ {
			ch := line[i]
			pos := core.Vec2{X: float64(i), Y: y}

			switch {
			case ch == charWall:
				l.Walls = append(l.Walls, Wall{Pos: pos, Size: wallSize})
			case ch == charPlayer:
				l.Player = Player{Pos: pos, Radius: p.PlayerRadius}
			case ch == charHole:
				l.Holes = append(l.Holes, pos)
			case ch >= '0' && ch <= '9':
				id := int(ch - '0')
				if g := l.guardByID(id); g != nil {
					g.AddWaypoint(pos)
				} else {
					vision := GuardVision{
						Radius:   p.VisionRadius,
						Distance: p.VisionDistance,
						Dir:      LookDownRight,
					}
					l.Guards = append(l.Guards, NewGuard(id, pos, p.GuardRadius, vision, p))
				}
			}

			row = append(row, ch)
		}
		l.Matrix = append(l.Matrix, row)
	}

	return l
}

// guardByID returns the guard with the given digit ID, or nil.
func (l *Level) guardByID(id int) *Guard {
	for _, g := range l.Guards {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// Width returns the number of columns in the first map row.
func (l *Level) Width() int {
	if len(l.Matrix) > 0 {
		return len(l.Matrix[0])
	}
	return 0
}

// Height returns the number of map rows.
func (l *Level) Height() int {
	return len(l.Matrix)
}

// At returns the map character at (row, col), or 0 when out of range.
// Columns are range-checked against the first row's width, and against
// the actual row so ragged maps cannot index past a short row.
func (l *Level) At(row, col int) byte {
	if row < 0 || col < 0 {
		return 0
	}
	if row >= len(l.Matrix) || col >= l.Width() {
		return 0
	}
	if col >= len(l.Matrix[row]) {
		return 0
	}
	return l.Matrix[row][col]
}

// Update advances all guards by elapsed seconds.
func (l *Level) Update(elapsed float64) {
	for _, g := range l.Guards {
		g.Update(elapsed)
	}
}
