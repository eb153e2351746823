package tiltmaze

import (
	"math"
	"math/rand"

	"github.com/ShiJbey/tilt-escape/internal/core"
)

// LookDirection is one of the eight compass directions a guard can watch.
type LookDirection int

const (
	LookUp LookDirection = iota
	LookUpLeft
	LookLeft
	LookDownLeft
	LookDown
	LookDownRight
	LookRight
	LookUpRight

	numLookDirections = 8
)

// String returns a human-readable name for the look direction.
func (d LookDirection) String() string {
	switch d {
	case LookUp:
		return "Up"
	case LookUpLeft:
		return "UpLeft"
	case LookLeft:
		return "Left"
	case LookDownLeft:
		return "DownLeft"
	case LookDown:
		return "Down"
	case LookDownRight:
		return "DownRight"
	case LookRight:
		return "Right"
	case LookUpRight:
		return "UpRight"
	default:
		return "Unknown"
	}
}

// VisionOffset returns the unit-cell offset from a guard's position to
// its vision hotspot for this look direction.
func (d LookDirection) VisionOffset() core.Vec2 {
	switch d {
	case LookUp:
		return core.Vec2{X: 0, Y: 1}
	case LookUpLeft:
		return core.Vec2{X: -1, Y: 1}
	case LookLeft:
		return core.Vec2{X: -1, Y: 0}
	case LookDownLeft:
		return core.Vec2{X: -1, Y: -1}
	case LookDown:
		return core.Vec2{X: 0, Y: -1}
	case LookDownRight:
		return core.Vec2{X: 1, Y: -1}
	case LookRight:
		return core.Vec2{X: 1, Y: 0}
	case LookUpRight:
		return core.Vec2{X: 1, Y: 1}
	default:
		return core.Vec2{}
	}
}

// GuardVision describes what a guard can see: a hotspot one unit cell
// VisionDistance away in the current look direction.
type GuardVision struct {
	Radius   float64
	Distance float64
	Dir      LookDirection
}

// Guard patrols a cyclic queue of waypoints, pausing at each for a random
// interval, and randomly changes its look direction over time.
type Guard struct {
	ID     int
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
	Vision GuardVision

	// Waypoints is the rotating patrol queue; the front is the next
	// destination once the wait at the current waypoint expires.
	Waypoints []core.Vec2
	Current   core.Vec2
	Next      core.Vec2

	waitTime   float64
	waitThresh float64
	lookTime   float64
	lookThresh float64
	maxWait    float64
	maxLook    float64

	rng *rand.Rand
}

// NewGuard creates a guard at the given spawn position. The guard's RNG is
// seeded from the run seed mixed with the spawn coordinates so that two
// guards in the same level drift apart while full runs stay reproducible.
func NewGuard(id int, pos core.Vec2, radius float64, vision GuardVision, p Params) *Guard {
	seed := p.Seed ^ spawnHash(pos)
	rng := rand.New(rand.NewSource(seed))

	g := &Guard{
		ID:        id,
		Pos:       pos,
		Radius:    radius,
		Vision:    vision,
		Waypoints: []core.Vec2{pos},
		Current:   pos,
		Next:      pos,
		maxWait:   p.MaxWaitSeconds,
		maxLook:   p.MaxLookSeconds,
		rng:       rng,
	}
	g.waitThresh = g.maxWait * rng.Float64()
	g.lookThresh = g.maxLook * rng.Float64()
	return g
}

// spawnHash mixes integer spawn coordinates into a seed perturbation.
func spawnHash(pos core.Vec2) int64 {
	x := int64(pos.X)
	y := int64(pos.Y)
	return x*73856093 ^ y*19349663
}

// AddWaypoint appends a patrol waypoint to the back of the queue.
func (g *Guard) AddWaypoint(wp core.Vec2) {
	g.Waypoints = append(g.Waypoints, wp)
}

// Update advances the guard's patrol and look behavior by elapsed seconds.
//
// The patrol is a small state machine driven by rounded-position equality
// against the current and next waypoints:
//
//  1. integrate position from velocity (always);
//  2. while parked at the current waypoint, accumulate wait time and, once
//     the threshold passes, rotate the queue and depart toward the front
//     waypoint at unit speed;
//  3. in transit, re-aim velocity at the next waypoint every tick (the raw
//     difference, so guards decelerate as they close in);
//  4. on arrival, stop, clear the wait timer, and promote the destination
//     to the current waypoint.
func (g *Guard) Update(elapsed float64) {
	g.Pos = g.Pos.Add(g.Vel.Scale(elapsed))

	// Sitting still at a waypoint
	if g.AtCurrentWaypoint() {
		g.waitTime += elapsed
		if g.waitTime >= g.waitThresh {
			// Rotate the patrol queue
			g.Next = g.Waypoints[0]
			g.Waypoints = append(g.Waypoints[1:], g.Waypoints[0])

			// Start moving toward the next waypoint
			g.Vel = g.Next.Sub(g.Current).Normalize()
		}
	}

	if !g.AtCurrentWaypoint() && !g.AtNextWaypoint() {
		g.Vel = g.Next.Sub(g.Pos)
	}

	// Arriving at the next waypoint
	if g.AtNextWaypoint() && !g.AtCurrentWaypoint() {
		g.Vel = core.Vec2{}
		g.waitTime = 0
		g.Current = g.Next
	}

	// Look in different directions randomly
	g.lookTime += elapsed
	if g.lookTime >= g.lookThresh {
		g.changeLookDir()
	}
}

// AtCurrentWaypoint reports whether the guard's rounded position matches
// its current waypoint.
func (g *Guard) AtCurrentWaypoint() bool {
	return math.Round(g.Pos.X) == g.Current.X && math.Round(g.Pos.Y) == g.Current.Y
}

// AtNextWaypoint reports whether the guard's rounded position matches its
// next waypoint.
func (g *Guard) AtNextWaypoint() bool {
	return math.Round(g.Pos.X) == g.Next.X && math.Round(g.Pos.Y) == g.Next.Y
}

// changeLookDir resamples the look direction uniformly over all eight
// directions (the current one may be redrawn) and a fresh look threshold.
func (g *Guard) changeLookDir() {
	g.lookTime = 0
	g.Vision.Dir = LookDirection(g.rng.Intn(numLookDirections))
	g.lookThresh = g.maxLook * g.rng.Float64()
}
