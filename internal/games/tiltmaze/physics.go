package tiltmaze

import (
	"math"

	"github.com/ShiJbey/tilt-escape/internal/core"
)

// TiltAcceleration returns the acceleration of a ball rolling on a board
// inclined at the given angle: (2/3) * g * sin(angle). The 2/3 factor is
// the rolling (not sliding) solid-sphere model.
func TiltAcceleration(inclineAngle, gravity float64) float64 {
	return (2.0 / 3.0) * gravity * math.Sin(inclineAngle)
}

// Displacement returns the distance covered over dt seconds under constant
// acceleration: v*dt + (1/2)*a*dt^2.
func Displacement(dt float64, velocity, acceleration core.Vec2) core.Vec2 {
	return velocity.Scale(dt).Add(acceleration.Scale(0.5 * dt * dt))
}
