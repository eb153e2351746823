package tiltmaze

import (
	"math"
	"testing"

	"github.com/ShiJbey/tilt-escape/internal/core"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTiltAcceleration(t *testing.T) {
	// Rolling sphere on a 30 degree incline: (2/3) * g * sin(pi/6)
	got := TiltAcceleration(math.Pi/6, -9.8)
	want := (2.0 / 3.0) * -9.8 * 0.5
	if !almostEqual(got, want) {
		t.Errorf("TiltAcceleration(pi/6, -9.8) = %v, want %v", got, want)
	}

	// Flat board produces no acceleration
	if got := TiltAcceleration(0, -9.8); got != 0 {
		t.Errorf("TiltAcceleration(0, -9.8) = %v, want 0", got)
	}

	// Tilting the other way flips the sign
	a := TiltAcceleration(1.2, -9.8)
	b := TiltAcceleration(-1.2, -9.8)
	if !almostEqual(a, -b) {
		t.Errorf("opposite tilts not symmetric: %v vs %v", a, b)
	}
}

func TestDisplacement(t *testing.T) {
	vel := core.Vec2{X: 2, Y: 0}
	acc := core.Vec2{X: 0, Y: -4}

	got := Displacement(0.5, vel, acc)
	want := core.Vec2{X: 1, Y: -0.5}
	if !almostEqual(got.X, want.X) || !almostEqual(got.Y, want.Y) {
		t.Errorf("Displacement = %v, want %v", got, want)
	}

	// Zero dt moves nothing
	got = Displacement(0, vel, acc)
	if got.X != 0 || got.Y != 0 {
		t.Errorf("Displacement with dt=0 = %v, want zero", got)
	}
}
