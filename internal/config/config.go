// Package config provides YAML-based gameplay configuration loading
// for the platform.
package config

// TiltConfig contains all gameplay tuning for the tilt maze.
type TiltConfig struct {
	Physics TiltPhysics `yaml:"physics"`
	Player  TiltPlayer  `yaml:"player"`
	Guard   TiltGuard   `yaml:"guard"`
}

// TiltPhysics defines the board tilt physics parameters.
type TiltPhysics struct {
	// Gravity is the gravitational constant used by the incline model.
	Gravity float64 `yaml:"gravity"`
	// TiltAngle is the fixed incline applied while a tilt control is held.
	// Passed to sin() as-is.
	TiltAngle float64 `yaml:"tilt_angle"`
}

// TiltPlayer defines player parameters.
type TiltPlayer struct {
	Radius float64 `yaml:"radius"`
}

// TiltGuard defines guard patrol and vision parameters.
type TiltGuard struct {
	Radius         float64 `yaml:"radius"`
	VisionRadius   float64 `yaml:"vision_radius"`
	VisionDistance float64 `yaml:"vision_distance"`
	// MaxWaitSeconds bounds the random pause at each waypoint.
	MaxWaitSeconds float64 `yaml:"max_wait_seconds"`
	// MaxLookSeconds bounds the random interval between look-direction changes.
	MaxLookSeconds float64 `yaml:"max_look_seconds"`
}
