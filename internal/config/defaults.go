package config

import (
	_ "embed"
)

//go:embed defaults/tiltmaze.yaml
var defaultTiltYAML []byte

// DefaultTiltConfig returns the default tilt maze configuration.
func DefaultTiltConfig() TiltConfig {
	return TiltConfig{
		Physics: TiltPhysics{
			Gravity:   -9.8,
			TiltAngle: 45.0,
		},
		Player: TiltPlayer{
			Radius: 0.5,
		},
		Guard: TiltGuard{
			Radius:         0.5,
			VisionRadius:   0.5,
			VisionDistance: 1.0,
			MaxWaitSeconds: 2.0,
			MaxLookSeconds: 2.0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultTiltYAML
}
