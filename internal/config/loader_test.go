package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTiltConfig(t *testing.T) {
	cfg := DefaultTiltConfig()

	if cfg.Physics.Gravity != -9.8 {
		t.Errorf("default gravity = %v, want -9.8", cfg.Physics.Gravity)
	}
	if cfg.Physics.TiltAngle != 45.0 {
		t.Errorf("default tilt angle = %v, want 45.0", cfg.Physics.TiltAngle)
	}
	if cfg.Player.Radius != 0.5 {
		t.Errorf("default player radius = %v, want 0.5", cfg.Player.Radius)
	}
	if cfg.Guard.VisionDistance != 1.0 {
		t.Errorf("default vision distance = %v, want 1.0", cfg.Guard.VisionDistance)
	}
}

func TestLoadTiltEmbeddedMatchesDefaults(t *testing.T) {
	// With no custom path and no user/local configs present in the test
	// environment, the embedded YAML is the effective source.
	cfg, err := LoadTilt("")
	if err != nil {
		t.Fatalf("LoadTilt() failed: %v", err)
	}

	want := DefaultTiltConfig()
	if cfg != want {
		t.Errorf("embedded config = %+v, want %+v", cfg, want)
	}
}

func TestLoadTiltCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	data := []byte("physics:\n  gravity: -5.0\n  tilt_angle: 30.0\nplayer:\n  radius: 0.25\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}

	cfg, err := LoadTilt(path)
	if err != nil {
		t.Fatalf("LoadTilt(%s) failed: %v", path, err)
	}

	if cfg.Physics.Gravity != -5.0 {
		t.Errorf("custom gravity = %v, want -5.0", cfg.Physics.Gravity)
	}
	if cfg.Player.Radius != 0.25 {
		t.Errorf("custom player radius = %v, want 0.25", cfg.Player.Radius)
	}
}

func TestLoadTiltMissingCustomPath(t *testing.T) {
	_, err := LoadTilt(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("LoadTilt with missing custom path should return an error")
	}
}
