package tiltmaze

import (
	"testing"

	"github.com/ShiJbey/tilt-escape/internal/core"
)

func TestParseLevelEntities(t *testing.T) {
	lines := []string{
		"#####",
		"#P.H#",
		"#1.1#",
		"#####",
	}
	l := ParseLevel(lines, DefaultParams())

	if l.Width() != 5 || l.Height() != 4 {
		t.Fatalf("size = %dx%d, want 5x4", l.Width(), l.Height())
	}
	if len(l.Walls) != 14 {
		t.Errorf("walls = %d, want 14", len(l.Walls))
	}
	if want := (core.Vec2{X: 1, Y: 1}); l.Player.Pos != want {
		t.Errorf("player at %v, want %v", l.Player.Pos, want)
	}
	if len(l.Holes) != 1 || l.Holes[0] != (core.Vec2{X: 3, Y: 1}) {
		t.Errorf("holes = %v, want one at {3 1}", l.Holes)
	}
	if len(l.Guards) != 1 {
		t.Fatalf("guards = %d, want 1", len(l.Guards))
	}

	g := l.Guards[0]
	if g.ID != 1 {
		t.Errorf("guard ID = %d, want 1", g.ID)
	}
	if g.Pos != (core.Vec2{X: 1, Y: 2}) {
		t.Errorf("guard spawn = %v, want {1 2}", g.Pos)
	}
	wantWPs := []core.Vec2{{X: 1, Y: 2}, {X: 3, Y: 2}}
	if len(g.Waypoints) != len(wantWPs) {
		t.Fatalf("waypoints = %v, want %v", g.Waypoints, wantWPs)
	}
	for i, wp := range wantWPs {
		if g.Waypoints[i] != wp {
			t.Errorf("waypoint[%d] = %v, want %v", i, g.Waypoints[i], wp)
		}
	}
}

func TestParseLevelLastPlayerWins(t *testing.T) {
	lines := []string{
		"P....",
		"....P",
	}
	l := ParseLevel(lines, DefaultParams())

	if want := (core.Vec2{X: 4, Y: 1}); l.Player.Pos != want {
		t.Errorf("player at %v, want %v", l.Player.Pos, want)
	}
}

func TestParseLevelSeparateGuards(t *testing.T) {
	lines := []string{
		"1...2",
		"1...2",
	}
	l := ParseLevel(lines, DefaultParams())

	if len(l.Guards) != 2 {
		t.Fatalf("guards = %d, want 2", len(l.Guards))
	}
	for _, g := range l.Guards {
		if len(g.Waypoints) != 2 {
			t.Errorf("guard %d waypoints = %d, want 2", g.ID, len(g.Waypoints))
		}
	}
}

func TestParseLevelStoresAllCharacters(t *testing.T) {
	lines := []string{"#P?x#"}
	l := ParseLevel(lines, DefaultParams())

	for col, want := range []byte("#P?x#") {
		if got := l.At(0, col); got != want {
			t.Errorf("At(0,%d) = %q, want %q", col, got, want)
		}
	}
}

func TestLevelAt(t *testing.T) {
	l := ParseLevel([]string{"###", "#"}, DefaultParams())

	tests := []struct {
		name     string
		row, col int
		want     byte
	}{
		{"in range", 0, 1, '#'},
		{"negative row", -1, 0, 0},
		{"negative col", 0, -1, 0},
		{"row past end", 2, 0, 0},
		{"col past width", 0, 3, 0},
		{"short row guard", 1, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.At(tt.row, tt.col); got != tt.want {
				t.Errorf("At(%d,%d) = %d, want %d", tt.row, tt.col, got, tt.want)
			}
		})
	}
}

func TestEmptyLevel(t *testing.T) {
	l := ParseLevel(nil, DefaultParams())
	if l.Width() != 0 || l.Height() != 0 {
		t.Errorf("empty level size = %dx%d, want 0x0", l.Width(), l.Height())
	}
	if l.At(0, 0) != 0 {
		t.Error("At on empty level should return 0")
	}
}
