package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3, 2) = %q, want 'X'", got)
	}

	// Out-of-bounds writes are ignored, reads return space.
	s.Set(-1, 0, 'Y')
	s.Set(10, 0, 'Y')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get(-1, 0) = %q, want space", got)
	}
	if got := s.Get(10, 0); got != ' ' {
		t.Errorf("Get(10, 0) = %q, want space", got)
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(4, 4)

	s.SetColored(1, 1, '●', ColorBrightYellow)
	cell := s.GetCell(1, 1)
	if cell.Rune != '●' || cell.Color != ColorBrightYellow {
		t.Errorf("GetCell(1, 1) = %+v, want {● BrightYellow}", cell)
	}

	// Plain Set resets the color to default.
	s.Set(1, 1, '#')
	cell = s.GetCell(1, 1)
	if cell.Color != ColorDefault {
		t.Errorf("Set should clear color, got %v", cell.Color)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 3)
	s.SetColored(0, 0, '#', ColorRed)
	s.Clear()

	cell := s.GetCell(0, 0)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear should reset cells, got %+v", cell)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(2, 2, 'X')

	s.Resize(8, 8)
	if got := s.Get(2, 2); got != 'X' {
		t.Errorf("Resize should preserve content, got %q", got)
	}

	s.Resize(2, 2)
	if got := s.Get(2, 2); got != ' ' {
		t.Errorf("Shrunk screen should drop content, got %q", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawText(7, 0, "hello") // Clips at the right edge

	if got := s.Row(0); got != "       hel" {
		t.Errorf("Row(0) = %q, want %q", got, "       hel")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if n := strings.Count(s.String(), "\n"); n != 1 {
		t.Errorf("String() should have 1 newline, got %d", n)
	}
}
