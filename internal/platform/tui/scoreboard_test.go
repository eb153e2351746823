package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ShiJbey/tilt-escape/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestScoreboardListsRuns(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun("tiltmaze", 5, 2, 90); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun("tiltmaze", 3, 0, 45); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	m := NewScoreboardModel(store, "tiltmaze", "Tilt Escape", 80, 24)
	view := m.View()

	if !strings.Contains(view, "BEST RUNS - Tilt Escape") {
		t.Error("view is missing the title")
	}
	for _, want := range []string{"#1", "#2", "1:30", "0:45"} {
		if !strings.Contains(view, want) {
			t.Errorf("view is missing %q", want)
		}
	}
}

func TestScoreboardEmptyWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "tiltmaze", "Tilt Escape", 80, 24)
	if view := m.View(); !strings.Contains(view, "No runs recorded yet") {
		t.Error("scoreboard without a store should report no recorded runs")
	}
}

func TestScoreboardBackKey(t *testing.T) {
	m := NewScoreboardModel(nil, "tiltmaze", "Tilt Escape", 80, 24)

	updated, _ := m.Update(keyMsg('b'))
	sb, ok := updated.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update() returned %T, want ScoreboardModel", updated)
	}
	if !sb.IsGoingBack() {
		t.Error("back key should mark the scoreboard as going back")
	}
	if sb.IsQuitting() {
		t.Error("back key should not mark the scoreboard as quitting")
	}
}

func TestScoreboardQuitKey(t *testing.T) {
	m := NewScoreboardModel(nil, "tiltmaze", "Tilt Escape", 80, 24)

	updated, _ := m.Update(keyMsg('q'))
	sb, ok := updated.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update() returned %T, want ScoreboardModel", updated)
	}
	if !sb.IsQuitting() {
		t.Error("quit key should mark the scoreboard as quitting")
	}
	if sb.IsGoingBack() {
		t.Error("quit key should not mark the scoreboard as going back")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "0:00"},
		{45, "0:45"},
		{90, "1:30"},
		{600, "10:00"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.secs); got != tt.want {
			t.Errorf("formatDuration(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}
