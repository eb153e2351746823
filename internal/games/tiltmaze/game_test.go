package tiltmaze

import (
	"strings"
	"testing"

	"github.com/ShiJbey/tilt-escape/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(testRuntime(seed))
	if g.level == nil {
		t.Fatal("Reset did not load a level")
	}
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestResetLoadsCampaign(t *testing.T) {
	g := newTestGame(t, 1)

	if g.levelIndex != 0 {
		t.Errorf("levelIndex = %d, want 0", g.levelIndex)
	}
	if len(g.sources) != LevelCount() {
		t.Errorf("sources = %d, want %d", len(g.sources), LevelCount())
	}
	if g.boardW == 0 || g.boardH == 0 {
		t.Errorf("board = %dx%d, want non-empty", g.boardW, g.boardH)
	}

	st := g.State()
	if st.Score != 0 || st.Deaths != 0 || st.Paused {
		t.Errorf("fresh state = %+v, want zeroed", st)
	}
}

func TestStartLevelSelection(t *testing.T) {
	SetStartLevel(2)
	defer SetStartLevel(0)

	g := newTestGame(t, 1)
	if g.levelIndex != 2 {
		t.Errorf("levelIndex = %d, want 2", g.levelIndex)
	}
}

func TestStartLevelWrapsPastCampaign(t *testing.T) {
	SetStartLevel(LevelCount() + 1)
	defer SetStartLevel(0)

	g := newTestGame(t, 1)
	if g.levelIndex != 1 {
		t.Errorf("levelIndex = %d, want 1", g.levelIndex)
	}
}

func TestEscapeAdvancesLevel(t *testing.T) {
	g := newTestGame(t, 1)

	g.level.Player.Pos = core.Vec2{X: -0.5, Y: 2}
	res := g.Step(frame())

	if res.State.Score != 1 {
		t.Errorf("escapes = %d, want 1", res.State.Score)
	}
	if g.levelIndex != 1 {
		t.Errorf("levelIndex = %d, want 1", g.levelIndex)
	}
}

func TestEscapeWrapsAroundCampaign(t *testing.T) {
	g := newTestGame(t, 1)

	g.levelIndex = len(g.sources) - 1
	g.loadLevel()
	g.level.Player.Pos = core.Vec2{X: 2, Y: float64(g.boardH) + 2}
	g.Step(frame())

	if g.levelIndex != 0 {
		t.Errorf("levelIndex = %d, want wrap to 0", g.levelIndex)
	}
	if g.escapes != 1 {
		t.Errorf("escapes = %d, want 1", g.escapes)
	}
}

func TestFallingInHoleReloadsLevel(t *testing.T) {
	g := newTestGame(t, 1)
	if len(g.level.Holes) == 0 {
		t.Fatal("first campaign level has no holes")
	}
	spawn := g.level.Player.Pos

	g.level.Player.Pos = g.level.Holes[0]
	res := g.Step(frame())

	if res.State.Deaths != 1 {
		t.Errorf("deaths = %d, want 1", res.State.Deaths)
	}
	if g.levelIndex != 0 {
		t.Errorf("levelIndex = %d, want unchanged 0", g.levelIndex)
	}
	if g.level.Player.Pos != spawn {
		t.Errorf("player at %v after reload, want spawn %v", g.level.Player.Pos, spawn)
	}
}

func TestCaughtByGuardReloadsLevel(t *testing.T) {
	g := newTestGame(t, 1)
	if len(g.level.Guards) == 0 {
		t.Fatal("first campaign level has no guards")
	}
	spawn := g.level.Player.Pos

	gd := g.level.Guards[0]
	g.level.Player.Pos = gd.Pos.Add(gd.Vision.Dir.VisionOffset())
	res := g.Step(frame())

	if res.State.Deaths != 1 {
		t.Errorf("deaths = %d, want 1", res.State.Deaths)
	}
	if g.level.Player.Pos != spawn {
		t.Errorf("player at %v after reload, want spawn %v", g.level.Player.Pos, spawn)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, 1)

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}

	pos := g.level.Player.Pos
	tick := g.tickCount
	g.Step(frame(core.ActionTiltRight))

	if g.level.Player.Pos != pos {
		t.Error("player moved while paused")
	}
	if g.tickCount != tick {
		t.Error("tick advanced while paused")
	}

	res = g.Step(frame(core.ActionPause))
	if res.State.Paused {
		t.Error("expected unpaused state after second toggle")
	}
}

func TestRestartClearsRun(t *testing.T) {
	g := newTestGame(t, 1)

	// Rack up a death and some movement
	g.level.Player.Pos = g.level.Holes[0]
	g.Step(frame())
	for i := 0; i < 10; i++ {
		g.Step(frame(core.ActionTiltRight))
	}

	res := g.Step(frame(core.ActionRestart))
	if res.State.Deaths != 0 || res.State.Score != 0 {
		t.Errorf("state after restart = %+v, want zeroed", res.State)
	}
	if g.tickCount != 0 {
		t.Errorf("tickCount = %d after restart, want 0", g.tickCount)
	}
	if g.levelIndex != 0 {
		t.Errorf("levelIndex = %d after restart, want 0", g.levelIndex)
	}
}

func TestTiltMovesPlayer(t *testing.T) {
	g := newTestGame(t, 1)
	start := g.level.Player.Pos

	for i := 0; i < 30; i++ {
		g.Step(frame(core.ActionTiltRight))
	}

	if g.level.Player.Pos.X <= start.X {
		t.Errorf("player x = %v after tilting right, want > %v", g.level.Player.Pos.X, start.X)
	}
	if g.level.Player.Vel.X <= 0 {
		t.Errorf("player vx = %v, want > 0", g.level.Player.Vel.X)
	}
}

func TestOppositeTiltKeysLaterWins(t *testing.T) {
	g := newTestGame(t, 1)

	g.Step(frame(core.ActionTiltLeft, core.ActionTiltRight))
	if g.level.Player.Vel.X <= 0 {
		t.Errorf("player vx = %v with both keys held, want right to win", g.level.Player.Vel.X)
	}
}

func TestWallStopsPlayer(t *testing.T) {
	g := newTestGame(t, 1)
	start := g.level.Player.Pos

	for i := 0; i < 300; i++ {
		g.Step(frame(core.ActionTiltLeft))
	}

	pl := g.level.Player
	if pl.Vel.X != 0 {
		t.Errorf("player vx = %v against wall, want 0", pl.Vel.X)
	}
	if pl.Pos.X >= start.X {
		t.Errorf("player x = %v, expected movement left of %v", pl.Pos.X, start.X)
	}
	if pl.Pos.X < 0.5 {
		t.Errorf("player x = %v, pushed through the boundary wall", pl.Pos.X)
	}
}

func TestDeterministicRuns(t *testing.T) {
	script := func() []core.InputFrame {
		var frames []core.InputFrame
		for i := 0; i < 120; i++ {
			frames = append(frames, frame(core.ActionTiltRight))
		}
		for i := 0; i < 60; i++ {
			frames = append(frames, frame(core.ActionTiltUp))
		}
		for i := 0; i < 60; i++ {
			frames = append(frames, frame())
		}
		return frames
	}

	a := newTestGame(t, 42)
	b := newTestGame(t, 42)

	framesA := script()
	framesB := script()
	for i := range framesA {
		a.Step(framesA[i])
		b.Step(framesB[i])
		if a.Snapshot().Hash() != b.Snapshot().Hash() {
			t.Fatalf("tick %d: snapshots diverged for identical seed and input", i)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := newTestGame(t, 1)
	b := newTestGame(t, 2)

	diverged := false
	for i := 0; i < 600; i++ {
		a.Step(frame())
		b.Step(frame())
		if a.Snapshot().Hash() != b.Snapshot().Hash() {
			diverged = true
			break
		}
	}
	if !diverged {
		t.Error("runs with different seeds never diverged")
	}
}

func TestRenderDrawsBoard(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Level 1/5") {
		t.Errorf("HUD row = %q, want level indicator", screen.Row(0))
	}

	out := screen.String()
	for _, glyph := range []string{"█", "●", "◆", "○", "·"} {
		if !strings.Contains(out, glyph) {
			t.Errorf("rendered screen missing %q", glyph)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(40, 6)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Terminal too small") {
		t.Error("expected too-small notice on a short screen")
	}
}

func TestRenderPausedOverlay(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(frame(core.ActionPause))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("expected PAUSED overlay while paused")
	}
}
