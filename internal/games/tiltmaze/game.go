package tiltmaze

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/ShiJbey/tilt-escape/internal/config"
	"github.com/ShiJbey/tilt-escape/internal/core"
	"github.com/ShiJbey/tilt-escape/internal/registry"
)

var (
	configPath string
	levelsDir  string
	startLevel int
)

// SetConfigPath sets a custom config file path for the game.
// Must be called before the game is created.
func SetConfigPath(path string) {
	configPath = path
}

// SetLevelsDir points the game at an external level pack directory
// instead of the built-in campaign. Must be called before Reset.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetStartLevel selects the campaign level a run starts on (0-based).
// Must be called before Reset.
func SetStartLevel(index int) {
	startLevel = index
}

// Game is the Tilt Escape controller: it owns the level rotation, the
// tilt physics applied to the player, and the escape/death accounting.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.TiltConfig
	params  Params

	sources    []LevelSource
	levelIndex int
	level      *Level
	boardW     int
	boardH     int

	escapes   int
	deaths    int
	tickCount uint64
	paused    bool

	tiltLeft  bool
	tiltRight bool
	tiltUp    bool
	tiltDown  bool
}

// New creates a new Tilt Escape game. Call Reset before stepping.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tiltmaze", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "tiltmaze" }

// Title returns the display name.
func (g *Game) Title() string { return "Tilt Escape" }

// Reset starts a fresh run: reloads the tuning config, the level sources
// and the starting level, and clears all run counters.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}

	tc, err := config.LoadTilt(configPath)
	if err != nil {
		log.Warn("failed to load tiltmaze config, using defaults", "error", err)
		tc = config.DefaultTiltConfig()
	}
	g.cfg = tc

	g.params = Params{
		PlayerRadius:   tc.Player.Radius,
		GuardRadius:    tc.Guard.Radius,
		VisionRadius:   tc.Guard.VisionRadius,
		VisionDistance: tc.Guard.VisionDistance,
		MaxWaitSeconds: tc.Guard.MaxWaitSeconds,
		MaxLookSeconds: tc.Guard.MaxLookSeconds,
		Seed:           cfg.Seed,
	}

	g.sources = nil
	if levelsDir != "" {
		g.sources = NewLoader(levelsDir).LoadAll()
	}
	if len(g.sources) == 0 {
		g.sources = BuiltinLevels()
	}

	g.levelIndex = 0
	if startLevel > 0 && len(g.sources) > 0 {
		g.levelIndex = startLevel % len(g.sources)
	}

	g.escapes = 0
	g.deaths = 0
	g.tickCount = 0
	g.paused = false
	g.loadLevel()
}

// loadLevel instantiates the level at the current index.
func (g *Game) loadLevel() {
	src := g.sources[g.levelIndex]
	g.level = ParseLevel(src.Lines, g.params)
	g.boardW = g.level.Width()
	g.boardH = g.level.Height()
}

// nextLevel advances to the following campaign level, wrapping around
// after the last one.
func (g *Game) nextLevel() {
	g.levelIndex = (g.levelIndex + 1) % len(g.sources)
	g.loadLevel()
}

// reloadLevel restores the current level to its initial state.
func (g *Game) reloadLevel() {
	g.loadLevel()
}

// Step advances the simulation by one fixed tick.
//
// Per-tick order: escape and death checks on the state left by the
// previous tick, then guard patrols, then tilt physics on the player,
// then wall resolution.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.tiltLeft = in.Has(core.ActionTiltLeft)
	g.tiltRight = in.Has(core.ActionTiltRight)
	g.tiltUp = in.Has(core.ActionTiltUp)
	g.tiltDown = in.Has(core.ActionTiltDown)

	elapsed := 1.0 / float64(g.runtime.TickRate)

	if g.outOfBounds() {
		g.escapes++
		g.nextLevel()
		return core.StepResult{State: g.State()}
	}
	if g.level.CaughtByGuard() || g.level.FellInHole() {
		g.deaths++
		g.reloadLevel()
		return core.StepResult{State: g.State()}
	}

	g.level.Update(elapsed)
	g.stepPlayer(elapsed)
	g.resolveWalls()

	return core.StepResult{State: g.State()}
}

// outOfBounds reports whether the player has left the board through a
// wall gap. The bound extends one cell past the board on each far side.
func (g *Game) outOfBounds() bool {
	p := g.level.Player.Pos
	return p.X < 0 || p.X > float64(g.boardW)+1 ||
		p.Y < 0 || p.Y > float64(g.boardH)+1
}

// stepPlayer applies the current tilt to the player. Opposite keys on
// the same axis do not cancel: the later-evaluated one wins.
func (g *Game) stepPlayer(elapsed float64) {
	gravity := g.cfg.Physics.Gravity
	angle := g.cfg.Physics.TiltAngle

	var accel core.Vec2
	if g.tiltLeft {
		accel.X = TiltAcceleration(angle, gravity)
	}
	if g.tiltRight {
		accel.X = TiltAcceleration(-angle, gravity)
	}
	if g.tiltUp {
		accel.Y = TiltAcceleration(-angle, gravity)
	}
	if g.tiltDown {
		accel.Y = TiltAcceleration(angle, gravity)
	}

	pl := &g.level.Player
	disp := Displacement(elapsed, pl.Vel, accel)
	pl.Vel = pl.Vel.Add(accel.Scale(elapsed))
	pl.Pos = pl.Pos.Add(disp)
}

// resolveWalls pushes the player out of any wall it overlaps and kills
// the velocity component along the collision axis.
func (g *Game) resolveWalls() {
	pl := &g.level.Player
	for _, w := range g.level.Walls {
		col := g.level.WallCollision(w)
		if !col.Hit {
			continue
		}

		switch col.Dir {
		case DirLeft, DirRight:
			pl.Vel.X = 0
			pen := pl.Radius - math.Abs(col.Diff.X)
			if col.Dir == DirLeft {
				pl.Pos.X += pen
			} else {
				pl.Pos.X -= pen
			}
		default:
			pl.Vel.Y = 0
			pen := pl.Radius - math.Abs(col.Diff.Y)
			if col.Dir == DirUp {
				pl.Pos.Y -= pen
			} else {
				pl.Pos.Y += pen
			}
		}
	}
}

// State returns the current run state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.escapes,
		Deaths: g.deaths,
		Paused: g.paused,
	}
}

// Render draws the maze. Board y grows upward, so rows are flipped when
// mapped to screen rows.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < g.boardW+2 || dst.Height() < g.boardH+4 {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	hud := fmt.Sprintf("Tilt Escape  Level %d/%d  Escapes: %d  Deaths: %d",
		g.levelIndex+1, len(g.sources), g.escapes, g.deaths)
	dst.DrawTextColored(2, 0, hud, core.ColorBrightWhite)

	ox := (dst.Width() - g.boardW) / 2
	oy := 2 + (dst.Height()-2-g.boardH)/2

	// Static cells from the source map
	for r := 0; r < g.boardH; r++ {
		sy := oy + g.boardH - 1 - r
		for c := 0; c < g.boardW; c++ {
			switch g.level.At(r, c) {
			case charWall:
				dst.SetColored(ox+c, sy, '█', core.ColorWhite)
			case charHole:
				dst.SetColored(ox+c, sy, '○', core.ColorBlue)
			case 0:
			default:
				dst.SetColored(ox+c, sy, '·', core.ColorGray)
			}
		}
	}

	// Vision hotspots under the guards so an overlapping guard wins
	for _, gd := range g.level.Guards {
		hs := gd.Pos.Add(gd.Vision.Dir.VisionOffset())
		dst.SetColored(g.cellX(ox, hs.X), g.cellY(oy, hs.Y), '░', core.ColorRed)
	}
	for _, gd := range g.level.Guards {
		dst.SetColored(g.cellX(ox, gd.Pos.X), g.cellY(oy, gd.Pos.Y), '◆', core.ColorBrightRed)
	}

	pl := g.level.Player
	dst.SetColored(g.cellX(ox, pl.Pos.X), g.cellY(oy, pl.Pos.Y), '●', core.ColorBrightYellow)

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, "PAUSED")
	}
}

// cellX maps a board x coordinate to a screen column.
func (g *Game) cellX(ox int, x float64) int {
	return ox + int(math.Round(x))
}

// cellY maps a board y coordinate to a screen row, flipping the axis.
func (g *Game) cellY(oy int, y float64) int {
	return oy + g.boardH - 1 - int(math.Round(y))
}
