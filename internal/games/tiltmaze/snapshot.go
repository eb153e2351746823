package tiltmaze

import (
	"math"
)

// Snapshot captures the observable simulation state for determinism
// checks. Two runs with the same seed and input sequence must produce
// identical snapshots tick for tick.
type Snapshot struct {
	Tick       uint64
	LevelIndex int
	Escapes    int
	Deaths     int

	PlayerPosX uint64
	PlayerPosY uint64
	PlayerVelX uint64
	PlayerVelY uint64

	GuardCount int
	// GuardData packs per-guard state: position, velocity, look
	// direction and the next waypoint, as raw float bits.
	GuardData []uint64
}

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() Snapshot {
	pl := g.level.Player
	s := Snapshot{
		Tick:       g.tickCount,
		LevelIndex: g.levelIndex,
		Escapes:    g.escapes,
		Deaths:     g.deaths,
		PlayerPosX: math.Float64bits(pl.Pos.X),
		PlayerPosY: math.Float64bits(pl.Pos.Y),
		PlayerVelX: math.Float64bits(pl.Vel.X),
		PlayerVelY: math.Float64bits(pl.Vel.Y),
		GuardCount: len(g.level.Guards),
	}

	for _, gd := range g.level.Guards {
		s.GuardData = append(s.GuardData,
			math.Float64bits(gd.Pos.X),
			math.Float64bits(gd.Pos.Y),
			math.Float64bits(gd.Vel.X),
			math.Float64bits(gd.Vel.Y),
			uint64(gd.Vision.Dir),
			math.Float64bits(gd.Next.X),
			math.Float64bits(gd.Next.Y),
		)
	}
	return s
}

// Hash folds the snapshot into a single value for quick comparison.
func (s Snapshot) Hash() uint64 {
	h := uint64(17)
	mix := func(v uint64) {
		h = h*31 + v
	}

	mix(s.Tick)
	mix(uint64(s.LevelIndex))
	mix(uint64(s.Escapes))
	mix(uint64(s.Deaths))
	mix(s.PlayerPosX)
	mix(s.PlayerPosY)
	mix(s.PlayerVelX)
	mix(s.PlayerVelY)
	mix(uint64(s.GuardCount))
	for _, v := range s.GuardData {
		mix(v)
	}
	return h
}
