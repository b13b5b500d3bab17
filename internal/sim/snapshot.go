package sim

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot captures the observable world state for rendering and determinism testing.
type Snapshot struct {
	Variant      Variant
	Tick         uint64
	Now          float64
	Width        float64
	Height       float64
	Score        int
	PreviousHigh int
	Over         bool
	SpawnRate    float64
	SpeedScale   float64
	Player       Player
	Entities     []Entity
	Powerups     [PowerupCount]PowerupState
}

// Snapshot returns a copy of the current state.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Variant:      w.cfg.Variant,
		Tick:         w.ticks,
		Now:          w.now,
		Width:        w.width,
		Height:       w.height,
		Score:        w.score,
		PreviousHigh: w.cfg.HighScore,
		Over:         w.over,
		SpawnRate:    w.spawnRate,
		SpeedScale:   w.SpeedScale(),
		Player:       w.player,
		Entities:     w.Entities(),
		Powerups:     w.powerups,
	}
}

// Hash returns an FNV-1a digest of the snapshot. Equal states hash equally.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	putU := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	putF := func(v float64) { putU(math.Float64bits(v)) }
	putB := func(v bool) {
		if v {
			putU(1)
		} else {
			putU(0)
		}
	}

	putU(uint64(s.Variant))
	putU(s.Tick)
	putF(s.Now)
	putF(s.Width)
	putF(s.Height)
	putU(uint64(s.Score))
	putU(uint64(s.PreviousHigh))
	putB(s.Over)
	putF(s.SpawnRate)
	putF(s.Player.X)
	putF(s.Player.Offset)
	putU(uint64(s.Player.Lane))

	putU(uint64(len(s.Entities)))
	for _, e := range s.Entities {
		putU(e.ID)
		putU(uint64(e.Kind))
		putF(e.X)
		putF(e.Y)
		putF(e.VX)
		putF(e.VY)
		putF(e.Width)
		putF(e.Height)
		putU(uint64(e.Color))
	}
	for _, p := range s.Powerups {
		putB(p.Active)
		putF(p.ExpiresAt)
	}
	return h.Sum64()
}
