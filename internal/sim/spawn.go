package sim

import (
	"math"

	"github.com/vovakirdan/dodge-arcade/internal/core"
)

var powerupKinds = [...]Kind{KindPowerupSpeed, KindPowerupMultiplier, KindPowerupInvincible}

// SpawnNext spawns one entity from the variant's primary stream: a bubble
// (possibly a powerup) in the bubble variant, a car in a random lane in the
// lane variant.
func (w *World) SpawnNext() bool {
	if w.cfg.Variant == VariantLanes {
		kind := KindCarLeft
		if w.rng.Intn(LaneCount) == 1 {
			kind = KindCarRight
		}
		return w.SpawnEntity(kind)
	}
	return w.SpawnEntity(KindNormal)
}

// SpawnEntity places a new entity above the top edge and reports whether one
// was added. Spawning KindNormal rolls for a powerup. Obstacles are rejected
// until the score reaches the configured grace threshold. Kinds that do not
// belong to the world's variant are rejected.
func (w *World) SpawnEntity(kind Kind) bool {
	if w.over || !w.spawnable(kind) {
		return false
	}

	var e Entity
	switch {
	case kind == KindNormal || kind.IsPowerup():
		if kind == KindNormal && w.rng.Float64() < w.rules.Bubbles.PowerupChance {
			kind = powerupKinds[w.rng.Intn(len(powerupKinds))]
		}
		e = w.newBubble(kind)
	case kind == KindObstacle:
		if w.score < w.rules.Spawn.ObstacleMinScore {
			return false
		}
		e = w.newObstacle()
	case kind.IsCar():
		e = w.newCar(kind)
	default:
		return false
	}

	w.nextID++
	e.ID = w.nextID
	w.entities = append(w.entities, e)

	if kind != KindObstacle {
		w.updateSpawnRate()
	}
	return true
}

// spawnable reports whether kind belongs to the world's variant: cars in
// the lane variant, bubbles and obstacles in the bubble variant.
func (w *World) spawnable(kind Kind) bool {
	if w.cfg.Variant == VariantLanes {
		return kind.IsCar()
	}
	return kind == KindNormal || kind.IsPowerup() || kind == KindObstacle
}

// updateSpawnRate shortens the primary spawn interval as the score grows.
func (w *World) updateSpawnRate() {
	s := w.rules.Spawn
	rate := float64(s.IntervalMs - w.score*s.IntervalPerPointMs)
	w.spawnRate = math.Max(float64(s.MinIntervalMs), rate)
}

func (w *World) newBubble(kind Kind) Entity {
	b := w.rules.Bubbles
	size := float64(w.randInt(b.MinSize, b.MaxSize))
	size = math.Min(size, w.width)

	return Entity{
		Kind:   kind,
		X:      w.randX(size),
		Y:      -size,
		VY:     w.randFloat(b.MinSpeed, b.MaxSpeed),
		Width:  size,
		Height: size,
		Color:  w.bubbleColor(kind),
	}
}

func (w *World) newObstacle() Entity {
	o := w.rules.Obstacles
	width := math.Min(float64(w.randInt(o.MinWidth, o.MaxWidth)), w.width)
	height := float64(w.randInt(o.MinHeight, o.MaxHeight))

	drift := w.randFloat(o.MinDrift, o.MaxDrift)
	if w.rng.Intn(2) == 0 {
		drift = -drift
	}

	return Entity{
		Kind:   KindObstacle,
		X:      w.randX(width),
		Y:      -height,
		VX:     drift,
		VY:     w.randFloat(o.MinSpeed, o.MaxSpeed),
		Width:  width,
		Height: height,
		Color:  core.ColorHazard,
	}
}

func (w *World) newCar(kind Kind) Entity {
	c := w.rules.Cars
	lane := 0
	if kind == KindCarRight {
		lane = 1
	}
	width := w.width / LaneCount * c.WidthRatio
	height := float64(c.Height)

	return Entity{
		Kind:   kind,
		X:      w.LaneCenter(lane) - width/2,
		Y:      -height,
		VY:     w.randFloat(c.MinSpeed, c.MaxSpeed),
		Width:  width,
		Height: height,
		Color:  core.ColorHazard,
	}
}

// bubbleColor picks a palette colour for normal bubbles and a fixed one for powerups.
func (w *World) bubbleColor(kind Kind) core.Color {
	switch kind {
	case KindPowerupSpeed:
		return core.ColorPowerupSpeed
	case KindPowerupMultiplier:
		return core.ColorPowerupMultiplier
	case KindPowerupInvincible:
		return core.ColorPowerupInvincible
	default:
		return core.BubblePalette[w.rng.Intn(len(core.BubblePalette))]
	}
}

// randX returns a left edge in [0, width-size).
func (w *World) randX(size float64) float64 {
	span := w.width - size
	if span <= 0 {
		return 0
	}
	return math.Floor(w.rng.Float64() * span)
}

// randInt returns an integer in [lo, hi), or lo when the range is empty.
func (w *World) randInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + w.rng.Intn(hi-lo)
}

// randFloat returns a float in [lo, hi), or lo when the range is empty.
func (w *World) randFloat(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + w.rng.Float64()*(hi-lo)
}
