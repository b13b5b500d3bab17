package sim

import "math"

// Tick advances the world by dt milliseconds. Movement always resolves
// before collisions. It does nothing once the world is over or when dt is
// not a positive finite duration.
func (w *World) Tick(dt float64) {
	if w.over || !(dt > 0) || math.IsInf(dt, 1) {
		return
	}
	w.now += dt
	w.ticks++

	w.expirePowerups()
	w.moveEntities(dt)
	w.removeExited()
	hit := w.resolveCollisions()
	w.compact()

	if hit {
		w.End()
	}
}

// moveEntities advances every entity by its velocity scaled for dt and difficulty.
func (w *World) moveEntities(dt float64) {
	base := w.rules.World.BaseTickMs
	if base <= 0 {
		base = dt
	}
	scale := dt / base * w.speed.SpeedScale(w.score, w.now)

	for i := range w.entities {
		e := &w.entities[i]
		e.Y += e.VY * scale
		if e.VX != 0 {
			w.drift(e, e.VX*scale)
		}
	}
}

// drift moves an entity sideways and reflects it off the world edges.
func (w *World) drift(e *Entity, dx float64) {
	maxX := math.Max(0, w.width-e.Width)
	e.X += dx
	switch {
	case e.X <= 0:
		e.X = 0
		e.VX = math.Abs(e.VX)
	case e.X >= maxX:
		e.X = maxX
		e.VX = -math.Abs(e.VX)
	}
}

// removeExited marks entities whose top passed the bottom edge. Cars score on exit.
func (w *World) removeExited() {
	for i := range w.entities {
		e := &w.entities[i]
		if e.removed || e.Y <= w.height {
			continue
		}
		e.removed = true
		if e.Kind.IsCar() {
			w.score++
			cx, cy := e.Box().Center()
			w.emit(Event{Type: EventCarPassed, Kind: e.Kind, Points: 1, X: cx, Y: cy, Color: e.Color})
		}
	}
}

// resolveCollisions dispatches every entity touching the player.
// It reports whether an unshielded hazard was hit.
func (w *World) resolveCollisions() bool {
	hit := false

	for i := range w.entities {
		e := &w.entities[i]
		if e.removed || !w.Collides(*e) {
			continue
		}
		cx, cy := e.Box().Center()

		switch {
		case e.Kind == KindNormal:
			e.removed = true
			points := w.collectPoints()
			w.score += points
			w.emit(Event{Type: EventCollect, Kind: e.Kind, Points: points, X: cx, Y: cy, Color: e.Color})
		case e.Kind.IsPowerup():
			e.removed = true
			p, _ := e.Kind.Powerup()
			w.activatePowerup(p)
			w.emit(Event{Type: EventPowerupCollected, Kind: e.Kind, Powerup: p, X: cx, Y: cy, Color: e.Color})
		case e.Kind.IsHazard():
			if !w.powerups[PowerupInvincible].Active {
				hit = true
			}
		}
	}
	return hit
}

// collectPoints returns the score for one collectible.
func (w *World) collectPoints() int {
	if w.powerups[PowerupMultiplier].Active {
		return max(1, w.rules.Powerups.MultiplierValue)
	}
	return 1
}

// compact drops removed entities in place, keeping order.
func (w *World) compact() {
	n := 0
	for _, e := range w.entities {
		if !e.removed {
			w.entities[n] = e
			n++
		}
	}
	clear(w.entities[n:])
	w.entities = w.entities[:n]
}

// Collides reports whether the player currently overlaps the entity.
func (w *World) Collides(e Entity) bool {
	return w.PlayerBox().Overlaps(e.Box())
}
