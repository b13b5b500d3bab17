package sim

// Powerup is a timed modifier activated by collecting a powerup bubble.
type Powerup int

const (
	PowerupSpeed      Powerup = iota // Larger movement step
	PowerupMultiplier                // Collectibles score more
	PowerupInvincible                // Hazards are ignored
	PowerupCount                     // Sentinel for counting powerups
)

// String returns the name of the powerup.
func (p Powerup) String() string {
	switch p {
	case PowerupSpeed:
		return "speed"
	case PowerupMultiplier:
		return "multiplier"
	case PowerupInvincible:
		return "invincible"
	default:
		return "?"
	}
}

// PowerupState is the timer of one powerup kind.
// ExpiresAt is only meaningful while Active.
type PowerupState struct {
	Active    bool
	ExpiresAt float64 // Simulation clock, milliseconds
	Duration  float64 // Milliseconds granted on activation
}

// Remaining returns the milliseconds left before the powerup expires.
func (s PowerupState) Remaining(now float64) float64 {
	if !s.Active || s.ExpiresAt <= now {
		return 0
	}
	return s.ExpiresAt - now
}

// Fraction returns the share of the duration still remaining, in [0, 1].
func (s PowerupState) Fraction(now float64) float64 {
	if s.Duration <= 0 {
		return 0
	}
	return s.Remaining(now) / s.Duration
}

// activatePowerup starts or refreshes a powerup timer.
func (w *World) activatePowerup(p Powerup) {
	st := &w.powerups[p]
	st.Active = true
	st.ExpiresAt = w.now + st.Duration
}

// expirePowerups deactivates every powerup whose timer has run out.
func (w *World) expirePowerups() {
	for i := range w.powerups {
		st := &w.powerups[i]
		if st.Active && w.now >= st.ExpiresAt {
			st.Active = false
			w.emit(Event{Type: EventPowerupExpired, Powerup: Powerup(i)})
		}
	}
}

// PowerupActive reports whether the given powerup is currently active.
func (w *World) PowerupActive(p Powerup) bool {
	if p < 0 || p >= PowerupCount {
		return false
	}
	return w.powerups[p].Active
}

// PowerupState returns the timer state of the given powerup.
func (w *World) PowerupState(p Powerup) PowerupState {
	if p < 0 || p >= PowerupCount {
		return PowerupState{}
	}
	return w.powerups[p]
}

// ActivePowerups lists the active powerups in declaration order.
func (w *World) ActivePowerups() []Powerup {
	var active []Powerup
	for i := range w.powerups {
		if w.powerups[i].Active {
			active = append(active, Powerup(i))
		}
	}
	return active
}
