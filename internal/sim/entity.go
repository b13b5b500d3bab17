package sim

import "github.com/vovakirdan/dodge-arcade/internal/core"

// Kind identifies what an entity is and how a collision with it resolves.
type Kind int

const (
	KindNormal            Kind = iota // Collectible bubble
	KindPowerupSpeed                  // Bubble granting faster movement
	KindPowerupMultiplier             // Bubble granting double points
	KindPowerupInvincible             // Bubble granting immunity to hazards
	KindObstacle                      // Falling, drifting hazard
	KindCarLeft                       // Car in the left lane (hazard)
	KindCarRight                      // Car in the right lane (hazard)
	KindCount                         // Sentinel for counting kinds
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindPowerupSpeed:
		return "powerup-speed"
	case KindPowerupMultiplier:
		return "powerup-multiplier"
	case KindPowerupInvincible:
		return "powerup-invincible"
	case KindObstacle:
		return "obstacle"
	case KindCarLeft:
		return "car-lane-left"
	case KindCarRight:
		return "car-lane-right"
	default:
		return "unknown"
	}
}

// IsPowerup reports whether collecting this kind activates a powerup.
func (k Kind) IsPowerup() bool {
	return k == KindPowerupSpeed || k == KindPowerupMultiplier || k == KindPowerupInvincible
}

// IsCollectible reports whether the entity is removed when the player touches it.
func (k Kind) IsCollectible() bool {
	return k == KindNormal || k.IsPowerup()
}

// IsCar reports whether the kind is a lane car.
func (k Kind) IsCar() bool {
	return k == KindCarLeft || k == KindCarRight
}

// IsHazard reports whether touching the entity ends the game.
func (k Kind) IsHazard() bool {
	return k == KindObstacle || k.IsCar()
}

// Powerup returns the powerup granted by this kind.
// The second value is false for kinds that are not powerups.
func (k Kind) Powerup() (Powerup, bool) {
	switch k {
	case KindPowerupSpeed:
		return PowerupSpeed, true
	case KindPowerupMultiplier:
		return PowerupMultiplier, true
	case KindPowerupInvincible:
		return PowerupInvincible, true
	default:
		return 0, false
	}
}

// Entity is any non-player moving object.
type Entity struct {
	ID     uint64
	Kind   Kind
	X, Y   float64 // Top-left corner in world pixels
	VX, VY float64 // Pixels per base tick; VX sign is the drift direction
	Width  float64
	Height float64
	Color  core.Color // Display hint, never read by the simulation

	removed bool
}

// Box returns the entity's collision box.
func (e Entity) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.Width, e.Height)
}
