package dodge

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/dodge-arcade/internal/core"
	"github.com/vovakirdan/dodge-arcade/internal/sim"
)

// Effect tuning, in platform ticks and screen cells.
const (
	BurstNormal   = 15 // Particles for a collected bubble
	BurstPowerup  = 25 // Particles for a collected powerup
	BurstGameOver = 30

	ParticleLife = 25
	PopLife      = 40
	PopRise      = 0.08 // Rows per tick
	Gravity      = 0.03 // Rows per tick squared
)

var particleGlyphs = []rune{'·', '*', '+', '•'}

// Particle is one spark of a burst, in fractional screen coordinates.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int
	Glyph  rune
	Color  core.Color
}

// Pop is a short floating label such as "+2".
type Pop struct {
	X, Y  float64
	Text  string
	Life  int
	Color core.Color
}

// Effects holds purely visual feedback driven by simulation events.
// It never feeds back into the world.
type Effects struct {
	rng       *rand.Rand
	Particles []Particle
	Pops      []Pop
}

// NewEffects creates an empty effect layer.
func NewEffects(seed int64) *Effects {
	return &Effects{rng: rand.New(rand.NewSource(seed))}
}

// Handle turns simulation events into bursts and pops.
func (fx *Effects) Handle(events []sim.Event, l layout) {
	for _, ev := range events {
		x, y := l.toCell(ev.X, ev.Y)
		switch ev.Type {
		case sim.EventCollect:
			fx.Burst(x, y, BurstNormal, ev.Color)
			fx.addPop(x, y, fmt.Sprintf("+%d", ev.Points), core.ColorAccent)
		case sim.EventPowerupCollected:
			fx.Burst(x, y, BurstPowerup, ev.Color)
			fx.addPop(x, y, powerupLabel(ev.Powerup), ev.Color)
		case sim.EventCarPassed:
			// Cars leave below the field, so the pop sits on the last row
			_, bottom := l.toCell(0, float64(l.rows-1)*l.cellH)
			fx.addPop(x, bottom, "+1", core.ColorAccent)
		case sim.EventGameOver:
			fx.Burst(x, y, BurstGameOver, core.ColorHazard)
		}
	}
}

// Burst scatters n particles from a point.
func (fx *Effects) Burst(x, y float64, n int, c core.Color) {
	for range n {
		angle := fx.rng.Float64() * 2 * math.Pi
		speed := 0.2 + fx.rng.Float64()*0.6
		fx.Particles = append(fx.Particles, Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed * 2, // Cells are about twice as tall as wide
			VY:    math.Sin(angle) * speed,
			Life:  ParticleLife/2 + fx.rng.Intn(ParticleLife/2+1),
			Glyph: particleGlyphs[fx.rng.Intn(len(particleGlyphs))],
			Color: c,
		})
	}
}

func (fx *Effects) addPop(x, y float64, text string, c core.Color) {
	fx.Pops = append(fx.Pops, Pop{X: x, Y: y, Text: text, Life: PopLife, Color: c})
}

// Step ages every effect by one tick and drops finished ones.
func (fx *Effects) Step() {
	n := 0
	for _, p := range fx.Particles {
		p.Life--
		if p.Life <= 0 {
			continue
		}
		p.X += p.VX
		p.Y += p.VY
		p.VY += Gravity
		fx.Particles[n] = p
		n++
	}
	fx.Particles = fx.Particles[:n]

	n = 0
	for _, p := range fx.Pops {
		p.Life--
		if p.Life <= 0 {
			continue
		}
		p.Y -= PopRise
		fx.Pops[n] = p
		n++
	}
	fx.Pops = fx.Pops[:n]
}

// Active reports whether any effect is still playing.
func (fx *Effects) Active() bool {
	return len(fx.Particles) > 0 || len(fx.Pops) > 0
}

// Render draws particles and pops inside the playfield.
func (fx *Effects) Render(dst *core.Screen, l layout) {
	for _, p := range fx.Particles {
		x, y := int(math.Round(p.X)), int(math.Round(p.Y))
		if l.inField(y) {
			dst.SetColored(x, y, p.Glyph, p.Color)
		}
	}
	for _, p := range fx.Pops {
		y := int(math.Round(p.Y))
		if l.inField(y) {
			x := int(math.Round(p.X)) - len(p.Text)/2
			dst.DrawTextColored(x, y, p.Text, p.Color)
		}
	}
}

func powerupLabel(p sim.Powerup) string {
	switch p {
	case sim.PowerupSpeed:
		return "SPEED!"
	case sim.PowerupMultiplier:
		return "MULTIPLIER!"
	case sim.PowerupInvincible:
		return "SHIELD!"
	default:
		return "POWER!"
	}
}
