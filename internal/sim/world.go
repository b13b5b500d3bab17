// Package sim implements the dodge simulation loop: a world of falling
// entities and one player, advanced by explicit ticks.
//
// The package has no clock, no goroutines and no package state. A driver
// owns a *World, calls Tick at a fixed cadence, feeds spawns and input into
// it and reads Snapshot and DrainEvents to render. Every mutating call is a
// no-op once the world is over.
package sim

import (
	"math/rand"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/core"
)

// Variant selects the game rules layered on the shared loop.
type Variant int

const (
	VariantBubbles Variant = iota // Collect bubbles, dodge obstacles
	VariantLanes                  // Dodge cars in two lanes
)

// String returns the variant's game id.
func (v Variant) String() string {
	if v == VariantLanes {
		return config.GameLanes
	}
	return config.GameBubbles
}

// LaneCount is the number of lanes in the lane variant.
const LaneCount = 2

// SpeedScaler maps progress to the multiplier applied to entity velocities.
// Implementations must never decrease as score or elapsed time grow.
type SpeedScaler interface {
	SpeedScale(score int, elapsedMs float64) float64
}

// Config holds everything needed to start a world.
type Config struct {
	Variant   Variant
	Width     float64 // World pixels
	Height    float64 // World pixels
	Seed      int64
	HighScore int // Previous best, used by End
	Rules     config.DodgeConfig
	Speed     SpeedScaler // nil uses a difficulty manager built from Rules
}

// DefaultConfig returns a config with the default rules for the variant.
func DefaultConfig(variant Variant, width, height float64) Config {
	rules := config.DefaultBubblesConfig()
	if variant == VariantLanes {
		rules = config.DefaultLanesConfig()
	}
	return Config{
		Variant: variant,
		Width:   width,
		Height:  height,
		Seed:    1,
		Rules:   rules,
	}
}

// World is the complete simulation state for one game session.
type World struct {
	cfg   Config
	rules config.DodgeConfig
	rng   *rand.Rand
	speed SpeedScaler

	width, height float64

	player    Player
	entities  []Entity
	powerups  [PowerupCount]PowerupState
	score     int
	over      bool
	spawnRate float64
	now       float64
	ticks     uint64
	nextID    uint64
	events    []Event
}

// Start builds a fresh running world.
func Start(cfg Config) *World {
	if cfg.Width < 0 {
		cfg.Width = 0
	}
	if cfg.Height < 0 {
		cfg.Height = 0
	}
	w := &World{
		cfg:       cfg,
		rules:     cfg.Rules,
		rng:       rand.New(rand.NewSource(cfg.Seed)),
		speed:     cfg.Speed,
		width:     cfg.Width,
		height:    cfg.Height,
		spawnRate: float64(cfg.Rules.Spawn.IntervalMs),
	}
	if w.speed == nil {
		w.speed = config.NewDifficultyManager(cfg.Rules.Difficulty)
	}

	w.powerups[PowerupSpeed].Duration = float64(cfg.Rules.Powerups.SpeedMs)
	w.powerups[PowerupMultiplier].Duration = float64(cfg.Rules.Powerups.MultiplierMs)
	w.powerups[PowerupInvincible].Duration = float64(cfg.Rules.Powerups.InvincibleMs)

	w.player = Player{
		Width:  float64(cfg.Rules.Player.Width),
		Height: float64(cfg.Rules.Player.Height),
		Offset: float64(cfg.Rules.Player.MinOffset),
	}
	w.placePlayer()
	return w
}

// End marks the world over and reports whether the score beat the previous
// high score. Calling it again only repeats the answer.
func (w *World) End() bool {
	if !w.over {
		w.over = true
		cx, cy := w.PlayerBox().Center()
		w.emit(Event{Type: EventGameOver, X: cx, Y: cy, Color: core.ColorPlayer})
	}
	return w.score > w.cfg.HighScore
}

// Variant returns the rules variant.
func (w *World) Variant() Variant { return w.cfg.Variant }

// Width returns the world width in pixels.
func (w *World) Width() float64 { return w.width }

// Height returns the world height in pixels.
func (w *World) Height() float64 { return w.height }

// Score returns the current score.
func (w *World) Score() int { return w.score }

// IsOver reports whether the world reached its terminal state.
func (w *World) IsOver() bool { return w.over }

// Now returns the simulation clock in milliseconds.
func (w *World) Now() float64 { return w.now }

// SpawnRate returns the current primary spawn interval in milliseconds.
func (w *World) SpawnRate() float64 { return w.spawnRate }

// PreviousHigh returns the high score the world was started with.
func (w *World) PreviousHigh() int { return w.cfg.HighScore }

// HighScore returns the best of the previous high score and the current score.
func (w *World) HighScore() int {
	return max(w.cfg.HighScore, w.score)
}

// Rules returns the game rules the world was started with.
func (w *World) Rules() config.DodgeConfig { return w.rules }

// SpeedScale returns the current velocity multiplier.
func (w *World) SpeedScale() float64 {
	return w.speed.SpeedScale(w.score, w.now)
}

// Player returns a copy of the player.
func (w *World) Player() Player { return w.player }

// Entities returns a copy of the live entities.
func (w *World) Entities() []Entity {
	out := make([]Entity, len(w.entities))
	copy(out, w.entities)
	return out
}

// LaneCenter returns the x coordinate of a lane's center.
func (w *World) LaneCenter(lane int) float64 {
	lane = max(0, min(LaneCount-1, lane))
	laneW := w.width / LaneCount
	return laneW*float64(lane) + laneW/2
}
