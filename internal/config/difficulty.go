package config

import "math"

// Progression types.
const (
	ProgressionLinear = "linear"
	ProgressionScore  = "score"
	ProgressionTime   = "time"
	ProgressionNone   = "none"
)

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: math.Max(0, cfg.InitialLevel),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressionNone
}

// Level returns the current difficulty level based on score or elapsed milliseconds.
// Bounded progressions interpolate from the initial level to 1.0; linear
// progression keeps growing with score.
func (d *DifficultyManager) Level(score int, elapsedMs float64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case ProgressionLinear:
		return d.initialLevel + math.Max(0, float64(score))/maxAt
	case ProgressionScore:
		progress = float64(score) / maxAt
	case ProgressionTime:
		progress = elapsedMs / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	if d.initialLevel >= 1.0 {
		return d.initialLevel
	}
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SpeedScale returns the multiplier applied to every entity velocity.
// It never decreases as score or time grow.
func (d *DifficultyManager) SpeedScale(score int, elapsedMs float64) float64 {
	return 1.0 + d.Level(score, elapsedMs)*d.cfg.Scaling.SpeedMultiplier
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
