// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// DodgeConfig contains all configuration for one dodge game variant.
// Bubble Dodge and Lane Dodge share the schema; each variant reads the
// sections it needs and ignores the rest.
type DodgeConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Bubbles    BubbleConfig     `yaml:"bubbles"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Cars       CarConfig        `yaml:"cars"`
	Powerups   PowerupConfig    `yaml:"powerups"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig maps terminal cells to world pixels.
type WorldConfig struct {
	CellWidth  int     `yaml:"cell_width"`  // World pixels per terminal column
	CellHeight int     `yaml:"cell_height"` // World pixels per terminal row
	MaxWidth   int     `yaml:"max_width"`   // Playfield width cap in pixels (0 = full screen)
	BaseTickMs float64 `yaml:"base_tick_ms"` // Tick length that entity speeds are expressed in
}

// PlayerConfig defines the avatar hitbox and vertical movement.
type PlayerConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	MinOffset   int `yaml:"min_offset"`   // Lowest offset from the bottom edge; also the top margin
	Step        int `yaml:"step"`         // Offset change per move
	BoostedStep int `yaml:"boosted_step"` // Offset change per move while the speed powerup is active
}

// SpawnConfig defines the spawn cadence for the primary entity stream
// (bubbles or cars) and for obstacles.
type SpawnConfig struct {
	IntervalMs         int `yaml:"interval_ms"`          // Starting interval between primary spawns
	MinIntervalMs      int `yaml:"min_interval_ms"`      // Fastest allowed interval
	IntervalPerPointMs int `yaml:"interval_per_point_ms"` // Interval reduction per point of score
	ObstacleIntervalMs int `yaml:"obstacle_interval_ms"` // 0 disables obstacles
	ObstacleMinScore   int `yaml:"obstacle_min_score"`   // Grace period before obstacles appear
}

// BubbleConfig defines falling bubble parameters.
type BubbleConfig struct {
	MinSize       int     `yaml:"min_size"`
	MaxSize       int     `yaml:"max_size"`
	MinSpeed      float64 `yaml:"min_speed"` // Pixels per base tick
	MaxSpeed      float64 `yaml:"max_speed"`
	PowerupChance float64 `yaml:"powerup_chance"` // Probability a bubble is a powerup
}

// ObstacleConfig defines falling, drifting obstacle parameters.
type ObstacleConfig struct {
	MinWidth  int     `yaml:"min_width"`
	MaxWidth  int     `yaml:"max_width"`
	MinHeight int     `yaml:"min_height"`
	MaxHeight int     `yaml:"max_height"`
	MinSpeed  float64 `yaml:"min_speed"`
	MaxSpeed  float64 `yaml:"max_speed"`
	MinDrift  float64 `yaml:"min_drift"` // Horizontal pixels per base tick
	MaxDrift  float64 `yaml:"max_drift"`
}

// CarConfig defines car parameters for the lane variant.
type CarConfig struct {
	WidthRatio float64 `yaml:"width_ratio"` // Car width as a fraction of lane width
	Height     int     `yaml:"height"`
	MinSpeed   float64 `yaml:"min_speed"`
	MaxSpeed   float64 `yaml:"max_speed"`
}

// PowerupConfig defines powerup durations and effect strength.
type PowerupConfig struct {
	SpeedMs         int `yaml:"speed_ms"`
	MultiplierMs    int `yaml:"multiplier_ms"`
	InvincibleMs    int `yaml:"invincible_ms"`
	MultiplierValue int `yaml:"multiplier_value"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"`
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	// Type is "linear" (unbounded, level grows by 1 every MaxAt points),
	// "score" or "time" (level saturates at MaxAt points / milliseconds), or "none".
	Type  string `yaml:"type"`
	MaxAt int    `yaml:"max_at"`
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Speed scale added per difficulty level
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *DodgeConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Player.Step += cfg.Player.Step / 3
		cfg.Spawn.ObstacleMinScore *= 2
	case DifficultyHard:
		cfg.Spawn.MinIntervalMs = cfg.Spawn.MinIntervalMs * 2 / 3
	}
}
