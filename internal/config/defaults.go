package config

import (
	_ "embed"
)

// Game identifiers with a YAML config.
const (
	GameBubbles = "bubbles"
	GameLanes   = "lanes"
)

//go:embed defaults/bubbles.yaml
var defaultBubblesYAML []byte

//go:embed defaults/lanes.yaml
var defaultLanesYAML []byte

// DefaultBubblesConfig returns the default Bubble Dodge configuration.
func DefaultBubblesConfig() DodgeConfig {
	return DodgeConfig{
		World: WorldConfig{
			CellWidth:  8,
			CellHeight: 16,
			MaxWidth:   0,
			BaseTickMs: 20,
		},
		Player: PlayerConfig{
			Width:       40,
			Height:      40,
			MinOffset:   20,
			Step:        30,
			BoostedStep: 45,
		},
		Spawn: SpawnConfig{
			IntervalMs:         1000,
			MinIntervalMs:      300,
			IntervalPerPointMs: 2,
			ObstacleIntervalMs: 5000,
			ObstacleMinScore:   20,
		},
		Bubbles: BubbleConfig{
			MinSize:       30,
			MaxSize:       60,
			MinSpeed:      2,
			MaxSpeed:      5,
			PowerupChance: 0.15,
		},
		Obstacles: ObstacleConfig{
			MinWidth:  50,
			MaxWidth:  150,
			MinHeight: 10,
			MaxHeight: 30,
			MinSpeed:  3,
			MaxSpeed:  5,
			MinDrift:  1,
			MaxDrift:  3,
		},
		Powerups: defaultPowerups(),
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionLinear,
				MaxAt: 500, // 1 + score/500
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultLanesConfig returns the default Lane Dodge configuration.
func DefaultLanesConfig() DodgeConfig {
	return DodgeConfig{
		World: WorldConfig{
			CellWidth:  8,
			CellHeight: 16,
			MaxWidth:   320,
			BaseTickMs: 20,
		},
		Player: PlayerConfig{
			Width:       40,
			Height:      40,
			MinOffset:   20,
			Step:        30,
			BoostedStep: 45,
		},
		Spawn: SpawnConfig{
			IntervalMs:         1400,
			MinIntervalMs:      450,
			IntervalPerPointMs: 15,
		},
		Cars: CarConfig{
			WidthRatio: 0.5,
			Height:     48,
			MinSpeed:   3,
			MaxSpeed:   5,
		},
		Powerups: defaultPowerups(),
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionLinear,
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

func defaultPowerups() PowerupConfig {
	return PowerupConfig{
		SpeedMs:         10000,
		MultiplierMs:    10000,
		InvincibleMs:    8000,
		MultiplierValue: 2,
	}
}

// DefaultConfig returns the hard-coded default for a game, or false if the
// game has no YAML config.
func DefaultConfig(gameID string) (DodgeConfig, bool) {
	switch gameID {
	case GameBubbles:
		return DefaultBubblesConfig(), true
	case GameLanes:
		return DefaultLanesConfig(), true
	default:
		return DodgeConfig{}, false
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case GameBubbles:
		return defaultBubblesYAML
	case GameLanes:
		return defaultLanesYAML
	default:
		return nil
	}
}
