package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration for a dodge game.
// Search order: customPath -> ~/.arcade/configs/<game>.yaml -> ./configs/<game>.yaml -> embedded default.
// Files are overlaid on the hard-coded defaults, so a file may set only the keys it cares about.
func Load(gameID, customPath string) (DodgeConfig, error) {
	base, ok := DefaultConfig(gameID)
	if !ok {
		return DodgeConfig{}, fmt.Errorf("config: no configuration for game %q", gameID)
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(gameID, base, data)
		if err != nil {
			return base, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(gameID, base, data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if cfg, err := parse(gameID, base, data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := parse(gameID, base, GetDefaultYAML(gameID)); err == nil {
		return cfg, nil
	}
	return base, nil // Fallback to hardcoded if embed fails
}

// parse overlays YAML data on base and validates the result.
func parse(gameID string, base DodgeConfig, data []byte) (DodgeConfig, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	if err := cfg.Validate(gameID); err != nil {
		return base, err
	}
	return cfg, nil
}

// Validate reports configuration values the simulation cannot run with.
// Entity sections are checked only for the game that uses them.
func (c DodgeConfig) Validate(gameID string) error {
	var errs []error
	if c.World.CellWidth <= 0 || c.World.CellHeight <= 0 {
		errs = append(errs, errors.New("world cell size must be positive"))
	}
	if c.World.BaseTickMs <= 0 {
		errs = append(errs, errors.New("world.base_tick_ms must be positive"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Player.MinOffset < 0 {
		errs = append(errs, errors.New("player.min_offset must not be negative"))
	}
	if c.Spawn.IntervalMs <= 0 || c.Spawn.MinIntervalMs <= 0 {
		errs = append(errs, errors.New("spawn intervals must be positive"))
	}
	switch gameID {
	case GameBubbles:
		errs = append(errs, c.validateBubbles()...)
	case GameLanes:
		errs = append(errs, c.validateCars()...)
	}
	if c.Difficulty.Scaling.SpeedMultiplier < 0 {
		errs = append(errs, errors.New("difficulty.scaling.speed_multiplier must not be negative"))
	}
	switch c.Difficulty.Progression.Type {
	case ProgressionLinear, ProgressionScore, ProgressionTime, ProgressionNone:
	default:
		errs = append(errs, fmt.Errorf("unknown progression type %q", c.Difficulty.Progression.Type))
	}
	return errors.Join(errs...)
}

func (c DodgeConfig) validateBubbles() []error {
	var errs []error
	b, o := c.Bubbles, c.Obstacles
	if b.MinSize <= 0 || b.MaxSize < b.MinSize {
		errs = append(errs, errors.New("bubbles sizes must be positive with max_size >= min_size"))
	}
	if b.MinSpeed <= 0 || b.MaxSpeed < b.MinSpeed {
		errs = append(errs, errors.New("bubbles speeds must be positive with max_speed >= min_speed"))
	}
	if b.PowerupChance < 0 || b.PowerupChance > 1 {
		errs = append(errs, errors.New("bubbles.powerup_chance must be within [0, 1]"))
	}
	if c.Spawn.ObstacleIntervalMs < 0 {
		errs = append(errs, errors.New("spawn.obstacle_interval_ms must not be negative"))
	}
	if c.Spawn.ObstacleIntervalMs == 0 {
		return errs
	}
	if o.MinWidth <= 0 || o.MaxWidth < o.MinWidth || o.MinHeight <= 0 || o.MaxHeight < o.MinHeight {
		errs = append(errs, errors.New("obstacles sizes must be positive with max >= min"))
	}
	if o.MinSpeed <= 0 || o.MaxSpeed < o.MinSpeed {
		errs = append(errs, errors.New("obstacles speeds must be positive with max_speed >= min_speed"))
	}
	if o.MinDrift < 0 || o.MaxDrift < o.MinDrift {
		errs = append(errs, errors.New("obstacles drift must not be negative with max_drift >= min_drift"))
	}
	return errs
}

func (c DodgeConfig) validateCars() []error {
	var errs []error
	car := c.Cars
	if car.WidthRatio <= 0 || car.WidthRatio > 1 {
		errs = append(errs, errors.New("cars.width_ratio must be within (0, 1]"))
	}
	if car.Height <= 0 {
		errs = append(errs, errors.New("cars.height must be positive"))
	}
	if car.MinSpeed <= 0 || car.MaxSpeed < car.MinSpeed {
		errs = append(errs, errors.New("cars speeds must be positive with max_speed >= min_speed"))
	}
	return errs
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
