// Package config provides YAML-based engine configuration loading,
// validation and the registered environment variants.
package config

import (
	"errors"
	"fmt"
)

// EngineConfig contains all configuration for one Tetris environment.
// It is fixed for the lifetime of an Env.
type EngineConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Timing   TimingConfig   `yaml:"timing"`
	Leveling LevelingConfig `yaml:"leveling"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Reward   RewardConfig   `yaml:"reward"`
	Mode     ModeConfig     `yaml:"mode"`
}

// BoardConfig defines the playfield dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the per-class move cooldowns, in ticks.
type TimingConfig struct {
	SideCooldown   int `yaml:"side_cooldown"`
	DownCooldown   int `yaml:"down_cooldown"`
	RotateCooldown int `yaml:"rotate_cooldown"`
}

// LevelBasis selects what cumulative counter drives the level.
type LevelBasis string

const (
	LevelByLines LevelBasis = "lines"
	LevelByScore LevelBasis = "score"
)

// LevelingConfig defines level derivation and fall speed.
//
// With basis "lines" the fall interval is max(base_speed/level, speed_floor).
// With basis "score" it is max(decay_base - level*decay_step, decay_min).
// All intervals are measured in ticks.
type LevelingConfig struct {
	Basis         LevelBasis `yaml:"basis"`
	UnitsPerLevel int        `yaml:"units_per_level"`
	BaseSpeed     float64    `yaml:"base_speed"`
	SpeedFloor    float64    `yaml:"speed_floor"`
	DecayBase     float64    `yaml:"decay_base"`
	DecayStep     float64    `yaml:"decay_step"`
	DecayMin      float64    `yaml:"decay_min"`
}

// ScoringMode selects the score increment formula per landing.
type ScoringMode string

const (
	ScoringExponential ScoringMode = "exponential" // 2^(n-1)
	ScoringLinear      ScoringMode = "linear"      // n
)

// ScoringConfig selects the scoring formula.
type ScoringConfig struct {
	Mode ScoringMode `yaml:"mode"`
}

// RewardConfig selects which terms contribute to the step reward.
type RewardConfig struct {
	Score          bool    `yaml:"score"`
	Lines          bool    `yaml:"lines"`
	PenalizeHeight bool    `yaml:"penalize_height"`
	ScoreWeight    float64 `yaml:"score_weight"`
	LinesWeight    float64 `yaml:"lines_weight"`
	HeightWeight   float64 `yaml:"height_weight"`
}

// GameMode is the win/loss rule set.
type GameMode string

const (
	// ModeA is endless play; the episode ends only on a blocked spawn.
	ModeA GameMode = "A"
	// ModeB counts down a line target; reaching zero wins the episode.
	ModeB GameMode = "B"
)

// ModeConfig defines the game mode.
type ModeConfig struct {
	Type        GameMode `yaml:"type"`
	TargetLines int      `yaml:"target_lines"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the configuration and returns a descriptive error for the
// first problem found. Unknown enumerations are rejected, not defaulted.
func (c EngineConfig) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("config: board %dx%d: %w", c.Board.Width, c.Board.Height, ErrInvalidConfig)
	}
	// Pieces spawn centred in a 5-wide footprint.
	if c.Board.Width < 5 {
		return fmt.Errorf("config: board width %d below piece footprint: %w", c.Board.Width, ErrInvalidConfig)
	}
	if c.Timing.SideCooldown < 0 || c.Timing.DownCooldown < 0 || c.Timing.RotateCooldown < 0 {
		return fmt.Errorf("config: negative cooldown: %w", ErrInvalidConfig)
	}

	switch c.Leveling.Basis {
	case LevelByLines:
		if c.Leveling.BaseSpeed <= 0 || c.Leveling.SpeedFloor < 0 {
			return fmt.Errorf("config: lines leveling needs base_speed > 0 and speed_floor >= 0: %w", ErrInvalidConfig)
		}
	case LevelByScore:
		if c.Leveling.DecayStep < 0 || c.Leveling.DecayMin < 0 {
			return fmt.Errorf("config: score leveling needs decay_step >= 0 and decay_min >= 0: %w", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("config: unknown leveling basis %q: %w", c.Leveling.Basis, ErrInvalidConfig)
	}
	if c.Leveling.UnitsPerLevel <= 0 {
		return fmt.Errorf("config: units_per_level must be positive: %w", ErrInvalidConfig)
	}

	switch c.Scoring.Mode {
	case ScoringExponential, ScoringLinear:
	default:
		return fmt.Errorf("config: unknown scoring mode %q: %w", c.Scoring.Mode, ErrInvalidConfig)
	}

	switch c.Mode.Type {
	case ModeA:
	case ModeB:
		if c.Mode.TargetLines <= 0 {
			return fmt.Errorf("config: mode B needs target_lines > 0: %w", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("config: unknown game mode %q: %w", c.Mode.Type, ErrInvalidConfig)
	}

	return nil
}
