package config

import (
	_ "embed"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

// DefaultEngineConfig returns the default engine configuration.
// It mirrors defaults/engine.yaml and is the fallback if the embed fails to parse.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Timing: TimingConfig{
			SideCooldown:   2,
			DownCooldown:   1,
			RotateCooldown: 2,
		},
		Leveling: LevelingConfig{
			Basis:         LevelByLines,
			UnitsPerLevel: 10,
			BaseSpeed:     8.0,
			SpeedFloor:    0.1,
			DecayBase:     16.2, // 0.27s at 60 ticks per second
			DecayStep:     1.2,  // 0.02s at 60 ticks per second
			DecayMin:      1.0,
		},
		Scoring: ScoringConfig{
			Mode: ScoringExponential,
		},
		Reward: RewardConfig{
			Score:          false,
			Lines:          true,
			PenalizeHeight: true,
			ScoreWeight:    1.0,
			LinesWeight:    1.0,
			HeightWeight:   1.0,
		},
		Mode: ModeConfig{
			Type:        ModeA,
			TargetLines: 25,
		},
	}
}

// DefaultYAML returns the embedded default engine YAML.
func DefaultYAML() []byte {
	return defaultEngineYAML
}
