package tetris

import (
	"math"

	"github.com/vovakirdan/tetris-gym/internal/config"
)

// Policy derives score increments, the level and the fall interval.
// One Policy value covers both level bases and both scoring modes.
type Policy struct {
	leveling config.LevelingConfig
	scoring  config.ScoringMode
}

// NewPolicy builds the policy for an engine configuration.
func NewPolicy(cfg config.EngineConfig) Policy {
	return Policy{leveling: cfg.Leveling, scoring: cfg.Scoring.Mode}
}

// ScoreDelta returns the score awarded for clearing n lines in one landing.
func (p Policy) ScoreDelta(n int) int {
	return ScoreForLines(p.scoring, n)
}

// ScoreForLines is 0 for no lines, otherwise 2^(n-1) in exponential mode
// and n in linear mode.
func ScoreForLines(mode config.ScoringMode, n int) int {
	if n <= 0 {
		return 0
	}
	if mode == config.ScoringLinear {
		return n
	}
	return 1 << (n - 1)
}

// Level returns the level for the cumulative counters. It starts at 1 and
// increases by one every UnitsPerLevel lines (or score points).
func (p Policy) Level(lines, score int) int {
	units := lines
	if p.leveling.Basis == config.LevelByScore {
		units = score
	}
	return units/p.leveling.UnitsPerLevel + 1
}

// FallInterval returns the gravity interval in ticks for a level.
func (p Policy) FallInterval(level int) float64 {
	l := p.leveling
	if l.Basis == config.LevelByScore {
		return math.Max(l.DecayBase-float64(level)*l.DecayStep, l.DecayMin)
	}
	return math.Max(l.BaseSpeed/float64(level), l.SpeedFloor)
}
