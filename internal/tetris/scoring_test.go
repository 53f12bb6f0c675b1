package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tetris-gym/internal/config"
)

func TestScoreForLines(t *testing.T) {
	tests := []struct {
		lines       int
		exponential int
		linear      int
	}{
		{0, 0, 0},
		{1, 1, 1},
		{2, 2, 2},
		{3, 4, 3},
		{4, 8, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.exponential, ScoreForLines(config.ScoringExponential, tt.lines), "exponential %d", tt.lines)
		assert.Equal(t, tt.linear, ScoreForLines(config.ScoringLinear, tt.lines), "linear %d", tt.lines)
	}
}

func TestLevelByLines(t *testing.T) {
	p := NewPolicy(config.DefaultEngineConfig())

	tests := []struct {
		lines    int
		level    int
		interval float64
	}{
		{0, 1, 8.0},
		{9, 1, 8.0},
		{10, 2, 4.0},
		{25, 3, 8.0 / 3},
		{1000, 101, 0.1},
	}
	for _, tt := range tests {
		level := p.Level(tt.lines, 12345)
		assert.Equal(t, tt.level, level, "lines %d", tt.lines)
		assert.InDelta(t, tt.interval, p.FallInterval(level), 1e-9, "lines %d", tt.lines)
	}
}

func TestLevelByScore(t *testing.T) {
	cfg := config.DefaultEngineConfig()
	cfg.Leveling.Basis = config.LevelByScore
	p := NewPolicy(cfg)

	tests := []struct {
		score    int
		level    int
		interval float64
	}{
		{0, 1, 15.0},
		{10, 2, 13.8},
		{55, 6, 9.0},
		{500, 51, 1.0},
	}
	for _, tt := range tests {
		level := p.Level(12345, tt.score)
		assert.Equal(t, tt.level, level, "score %d", tt.score)
		assert.InDelta(t, tt.interval, p.FallInterval(level), 1e-9, "score %d", tt.score)
	}
}

func TestFallIntervalNonIncreasing(t *testing.T) {
	for _, basis := range []config.LevelBasis{config.LevelByLines, config.LevelByScore} {
		cfg := config.DefaultEngineConfig()
		cfg.Leveling.Basis = basis
		p := NewPolicy(cfg)

		prev := p.FallInterval(1)
		for level := 2; level <= 200; level++ {
			cur := p.FallInterval(level)
			assert.LessOrEqual(t, cur, prev, "%s level %d", basis, level)
			prev = cur
		}
	}
}

func TestRewardCompute(t *testing.T) {
	tests := []struct {
		name                    string
		cfg                     config.RewardConfig
		dScore, dLines, dHeight int
		want                    float64
	}{
		{"lines only", config.RewardConfig{Lines: true, LinesWeight: 1}, 4, 2, 0, 2},
		{"score only", config.RewardConfig{Score: true, ScoreWeight: 1}, 4, 2, 0, 4},
		{"both weighted", config.RewardConfig{Score: true, Lines: true, ScoreWeight: 0.5, LinesWeight: 2}, 4, 3, 0, 8},
		{"height growth penalized", config.RewardConfig{PenalizeHeight: true, HeightWeight: 1}, 0, 0, 2, -2},
		{"height drop not rewarded", config.RewardConfig{PenalizeHeight: true, HeightWeight: 1}, 0, 0, -3, 0},
		{"height ignored when disabled", config.RewardConfig{Lines: true, LinesWeight: 1}, 0, 0, 5, 0},
		{"lines and height", config.RewardConfig{Lines: true, LinesWeight: 1, PenalizeHeight: true, HeightWeight: 0.5}, 1, 1, 4, -1},
		{"nothing enabled", config.RewardConfig{ScoreWeight: 1, LinesWeight: 1, HeightWeight: 1}, 8, 4, 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReward(tt.cfg)
			assert.InDelta(t, tt.want, r.Compute(tt.dScore, tt.dLines, tt.dHeight), 1e-9)
		})
	}
}
