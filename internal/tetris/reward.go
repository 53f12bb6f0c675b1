package tetris

import "github.com/vovakirdan/tetris-gym/internal/config"

// Reward computes the per-step reward from the change in score, lines and
// stack height. The height term only ever penalizes growth.
type Reward struct {
	cfg config.RewardConfig
}

// NewReward creates a reward function from its configuration.
func NewReward(cfg config.RewardConfig) Reward {
	return Reward{cfg: cfg}
}

// Compute returns the reward for one step.
func (r Reward) Compute(dScore, dLines, dHeight int) float64 {
	var reward float64
	if r.cfg.Score {
		reward += r.cfg.ScoreWeight * float64(dScore)
	}
	if r.cfg.Lines {
		reward += r.cfg.LinesWeight * float64(dLines)
	}
	if r.cfg.PenalizeHeight && dHeight > 0 {
		reward -= r.cfg.HeightWeight * float64(dHeight)
	}
	return reward
}
