package envs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tetris-gym/internal/config"
	"github.com/vovakirdan/tetris-gym/internal/core"
	_ "github.com/vovakirdan/tetris-gym/internal/envs"
	"github.com/vovakirdan/tetris-gym/internal/registry"
	"github.com/vovakirdan/tetris-gym/internal/tetris"
)

func TestAllVariantsRegistered(t *testing.T) {
	for _, v := range config.Variants() {
		assert.True(t, registry.Exists(v.ID()), "%s not registered", v.ID())
	}

	ids := make([]string, 0)
	for _, info := range registry.List() {
		ids = append(ids, info.ID)
		assert.NotEmpty(t, info.Title)
	}
	assert.Subset(t, ids, []string{"TetrisA-v0", "TetrisA-v3", "TetrisB-v0", "TetrisB-v3"})
}

func TestCreateAppliesVariant(t *testing.T) {
	env, err := registry.Create("TetrisB-v2", config.DefaultEngineConfig())
	require.NoError(t, err)
	assert.Equal(t, "TetrisB-v2", env.ID())

	native, ok := env.(*tetris.Env)
	require.True(t, ok)
	cfg := native.Config()
	assert.Equal(t, config.ModeB, cfg.Mode.Type)
	assert.True(t, cfg.Reward.Score)
	assert.False(t, cfg.Reward.Lines)
	assert.True(t, cfg.Reward.PenalizeHeight)

	seed := int64(1)
	_, err = env.Reset(&seed)
	require.NoError(t, err)
	res, err := env.Step(core.ActionNoop)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultEngineConfig().Mode.TargetLines, res.Info.LinesRemaining)
}

func TestCreatePropagatesConfigErrors(t *testing.T) {
	cfg := config.DefaultEngineConfig()
	cfg.Board.Width = 0
	_, err := registry.Create("TetrisA-v0", cfg)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
