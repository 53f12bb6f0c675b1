// Package envs registers the Tetris environment variants.
// Import it for its side effect:
//
//	import _ "github.com/vovakirdan/tetris-gym/internal/envs"
package envs

import (
	"fmt"

	"github.com/vovakirdan/tetris-gym/internal/config"
	"github.com/vovakirdan/tetris-gym/internal/registry"
	"github.com/vovakirdan/tetris-gym/internal/tetris"
)

func init() {
	for _, v := range config.Variants() {
		registry.Register(v.ID(), title(v), factory(v))
	}
}

func factory(v config.Variant) registry.Factory {
	return func(base config.EngineConfig, opts ...tetris.Option) (registry.Env, error) {
		cfg := base
		config.ApplyVariant(&cfg, v)
		env, err := tetris.New(cfg, append(opts, tetris.WithID(v.ID()))...)
		if err != nil {
			return nil, err
		}
		return env, nil
	}
}

func title(v config.Variant) string {
	var reward string
	switch v.Version {
	case config.VersionScore:
		reward = "score reward"
	case config.VersionLines:
		reward = "lines reward"
	case config.VersionScoreHeight:
		reward = "score reward, height penalty"
	case config.VersionLinesHeight:
		reward = "lines reward, height penalty"
	}
	mode := "endless"
	if v.Mode == config.ModeB {
		mode = "line target"
	}
	return fmt.Sprintf("Tetris %s (%s, %s)", v.Mode, mode, reward)
}
