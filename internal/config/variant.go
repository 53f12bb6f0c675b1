package config

import (
	"fmt"
	"regexp"
	"strconv"
)

// Variant identifies one registered environment flavour, e.g. "TetrisB-v2".
type Variant struct {
	Mode    GameMode
	Version int
}

// Variant versions select the reward terms.
const (
	VersionScore         = 0 // reward score
	VersionLines         = 1 // reward lines
	VersionScoreHeight   = 2 // reward score, penalize height
	VersionLinesHeight   = 3 // reward lines, penalize height
	NumVariantVersions   = 4
	variantIDPrefix      = "Tetris"
	variantIDVersionSign = "-v"
)

var variantIDPattern = regexp.MustCompile(`^Tetris([AB])-v([0-9]+)$`)

// ID returns the registry identifier for the variant.
func (v Variant) ID() string {
	return variantIDPrefix + string(v.Mode) + variantIDVersionSign + strconv.Itoa(v.Version)
}

// Variants returns every registered variant in registry order.
func Variants() []Variant {
	variants := make([]Variant, 0, 2*NumVariantVersions)
	for _, mode := range []GameMode{ModeA, ModeB} {
		for version := 0; version < NumVariantVersions; version++ {
			variants = append(variants, Variant{Mode: mode, Version: version})
		}
	}
	return variants
}

// ParseVariant parses an identifier such as "TetrisA-v3".
func ParseVariant(id string) (Variant, error) {
	m := variantIDPattern.FindStringSubmatch(id)
	if m == nil {
		return Variant{}, fmt.Errorf("config: malformed variant id %q: %w", id, ErrInvalidConfig)
	}
	version, err := strconv.Atoi(m[2])
	if err != nil || version >= NumVariantVersions {
		return Variant{}, fmt.Errorf("config: unknown variant version in %q: %w", id, ErrInvalidConfig)
	}
	return Variant{Mode: GameMode(m[1]), Version: version}, nil
}

// ApplyVariant modifies the config's game mode and reward terms for a variant.
// Weights and every other section are left untouched.
func ApplyVariant(cfg *EngineConfig, v Variant) {
	cfg.Mode.Type = v.Mode

	switch v.Version {
	case VersionScore:
		cfg.Reward.Score, cfg.Reward.Lines, cfg.Reward.PenalizeHeight = true, false, false
	case VersionLines:
		cfg.Reward.Score, cfg.Reward.Lines, cfg.Reward.PenalizeHeight = false, true, false
	case VersionScoreHeight:
		cfg.Reward.Score, cfg.Reward.Lines, cfg.Reward.PenalizeHeight = true, false, true
	case VersionLinesHeight:
		cfg.Reward.Score, cfg.Reward.Lines, cfg.Reward.PenalizeHeight = false, true, true
	}
}
