package config

import (
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyArenaPreset modifies the tier table based on a difficulty preset.
// Easy halves wall density; hard raises it by half and adds a quarter more
// rectangles per level.
func ApplyArenaPreset(cfg *ArenaConfig, preset DifficultyPreset) {
	tiers := make([]Tier, len(cfg.Tiers))
	copy(tiers, cfg.Tiers)

	for i := range tiers {
		switch preset {
		case DifficultyEasy:
			tiers[i].WallProbability *= 0.5
		case DifficultyHard:
			tiers[i].WallProbability = math.Min(tiers[i].WallProbability*1.5, 1.0)
			tiers[i].Count += tiers[i].Count / 4
			tiers[i].CountPerLevel += tiers[i].CountPerLevel / 4
		}
	}
	cfg.Tiers = tiers
}

// ParamsFor returns the generation parameters for a level id.
// Returns false for ids below 1, which are never generated.
func (c ArenaConfig) ParamsFor(id int) (GenParams, bool) {
	if id < 1 {
		return GenParams{}, false
	}
	for _, t := range c.Tiers {
		if t.MaxID != 0 && id > t.MaxID {
			continue
		}
		return GenParams{
			Count:           max(t.Count, t.CountPerLevel*id),
			WallProbability: t.WallProbability,
		}, true
	}
	// Validate guarantees an open-ended tier, so this is unreachable for a
	// validated config.
	return GenParams{}, false
}
