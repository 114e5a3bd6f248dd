package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/blockarena/internal/core"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

// DefaultArenaConfig returns the default arena configuration.
// It mirrors defaults/arena.yaml and is used when the embedded file fails to parse.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		World: WorldConfig{
			HalfWidth:  350,
			HalfHeight: 290,
			HoleRadius: 32,
		},
		Layout: LayoutConfig{
			Grid:            5,
			MaxCastSteps:    100,
			MaxDragPasses:   100,
			OriginDrag:      40,
			ScatterDrags:    5,
			ScatterMin:      10,
			ScatterMax:      30,
			OverflowSpacing: 50,
			Movable:         SizeRange{Min: 10, Max: 50},
			Wall: WallSize{
				LongMin:  75,
				LongMax:  125,
				ShortMin: 15,
				ShortMax: 50,
			},
		},
		Tiers: []Tier{
			{MaxID: 2, Count: 5, WallProbability: 0.0},
			{MaxID: 6, Count: 10, WallProbability: 0.03},
			{MaxID: 15, Count: 20, WallProbability: 0.06},
			{MaxID: 0, Count: 40, CountPerLevel: 2, WallProbability: 0.1},
		},
		Scoring: ScoringConfig{
			ThresholdRatio: 0.76,
			MovableTime:    time.Second,
			WallTime:       5 * time.Second,
			WallDiagonal:   75,
		},
		Palette: PaletteConfig{
			Saturation:   0.55,
			Value:        0.9,
			AccentOffset: 137,
			WallOffset:   274,
			Background:   core.RGB(0x0b, 0x0b, 0x0f),
		},
		Blocks: BlocksConfig{
			Movable: BlockPhysics{
				LinearDamping:   4,
				AngularDamping:  4,
				Restitution:     0.2,
				Density:         1,
				MaxDisplacement: 60,
			},
			Wall: BlockPhysics{
				Restitution: 0.2,
			},
			Depth:         0,
			SpawnDepth:    10,
			BackingOffset: core.V2(2, -2),
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultArenaYAML
}
