// Package config provides YAML-based arena configuration loading and
// difficulty management for the level generator.
package config

import (
	"time"

	"github.com/vovakirdan/blockarena/internal/core"
)

// ArenaConfig contains all configuration for arena generation.
type ArenaConfig struct {
	World   WorldConfig   `yaml:"world"`
	Layout  LayoutConfig  `yaml:"layout"`
	Tiers   []Tier        `yaml:"tiers"`
	Scoring ScoringConfig `yaml:"scoring"`
	Palette PaletteConfig `yaml:"palette"`
	Blocks  BlocksConfig  `yaml:"blocks"`
}

// WorldConfig defines the playable bounds and the spawn clearance.
type WorldConfig struct {
	HalfWidth  float64 `yaml:"half_width"`  // Rects may not extend past +/- half_width on X
	HalfHeight float64 `yaml:"half_height"` // Rects may not extend past +/- half_height on Y
	HoleRadius float64 `yaml:"hole_radius"` // Clear radius around the spawn point
}

// SizeRange is an inclusive range of rectangle dimensions, in world units.
type SizeRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// WallSize defines the footprint of elongated wall rectangles.
type WallSize struct {
	LongMin  int `yaml:"long_min"`
	LongMax  int `yaml:"long_max"`
	ShortMin int `yaml:"short_min"`
	ShortMax int `yaml:"short_max"`
}

// LayoutConfig defines the placement search and drag parameters.
type LayoutConfig struct {
	Grid            int       `yaml:"grid"`             // Size and offset granularity
	MaxCastSteps    int       `yaml:"max_cast_steps"`   // Probe cap for one placement
	MaxDragPasses   int       `yaml:"max_drag_passes"`  // Propagation cap per unit step
	OriginDrag      int       `yaml:"origin_drag"`      // Push applied to rect 0 on each axis
	ScatterDrags    int       `yaml:"scatter_drags"`    // Random drags after placement
	ScatterMin      int       `yaml:"scatter_min"`      // Shortest random drag
	ScatterMax      int       `yaml:"scatter_max"`      // Longest random drag
	OverflowSpacing int       `yaml:"overflow_spacing"` // Per-rect spacing of the cast fallback slot
	Movable         SizeRange `yaml:"movable"`
	Wall            WallSize  `yaml:"wall"`
}

// Tier maps a range of level ids to generation parameters.
// Tiers are ordered by MaxID; MaxID 0 marks the open-ended last tier.
type Tier struct {
	MaxID           int     `yaml:"max_id"`
	Count           int     `yaml:"count"`           // Rectangles per quarter
	CountPerLevel   int     `yaml:"count_per_level"` // Scales count with the level id
	WallProbability float64 `yaml:"wall_probability"`
}

// ScoringConfig defines how level metadata is derived from block counts.
type ScoringConfig struct {
	ThresholdRatio float64       `yaml:"threshold_ratio"` // Points needed per movable block
	MovableTime    time.Duration `yaml:"movable_time"`    // Time budget per movable block
	WallTime       time.Duration `yaml:"wall_time"`       // Time budget per wall
	WallDiagonal   float64       `yaml:"wall_diagonal"`   // Rects at least this long are walls
}

// PaletteConfig defines the per-level color scheme.
type PaletteConfig struct {
	Saturation   float64    `yaml:"saturation"`
	Value        float64    `yaml:"value"`
	AccentOffset float64    `yaml:"accent_offset"` // Degrees from the primary hue
	WallOffset   float64    `yaml:"wall_offset"`   // Degrees from the primary hue
	Background   core.Color `yaml:"background"`
}

// BlockPhysics holds the physical properties handed to the physics layer.
type BlockPhysics struct {
	LinearDamping   float64 `yaml:"linear_damping"`
	AngularDamping  float64 `yaml:"angular_damping"`
	Restitution     float64 `yaml:"restitution"`
	Density         float64 `yaml:"density"` // 0 = immovable
	MaxDisplacement float64 `yaml:"max_displacement"`
}

// BlocksConfig defines block presets and render layers.
type BlocksConfig struct {
	Movable       BlockPhysics `yaml:"movable"`
	Wall          BlockPhysics `yaml:"wall"`
	Depth         float64      `yaml:"depth"`          // Render layer of blocks
	SpawnDepth    float64      `yaml:"spawn_depth"`    // Render layer of the spawn point
	BackingOffset core.Vec2    `yaml:"backing_offset"` // Offset of the backing quad
}

// GenParams are the layout parameters chosen for one level.
type GenParams struct {
	Count           int
	WallProbability float64
}
