package level

import (
	"math"

	"github.com/vovakirdan/blockarena/internal/config"
	"github.com/vovakirdan/blockarena/internal/core"
)

// Block is one obstacle handed to the physics and render layers.
type Block struct {
	Center      core.Vec3  `yaml:"center"` // Z is the render layer
	Size        core.Vec2  `yaml:"size"`
	Color       core.Color `yaml:"color"`
	TargetColor core.Color `yaml:"target_color"` // Color once fully displaced

	LinearDamping   float64 `yaml:"linear_damping"`
	AngularDamping  float64 `yaml:"angular_damping"`
	Restitution     float64 `yaml:"restitution"`
	Density         float64 `yaml:"density"` // 0 = static wall
	MaxDisplacement float64 `yaml:"max_displacement"`
}

func newBlock(r core.Rect, depth float64, phys config.BlockPhysics, color, target core.Color) Block {
	return Block{
		Center:          r.Center().Extend(depth),
		Size:            r.Size,
		Color:           color,
		TargetColor:     target,
		LinearDamping:   phys.LinearDamping,
		AngularDamping:  phys.AngularDamping,
		Restitution:     phys.Restitution,
		Density:         phys.Density,
		MaxDisplacement: phys.MaxDisplacement,
	}
}

// IsWall reports whether the block is static.
func (b Block) IsWall() bool {
	return b.Density == 0
}

// Rect returns the block's footprint at rest.
func (b Block) Rect() core.Rect {
	return core.Rect{
		Pos:  b.Center.XY().Sub(b.Size.Scale(0.5)),
		Size: b.Size,
	}
}

// Backing returns the shadow quad drawn one layer behind the block.
func (b Block) Backing(offset core.Vec2) (core.Rect, float64) {
	return b.Rect().Translate(offset), b.Center.Z - 1
}

// Coverage is how far the block has been pushed from rest, as a fraction of
// MaxDisplacement. Walls never score.
func (b Block) Coverage(current core.Vec2) float64 {
	if b.IsWall() || b.MaxDisplacement <= 0 {
		return 0
	}
	d := current.Sub(b.Center.XY()).Len()
	return core.ClampF(d/b.MaxDisplacement, 0, 1)
}

// ColorAt blends from Color to TargetColor as coverage goes from 0 to 1.
func (b Block) ColorAt(coverage float64) core.Color {
	if math.IsNaN(coverage) {
		coverage = 0
	}
	return blend(b.Color, b.TargetColor, core.ClampF(coverage, 0, 1))
}
