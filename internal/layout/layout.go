// Package layout builds the rectangle sets behind each arena.
//
// A layout starts as one quarter: rectangles are cast one by one along a
// random axis until they rest against what is already placed, then a few
// drags push groups of touching rectangles around. The quarter is clipped to
// the world, mirrored into the other three quadrants and finally cleared
// around the spawn point. Every exported operation keeps the layout free of
// overlapping rectangles; rectangles may share edges.
package layout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/blockarena/internal/config"
	"github.com/vovakirdan/blockarena/internal/core"
)

// Rand is the randomness source threaded through generation.
// *math/rand.Rand satisfies it; identical seeds replay identical layouts.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Layout is an ordered set of placed rectangles. Order is creation order.
type Layout []core.Rect

// Extent returns the furthest far edge along dir, or 0 for an empty layout.
func (l Layout) Extent(dir core.Vec2) float64 {
	extent := 0.0
	for _, r := range l {
		extent = math.Max(extent, r.Max().Dot(dir))
	}
	return extent
}

// Overlapping returns the index of the first rectangle that intersects r, or -1.
func (l Layout) Overlapping(r core.Rect) int {
	for i, other := range l {
		if r.Intersects(other) {
			return i
		}
	}
	return -1
}

// FirstOverlap returns the first pair of intersecting rectangles, if any.
func (l Layout) FirstOverlap() (i, j int, found bool) {
	for i = range l {
		for j = i + 1; j < len(l); j++ {
			if l[i].Intersects(l[j]) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// Filter returns a new layout holding the rectangles for which keep is true.
func (l Layout) Filter(keep func(core.Rect) bool) Layout {
	out := make(Layout, 0, len(l))
	for _, r := range l {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// Clone returns an independent copy.
func (l Layout) Clone() Layout {
	out := make(Layout, len(l))
	copy(out, l)
	return out
}

// Builder generates layouts from a validated configuration.
// It holds no mutable state and can be shared.
type Builder struct {
	world config.WorldConfig
	cfg   config.LayoutConfig
}

// NewBuilder validates cfg and returns a builder for it.
func NewBuilder(cfg config.ArenaConfig) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	return &Builder{world: cfg.World, cfg: cfg.Layout}, nil
}

// World returns the bounds the builder clips against.
func (b *Builder) World() config.WorldConfig {
	return b.world
}

// sampleSize draws a rectangle footprint. Walls are elongated along a random axis.
func (b *Builder) sampleSize(rng Rand, wallProbability float64) core.Vec2 {
	if rng.Float64() >= wallProbability {
		w := b.step(rng, b.cfg.Movable.Min, b.cfg.Movable.Max)
		h := b.step(rng, b.cfg.Movable.Min, b.cfg.Movable.Max)
		return core.V2(w, h)
	}

	long := b.step(rng, b.cfg.Wall.LongMin, b.cfg.Wall.LongMax)
	short := b.step(rng, b.cfg.Wall.ShortMin, b.cfg.Wall.ShortMax)
	if rng.Intn(2) == 0 {
		return core.V2(long, short)
	}
	return core.V2(short, long)
}

// step draws a grid-aligned value from [lo, hi].
func (b *Builder) step(rng Rand, lo, hi int) float64 {
	n := (hi-lo)/b.cfg.Grid + 1
	return float64(lo + b.cfg.Grid*rng.Intn(n))
}

func sampleAxis(rng Rand) core.Vec2 {
	if rng.Intn(2) == 0 {
		return core.AxisX
	}
	return core.AxisY
}
