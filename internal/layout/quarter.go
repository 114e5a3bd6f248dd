package layout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/blockarena/internal/core"
)

// GenQuarter builds one quadrant of count rectangles in the positive quadrant.
// Panics on a negative count or a wall probability outside [0, 1]; both are
// caller bugs.
func (b *Builder) GenQuarter(count int, rng Rand, wallProbability float64) Layout {
	if count < 0 {
		panic(fmt.Sprintf("layout: negative rect count %d", count))
	}
	if math.IsNaN(wallProbability) || wallProbability < 0 || wallProbability > 1 {
		panic(fmt.Sprintf("layout: wall probability %v outside [0, 1]", wallProbability))
	}

	l := make(Layout, 0, count)
	for n := 0; n < count; n++ {
		size := b.sampleSize(rng, wallProbability)
		dir := sampleAxis(rng)

		// Start somewhere inside the span already occupied along dir.
		offset := 0.0
		if slots := int(l.Extent(dir)) / b.cfg.Grid; slots > 0 {
			offset = float64(b.cfg.Grid * rng.Intn(slots))
		}

		r, _ := b.Cast(l, size, offset, dir)
		l = append(l, r)
	}

	if len(l) > 0 {
		// Rect 0 sits at the origin; push it, and whatever it touches, away
		// from the spawn point.
		b.Drag(l, 0, core.AxisX, b.cfg.OriginDrag)
		b.Drag(l, 0, core.AxisY, b.cfg.OriginDrag)

		for n := 0; n < b.cfg.ScatterDrags; n++ {
			i := rng.Intn(len(l))
			dir := sampleAxis(rng)
			dist := b.cfg.ScatterMin + b.cfg.Grid*rng.Intn((b.cfg.ScatterMax-b.cfg.ScatterMin)/b.cfg.Grid+1)
			b.Drag(l, i, dir, dist)
		}
	}

	return b.ClipOOB(l)
}

// Cast slides a rectangle of the given size along dir, starting offset units
// from the origin, until it overlaps nothing in l. Each probe jumps to the
// furthest far edge among the rectangles the candidate hits, so every probe
// strictly advances. The bool is false when the probe cap ran out and the
// overflow slot was used instead; that slot lies past every placed rectangle
// along dir, so the result never overlaps.
func (b *Builder) Cast(l Layout, size core.Vec2, offset float64, dir core.Vec2) (core.Rect, bool) {
	at := offset
	for step := 0; step < b.cfg.MaxCastSteps; step++ {
		candidate := core.Rect{Pos: dir.Scale(at), Size: size}

		next := at
		for _, r := range l {
			if candidate.Intersects(r) {
				next = math.Max(next, r.Max().Dot(dir))
			}
		}
		if next == at {
			return candidate, true
		}
		at = next
	}

	overflow := math.Max(offset+float64(len(l)*b.cfg.OverflowSpacing), l.Extent(dir))
	return core.Rect{Pos: dir.Scale(overflow), Size: size}, false
}
