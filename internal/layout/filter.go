package layout

import "github.com/vovakirdan/blockarena/internal/core"

// far stands in for an unbounded strip edge.
const far = 1e9

// ClipStrips returns the two out-of-bounds regions: everything beyond +Y and
// everything beyond +X. The quarter only grows toward positive coordinates,
// so these are the only sides it can spill over.
func (b *Builder) ClipStrips() [2]core.Rect {
	w, h := b.world.HalfWidth, b.world.HalfHeight
	return [2]core.Rect{
		core.NewRect(-far, h, 2*far, far),
		core.NewRect(w, -far, far, 2*far),
	}
}

// ClipOOB drops every rectangle that reaches into either clip strip.
func (b *Builder) ClipOOB(l Layout) Layout {
	strips := b.ClipStrips()
	return l.Filter(func(r core.Rect) bool {
		return !r.Intersects(strips[0]) && !r.Intersects(strips[1])
	})
}

// CharacterHole drops every rectangle that comes within radius of the origin.
func CharacterHole(l Layout, radius float64) Layout {
	return l.Filter(func(r core.Rect) bool {
		return r.DistanceTo(core.Vec2{}) >= radius
	})
}
