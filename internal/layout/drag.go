package layout

import "github.com/vovakirdan/blockarena/internal/core"

// Drag pushes l[index] distance units along dir, one unit at a time, carrying
// along every rectangle it would run into, transitively. l is mutated in place.
//
// Each unit step grows the set of dragged rectangles pass by pass until no
// moved rectangle hits a resting one, then moves the whole set. A step whose
// propagation is still growing after MaxDragPasses passes is skipped and Drag
// reports false; the layout is left overlap-free either way.
func (b *Builder) Drag(l Layout, index int, dir core.Vec2, distance int) bool {
	if index < 0 || index >= len(l) {
		return false
	}

	ok := true
	dragging := make([]bool, len(l))
	for step := 0; step < distance; step++ {
		clear(dragging)
		dragging[index] = true
		set := []int{index}

		if !b.propagate(l, dragging, &set, dir) {
			ok = false
			continue
		}
		for _, i := range set {
			l[i] = l[i].Translate(dir)
		}
	}
	return ok
}

// propagate extends set with every rectangle reachable from it by a one unit
// move along dir. Only rectangles added by the previous pass are re-probed.
func (b *Builder) propagate(l Layout, dragging []bool, set *[]int, dir core.Vec2) bool {
	frontier := *set
	for pass := 0; pass < b.cfg.MaxDragPasses; pass++ {
		var added []int
		for _, i := range frontier {
			moved := l[i].Translate(dir)
			for j, other := range l {
				if dragging[j] || !moved.Intersects(other) {
					continue
				}
				dragging[j] = true
				added = append(added, j)
			}
		}
		if len(added) == 0 {
			return true
		}
		*set = append(*set, added...)
		frontier = added
	}
	return false
}
