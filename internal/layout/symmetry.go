package layout

import "github.com/vovakirdan/blockarena/internal/core"

// Gen builds a four-way symmetric layout: one quarter mirrored across both
// axes, with the spawn clearing cut from the merged set.
func (b *Builder) Gen(count int, rng Rand, wallProbability float64) Layout {
	quarter := b.GenQuarter(count, rng, wallProbability)
	return CharacterHole(Mirror4(quarter), b.world.HoleRadius)
}

// Mirror4 concatenates l with its reflections: across X, across Y, then both.
func Mirror4(l Layout) Layout {
	out := make(Layout, 0, 4*len(l))
	out = append(out, l...)
	out = append(out, MirrorX(l)...)
	out = append(out, MirrorY(l)...)
	out = append(out, MirrorX(MirrorY(l))...)
	return out
}

// MirrorX reflects every rectangle across the vertical axis.
func MirrorX(l Layout) Layout {
	return mapRects(l, core.Rect.MirrorX)
}

// MirrorY reflects every rectangle across the horizontal axis.
func MirrorY(l Layout) Layout {
	return mapRects(l, core.Rect.MirrorY)
}

func mapRects(l Layout, f func(core.Rect) core.Rect) Layout {
	out := make(Layout, len(l))
	for i, r := range l {
		out[i] = f(r)
	}
	return out
}
