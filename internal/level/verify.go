package level

import (
	"fmt"
	"math"

	"github.com/vovakirdan/blockarena/internal/config"
	"github.com/vovakirdan/blockarena/internal/core"
)

// Violation kinds reported by Verify.
const (
	ViolationOverlap   = "overlap"
	ViolationBounds    = "bounds"
	ViolationClearance = "clearance"
	ViolationSymmetry  = "symmetry"
	ViolationClass     = "classification"
	ViolationBudget    = "budget"
)

// Violation is one structural problem found in a level.
type Violation struct {
	Kind   string
	Detail string
}

func (v Violation) String() string {
	return v.Kind + ": " + v.Detail
}

// Verify checks lvl against the structural guarantees of generation and
// returns every problem found.
func Verify(lvl *Level, cfg config.ArenaConfig) []Violation {
	var out []Violation
	add := func(kind, format string, args ...any) {
		out = append(out, Violation{Kind: kind, Detail: fmt.Sprintf(format, args...)})
	}

	rects := make([]core.Rect, len(lvl.Blocks))
	set := make(map[core.Rect]bool, len(lvl.Blocks))
	for i, b := range lvl.Blocks {
		rects[i] = b.Rect()
		set[rects[i]] = true
	}

	w := cfg.World
	for i, r := range rects {
		for j := i + 1; j < len(rects); j++ {
			if r.Intersects(rects[j]) {
				add(ViolationOverlap, "blocks %d and %d", i, j)
			}
		}

		m := r.Max()
		if r.Pos.X < -w.HalfWidth || m.X > w.HalfWidth || r.Pos.Y < -w.HalfHeight || m.Y > w.HalfHeight {
			add(ViolationBounds, "block %d at %v size %v", i, r.Pos, r.Size)
		}
		if d := r.DistanceTo(core.Vec2{}); d < w.HoleRadius {
			add(ViolationClearance, "block %d is %.1f from spawn", i, d)
		}
		if !set[r.MirrorX()] || !set[r.MirrorY()] {
			add(ViolationSymmetry, "block %d has no mirror image", i)
		}

		wall := r.Diagonal() >= cfg.Scoring.WallDiagonal
		if lvl.Blocks[i].IsWall() != wall {
			add(ViolationClass, "block %d with diagonal %.1f has density %v", i, r.Diagonal(), lvl.Blocks[i].Density)
		}
	}

	movable, walls := lvl.Counts()
	threshold, duration := Budget(movable, walls, cfg.Scoring)
	if math.Abs(lvl.PointThreshold-threshold) > 1e-9 || lvl.Duration != duration {
		add(ViolationBudget, "threshold %v duration %v, expected %v %v", lvl.PointThreshold, lvl.Duration, threshold, duration)
	}
	return out
}
