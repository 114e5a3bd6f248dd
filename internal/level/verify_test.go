package level

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/blockarena/internal/config"
	"github.com/vovakirdan/blockarena/internal/core"
)

func TestVerifyGeneratedLevels(t *testing.T) {
	s := newTestSynth(t)

	for id := 1; id <= 30; id++ {
		lvl, err := s.Generate(id, rand.New(rand.NewSource(int64(id*7))))
		if err != nil {
			t.Fatalf("Generate(%d) error = %v", id, err)
		}
		if vs := Verify(lvl, s.Config()); len(vs) > 0 {
			t.Errorf("level %d: %d violations, first: %v", id, len(vs), vs[0])
		}
	}
}

func mirrored(x, y, w, h, density float64) []Block {
	r := core.NewRect(x, y, w, h)
	rects := []core.Rect{r, r.MirrorX(), r.MirrorY(), r.MirrorX().MirrorY()}
	blocks := make([]Block, len(rects))
	for i, rr := range rects {
		blocks[i] = Block{Center: rr.Center().Extend(0), Size: rr.Size, Density: density}
	}
	return blocks
}

func TestVerifyDetects(t *testing.T) {
	cfg := config.DefaultArenaConfig()

	tests := []struct {
		name   string
		blocks []Block
		kind   string
	}{
		{
			name:   "overlap",
			blocks: append(mirrored(100, 100, 20, 20, 1), mirrored(110, 110, 20, 20, 1)...),
			kind:   ViolationOverlap,
		},
		{
			name:   "bounds",
			blocks: mirrored(340, 100, 20, 20, 1),
			kind:   ViolationBounds,
		},
		{
			name:   "clearance",
			blocks: mirrored(10, 10, 20, 20, 1),
			kind:   ViolationClearance,
		},
		{
			name:   "symmetry",
			blocks: mirrored(100, 100, 20, 20, 1)[:3],
			kind:   ViolationSymmetry,
		},
		{
			name:   "classification",
			blocks: mirrored(100, 100, 100, 20, 1),
			kind:   ViolationClass,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl := &Level{Blocks: tt.blocks}
			movable, walls := lvl.Counts()
			lvl.PointThreshold, lvl.Duration = Budget(movable, walls, cfg.Scoring)

			found := false
			for _, v := range Verify(lvl, cfg) {
				if v.Kind == tt.kind {
					found = true
				}
			}
			if !found {
				t.Errorf("Verify() did not report %s", tt.kind)
			}
		})
	}
}

func TestVerifyBudget(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	lvl := &Level{
		Blocks:         mirrored(100, 100, 20, 20, 1),
		PointThreshold: 1,
		Duration:       time.Hour,
	}

	vs := Verify(lvl, cfg)
	if len(vs) != 1 || vs[0].Kind != ViolationBudget {
		t.Errorf("Verify() = %v, expected a single budget violation", vs)
	}
}
