package tui

import (
	"math"

	"github.com/vovakirdan/blockarena/internal/config"
	"github.com/vovakirdan/blockarena/internal/core"
	"github.com/vovakirdan/blockarena/internal/level"
)

// Glyphs used by Raster.
const (
	WallRune    = '█'
	MovableRune = '▓'
	SpawnRune   = '@'
)

// Raster draws lvl onto s, scaling the world bounds to the full screen.
// World +Y points up, so rows are flipped.
func Raster(lvl *level.Level, world config.WorldConfig, s *core.Screen) {
	s.Clear()
	w, h := s.Width(), s.Height()
	if w == 0 || h == 0 {
		return
	}

	sx := float64(w) / (2 * world.HalfWidth)
	sy := float64(h) / (2 * world.HalfHeight)
	col := func(x float64) int { return int(math.Floor((x + world.HalfWidth) * sx)) }
	row := func(y float64) int { return h - 1 - int(math.Floor((y+world.HalfHeight)*sy)) }

	for _, b := range lvl.Blocks {
		r := b.Rect()
		m := r.Max()
		// Far edges are exclusive; nudge them back inside the rect.
		x0, x1 := col(r.Pos.X), max(col(m.X-1e-9), col(r.Pos.X))
		y0, y1 := row(m.Y-1e-9), max(row(r.Pos.Y), row(m.Y-1e-9))

		glyph := rune(MovableRune)
		if b.IsWall() {
			glyph = WallRune
		}
		s.FillCells(x0, y0, x1, y1, glyph, b.Color)
	}

	sp := lvl.SpawnPoint.XY()
	s.SetColored(col(sp.X), row(sp.Y), SpawnRune, lvl.AccentColor)
}
