package level

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/blockarena/internal/config"
	"github.com/vovakirdan/blockarena/internal/core"
)

// Palette is the color scheme of one level.
type Palette struct {
	Primary    core.Color // Movable blocks at rest
	Accent     core.Color // Movable blocks fully pushed, UI accents
	Wall       core.Color
	Background core.Color
}

// NewPalette derives a palette from a primary hue in degrees.
func NewPalette(hue float64, cfg config.PaletteConfig) Palette {
	return Palette{
		Primary:    hsv(hue, cfg),
		Accent:     hsv(hue+cfg.AccentOffset, cfg),
		Wall:       hsv(hue+cfg.WallOffset, cfg),
		Background: cfg.Background,
	}
}

func hsv(hue float64, cfg config.PaletteConfig) core.Color {
	return fromColorful(colorful.Hsv(math.Mod(hue, 360), cfg.Saturation, cfg.Value))
}

func toColorful(c core.Color) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) core.Color {
	r, g, b := c.Clamped().RGB255()
	return core.RGB(r, g, b)
}

func blend(from, to core.Color, t float64) core.Color {
	switch t {
	case 0:
		return from
	case 1:
		return to
	}
	return fromColorful(toColorful(from).BlendHcl(toColorful(to), t))
}
