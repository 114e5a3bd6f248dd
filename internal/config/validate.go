package config

import (
	"errors"
	"fmt"
)

// Validate reports the first configuration problem found. Invalid settings
// would break the non-overlap or bounds guarantees, so they are rejected
// rather than clamped.
func (c ArenaConfig) Validate() error {
	w := c.World
	if w.HalfWidth <= 0 || w.HalfHeight <= 0 {
		return fmt.Errorf("world: half extents must be positive, got %vx%v", w.HalfWidth, w.HalfHeight)
	}
	if w.HoleRadius < 0 {
		return fmt.Errorf("world: hole_radius must be non-negative, got %v", w.HoleRadius)
	}

	l := c.Layout
	if l.Grid <= 0 {
		return fmt.Errorf("layout: grid must be positive, got %d", l.Grid)
	}
	if l.MaxCastSteps <= 0 || l.MaxDragPasses <= 0 {
		return errors.New("layout: max_cast_steps and max_drag_passes must be positive")
	}
	if l.OriginDrag < 0 || l.ScatterDrags < 0 || l.OverflowSpacing < 0 {
		return errors.New("layout: origin_drag, scatter_drags and overflow_spacing must be non-negative")
	}
	if err := checkRange("layout.scatter", l.ScatterMin, l.ScatterMax, 0); err != nil {
		return err
	}
	if err := checkRange("layout.movable", l.Movable.Min, l.Movable.Max, 1); err != nil {
		return err
	}
	if err := checkRange("layout.wall.long", l.Wall.LongMin, l.Wall.LongMax, 1); err != nil {
		return err
	}
	if err := checkRange("layout.wall.short", l.Wall.ShortMin, l.Wall.ShortMax, 1); err != nil {
		return err
	}

	if err := c.validateTiers(); err != nil {
		return err
	}

	s := c.Scoring
	if s.ThresholdRatio < 0 || s.MovableTime < 0 || s.WallTime < 0 || s.WallDiagonal <= 0 {
		return errors.New("scoring: ratios and times must be non-negative, wall_diagonal positive")
	}

	p := c.Palette
	if p.Saturation < 0 || p.Saturation > 1 || p.Value < 0 || p.Value > 1 {
		return fmt.Errorf("palette: saturation and value must be in [0, 1], got %v/%v", p.Saturation, p.Value)
	}

	if c.Blocks.Movable.Density <= 0 {
		return fmt.Errorf("blocks.movable: density must be positive, got %v", c.Blocks.Movable.Density)
	}
	if c.Blocks.Wall.Density != 0 {
		return fmt.Errorf("blocks.wall: density must be 0, got %v", c.Blocks.Wall.Density)
	}
	return nil
}

func (c ArenaConfig) validateTiers() error {
	if len(c.Tiers) == 0 {
		return errors.New("tiers: at least one tier is required")
	}
	prev := 0
	for i, t := range c.Tiers {
		last := i == len(c.Tiers)-1
		switch {
		case t.MaxID == 0 && !last:
			return fmt.Errorf("tiers[%d]: only the last tier may be open-ended", i)
		case t.MaxID != 0 && last:
			return fmt.Errorf("tiers[%d]: last tier must be open-ended (max_id: 0)", i)
		case t.MaxID != 0 && t.MaxID <= prev:
			return fmt.Errorf("tiers[%d]: max_id %d must exceed %d", i, t.MaxID, prev)
		}
		if t.Count < 0 || t.CountPerLevel < 0 {
			return fmt.Errorf("tiers[%d]: counts must be non-negative", i)
		}
		if t.WallProbability < 0 || t.WallProbability > 1 {
			return fmt.Errorf("tiers[%d]: wall_probability must be in [0, 1], got %v", i, t.WallProbability)
		}
		prev = t.MaxID
	}
	return nil
}

func checkRange(name string, lo, hi, floor int) error {
	if lo < floor || hi < lo {
		return fmt.Errorf("%s: invalid range [%d, %d]", name, lo, hi)
	}
	return nil
}
