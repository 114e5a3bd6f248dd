// Package level turns generated layouts into playable levels: blocks with
// physics presets and colors, plus the completion threshold and time budget.
package level

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/vovakirdan/blockarena/internal/config"
	"github.com/vovakirdan/blockarena/internal/core"
	"github.com/vovakirdan/blockarena/internal/layout"
)

// ErrInvalidLevelID is returned for level ids below 1.
var ErrInvalidLevelID = errors.New("level: id must be at least 1")

// Level is a generated arena. Levels are not mutated after Generate returns.
type Level struct {
	ID             int           `yaml:"id"`
	Blocks         []Block       `yaml:"blocks"`
	PointThreshold float64       `yaml:"point_threshold"` // Score needed to complete the level
	SpawnPoint     core.Vec3     `yaml:"spawn_point"`
	Duration       time.Duration `yaml:"duration"`
	BackColor      core.Color    `yaml:"back_color"`
	AccentColor    core.Color    `yaml:"accent_color"`
}

// Counts returns the number of movable blocks and walls.
func (l *Level) Counts() (movable, walls int) {
	for _, b := range l.Blocks {
		if b.IsWall() {
			walls++
		} else {
			movable++
		}
	}
	return movable, walls
}

// Score sums the coverage of every movable block. positions holds the
// current center of each block, indexed like Blocks; missing entries count
// as resting.
func (l *Level) Score(positions []core.Vec2) float64 {
	score := 0.0
	for i, b := range l.Blocks {
		if i >= len(positions) {
			break
		}
		score += b.Coverage(positions[i])
	}
	return score
}

// Complete reports whether score reaches the threshold.
func (l *Level) Complete(score float64) bool {
	return score >= l.PointThreshold
}

// Clone returns a deep copy.
func (l *Level) Clone() *Level {
	c := *l
	c.Blocks = slices.Clone(l.Blocks)
	return &c
}

// Synthesizer generates levels from an arena configuration.
type Synthesizer struct {
	cfg     config.ArenaConfig
	builder *layout.Builder
}

// NewSynthesizer validates cfg and returns a synthesizer for it.
func NewSynthesizer(cfg config.ArenaConfig) (*Synthesizer, error) {
	builder, err := layout.NewBuilder(cfg)
	if err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}
	return &Synthesizer{cfg: cfg, builder: builder}, nil
}

// Config returns the configuration the synthesizer was built with.
func (s *Synthesizer) Config() config.ArenaConfig {
	return s.cfg
}

// Generate builds level id, drawing all randomness from rng.
func (s *Synthesizer) Generate(id int, rng layout.Rand) (*Level, error) {
	params, ok := s.cfg.ParamsFor(id)
	if !ok {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLevelID, id)
	}

	palette := NewPalette(360*rng.Float64(), s.cfg.Palette)
	rects := s.builder.Gen(params.Count, rng, params.WallProbability)

	lvl := &Level{
		ID:          id,
		Blocks:      make([]Block, 0, len(rects)),
		SpawnPoint:  core.Vec3{Z: s.cfg.Blocks.SpawnDepth},
		BackColor:   palette.Background,
		AccentColor: palette.Accent,
	}

	blocks := s.cfg.Blocks
	for _, r := range rects {
		if r.Diagonal() >= s.cfg.Scoring.WallDiagonal {
			lvl.Blocks = append(lvl.Blocks, newBlock(r, blocks.Depth, blocks.Wall, palette.Wall, palette.Wall))
		} else {
			lvl.Blocks = append(lvl.Blocks, newBlock(r, blocks.Depth, blocks.Movable, palette.Primary, palette.Accent))
		}
	}

	movable, walls := lvl.Counts()
	lvl.PointThreshold, lvl.Duration = Budget(movable, walls, s.cfg.Scoring)
	return lvl, nil
}

// Budget returns the point threshold and time budget for a block mix.
func Budget(movable, walls int, cfg config.ScoringConfig) (float64, time.Duration) {
	threshold := float64(movable) * cfg.ThresholdRatio
	duration := time.Duration(movable)*cfg.MovableTime + time.Duration(walls)*cfg.WallTime
	return threshold, duration
}
