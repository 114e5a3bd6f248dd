// Package cache memoizes generated levels by id for one controller.
package cache

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockarena/internal/layout"
	"github.com/vovakirdan/blockarena/internal/level"
)

// Generator produces a level for an id. *level.Synthesizer implements it.
type Generator interface {
	Generate(id int, rng layout.Rand) (*level.Level, error)
}

// LevelCache hands out one fixed level per id. A level is generated the
// first time its id is requested and never again; entries are never evicted.
// Not safe for concurrent use.
type LevelCache struct {
	gen    Generator
	rng    layout.Rand
	logger *log.Logger
	levels []*level.Level // insertion order
}

// New returns an empty cache. A nil logger discards output.
func New(gen Generator, rng layout.Rand, logger *log.Logger) *LevelCache {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &LevelCache{gen: gen, rng: rng, logger: logger}
}

// Get returns a copy of level id, generating it on first use.
func (c *LevelCache) Get(id int) (*level.Level, error) {
	for _, lvl := range c.levels {
		if lvl.ID == id {
			c.logger.Debug("level cache hit", "id", id)
			return lvl.Clone(), nil
		}
	}

	lvl, err := c.gen.Generate(id, c.rng)
	if err != nil {
		return nil, fmt.Errorf("cache: generate level %d: %w", id, err)
	}
	movable, walls := lvl.Counts()
	c.logger.Debug("level generated", "id", id, "movable", movable, "walls", walls)

	c.levels = append(c.levels, lvl)
	return lvl.Clone(), nil
}

// Len returns the number of cached levels.
func (c *LevelCache) Len() int {
	return len(c.levels)
}

// IDs returns the cached ids in generation order.
func (c *LevelCache) IDs() []int {
	ids := make([]int, len(c.levels))
	for i, lvl := range c.levels {
		ids[i] = lvl.ID
	}
	return ids
}
