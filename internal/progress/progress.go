// Package progress tracks how far a player has come: the current level,
// collected golden apples and per-level attempt history.
package progress

import (
	"maps"
	"time"
)

// Run is the outcome of one attempt at a level.
type Run struct {
	LevelID   int
	Apples    int
	Elapsed   time.Duration
	Completed bool
}

// LevelProgress is the attempt history of one level.
type LevelProgress struct {
	Completed bool
	Attempts  int
	BestTime  time.Duration // Fastest completion; 0 until completed
	LastTime  time.Duration
}

// Progress is a player's save state. The level generator only reads
// CurrentLevel.
type Progress struct {
	CurrentLevel int
	GoldenApples int
	Levels       map[int]LevelProgress
}

// New returns a fresh save starting at level 1.
func New() *Progress {
	return &Progress{CurrentLevel: 1, Levels: map[int]LevelProgress{}}
}

// Apply records a run. Completing the current level advances to the next one
// and banks the run's apples.
func (p *Progress) Apply(run Run) {
	p.Replay(run)
	if !run.Completed {
		return
	}
	p.GoldenApples += run.Apples
	if run.LevelID == p.CurrentLevel {
		p.Advance()
	}
}

// Replay updates the per-level history only. Used when rebuilding a save
// from stored runs.
func (p *Progress) Replay(run Run) {
	if p.Levels == nil {
		p.Levels = map[int]LevelProgress{}
	}
	lp := p.Levels[run.LevelID]
	lp.Attempts++
	lp.LastTime = run.Elapsed
	if run.Completed {
		if !lp.Completed || run.Elapsed < lp.BestTime {
			lp.BestTime = run.Elapsed
		}
		lp.Completed = true
	}
	p.Levels[run.LevelID] = lp
}

// Advance moves to the next level.
func (p *Progress) Advance() {
	p.CurrentLevel++
}

// Level returns the history of level id.
func (p *Progress) Level(id int) LevelProgress {
	return p.Levels[id]
}

// CompletedCount returns how many distinct levels have been completed.
func (p *Progress) CompletedCount() int {
	n := 0
	for _, lp := range p.Levels {
		if lp.Completed {
			n++
		}
	}
	return n
}

// Reset returns the save to its initial state.
func (p *Progress) Reset() {
	*p = *New()
}

// Clone returns a deep copy.
func (p *Progress) Clone() *Progress {
	c := *p
	c.Levels = maps.Clone(p.Levels)
	if c.Levels == nil {
		c.Levels = map[int]LevelProgress{}
	}
	return &c
}
