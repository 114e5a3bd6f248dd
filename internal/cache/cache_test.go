package cache

import (
	"bytes"
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockarena/internal/config"
	"github.com/vovakirdan/blockarena/internal/layout"
	"github.com/vovakirdan/blockarena/internal/level"
)

type countingGen struct {
	calls map[int]int
	synth *level.Synthesizer
}

func (g *countingGen) Generate(id int, rng layout.Rand) (*level.Level, error) {
	g.calls[id]++
	return g.synth.Generate(id, rng)
}

func newCountingGen(t *testing.T) *countingGen {
	t.Helper()
	synth, err := level.NewSynthesizer(config.DefaultArenaConfig())
	if err != nil {
		t.Fatalf("NewSynthesizer() error = %v", err)
	}
	return &countingGen{calls: map[int]int{}, synth: synth}
}

func TestGetIdempotent(t *testing.T) {
	gen := newCountingGen(t)
	c := New(gen, rand.New(rand.NewSource(1)), nil)

	first, err := c.Get(7)
	if err != nil {
		t.Fatalf("Get(7) error = %v", err)
	}
	if _, err := c.Get(8); err != nil {
		t.Fatalf("Get(8) error = %v", err)
	}
	second, err := c.Get(7)
	if err != nil {
		t.Fatalf("Get(7) error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("Get(7) returned different levels")
	}
	if gen.calls[7] != 1 {
		t.Errorf("level 7 generated %d times, expected 1", gen.calls[7])
	}
}

func TestGetReturnsCopies(t *testing.T) {
	c := New(newCountingGen(t), rand.New(rand.NewSource(2)), nil)

	a, err := c.Get(3)
	if err != nil {
		t.Fatalf("Get(3) error = %v", err)
	}
	if len(a.Blocks) == 0 {
		t.Fatal("level 3 has no blocks")
	}
	original := a.Blocks[0]
	a.Blocks[0].Density = 42
	a.PointThreshold = -1

	b, _ := c.Get(3)
	if b.Blocks[0] != original || b.PointThreshold < 0 {
		t.Error("mutating a returned level changed the cached one")
	}
}

func TestGetInvalidID(t *testing.T) {
	c := New(newCountingGen(t), rand.New(rand.NewSource(1)), nil)

	_, err := c.Get(0)
	if !errors.Is(err, level.ErrInvalidLevelID) {
		t.Errorf("Get(0) error = %v, expected ErrInvalidLevelID", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after a failed Get, expected 0", c.Len())
	}
}

func TestIDsInsertionOrder(t *testing.T) {
	c := New(newCountingGen(t), rand.New(rand.NewSource(1)), nil)

	for _, id := range []int{5, 2, 9, 2, 5} {
		if _, err := c.Get(id); err != nil {
			t.Fatalf("Get(%d) error = %v", id, err)
		}
	}

	if got := c.IDs(); !reflect.DeepEqual(got, []int{5, 2, 9}) {
		t.Errorf("IDs() = %v, expected [5 2 9]", got)
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", c.Len())
	}
}

func TestGetLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	c := New(newCountingGen(t), rand.New(rand.NewSource(1)), logger)
	c.Get(1)
	c.Get(1)

	out := buf.String()
	if !strings.Contains(out, "level generated") || !strings.Contains(out, "level cache hit") {
		t.Errorf("log output missing generate/hit lines:\n%s", out)
	}
}
