package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML ArenaConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}

	if !reflect.DeepEqual(fromYAML, DefaultArenaConfig()) {
		t.Errorf("embedded YAML and DefaultArenaConfig() differ:\nyaml: %+v\ncode: %+v", fromYAML, DefaultArenaConfig())
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultArenaConfig().Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v, expected nil", err)
	}
}

func TestParamsFor(t *testing.T) {
	cfg := DefaultArenaConfig()

	tests := []struct {
		id        int
		count     int
		wallProb  float64
		available bool
	}{
		{0, 0, 0, false},
		{-3, 0, 0, false},
		{1, 5, 0.0, true},
		{2, 5, 0.0, true},
		{3, 10, 0.03, true},
		{6, 10, 0.03, true},
		{7, 20, 0.06, true},
		{15, 20, 0.06, true},
		{16, 40, 0.1, true},
		{20, 40, 0.1, true},
		{21, 42, 0.1, true},
		{50, 100, 0.1, true},
	}

	for _, tc := range tests {
		p, ok := cfg.ParamsFor(tc.id)
		if ok != tc.available {
			t.Errorf("ParamsFor(%d) ok = %v, expected %v", tc.id, ok, tc.available)
			continue
		}
		if p.Count != tc.count || p.WallProbability != tc.wallProb {
			t.Errorf("ParamsFor(%d) = %+v, expected count %d wall %v", tc.id, p, tc.count, tc.wallProb)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *ArenaConfig)
	}{
		{"zero half width", func(c *ArenaConfig) { c.World.HalfWidth = 0 }},
		{"negative hole", func(c *ArenaConfig) { c.World.HoleRadius = -1 }},
		{"zero grid", func(c *ArenaConfig) { c.Layout.Grid = 0 }},
		{"zero cast steps", func(c *ArenaConfig) { c.Layout.MaxCastSteps = 0 }},
		{"inverted movable range", func(c *ArenaConfig) { c.Layout.Movable = SizeRange{Min: 50, Max: 10} }},
		{"zero wall short side", func(c *ArenaConfig) { c.Layout.Wall.ShortMin = 0 }},
		{"no tiers", func(c *ArenaConfig) { c.Tiers = nil }},
		{"closed last tier", func(c *ArenaConfig) { c.Tiers = []Tier{{MaxID: 5, Count: 3}} }},
		{"open middle tier", func(c *ArenaConfig) {
			c.Tiers = []Tier{{MaxID: 0, Count: 3}, {MaxID: 0, Count: 4}}
		}},
		{"unordered tiers", func(c *ArenaConfig) {
			c.Tiers = []Tier{{MaxID: 6, Count: 3}, {MaxID: 4, Count: 3}, {Count: 4}}
		}},
		{"negative count", func(c *ArenaConfig) { c.Tiers[0].Count = -1 }},
		{"probability above one", func(c *ArenaConfig) { c.Tiers[1].WallProbability = 1.5 }},
		{"zero wall diagonal", func(c *ArenaConfig) { c.Scoring.WallDiagonal = 0 }},
		{"saturation out of range", func(c *ArenaConfig) { c.Palette.Saturation = 2 }},
		{"static movable", func(c *ArenaConfig) { c.Blocks.Movable.Density = 0 }},
		{"dense wall", func(c *ArenaConfig) { c.Blocks.Wall.Density = 1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultArenaConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, expected an error")
			}
		})
	}
}

func TestLoadArenaCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "arena.yaml")
	data := []byte("world:\n  hole_radius: 48\nscoring:\n  wall_time: 3s\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadArena(path)
	if err != nil {
		t.Fatalf("LoadArena() failed: %v", err)
	}

	if cfg.World.HoleRadius != 48 {
		t.Errorf("HoleRadius = %v, expected 48", cfg.World.HoleRadius)
	}
	if cfg.Scoring.WallTime != 3*time.Second {
		t.Errorf("WallTime = %v, expected 3s", cfg.Scoring.WallTime)
	}
	// Keys absent from the file keep their defaults
	if cfg.World.HalfWidth != 350 {
		t.Errorf("HalfWidth = %v, expected default 350", cfg.World.HalfWidth)
	}
}

func TestLoadArenaErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadArena(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadArena() with missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [1, 2"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := LoadArena(bad); err == nil {
		t.Error("LoadArena() with malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("layout:\n  grid: 0\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := LoadArena(invalid); err == nil {
		t.Error("LoadArena() with invalid settings should fail")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyNormal, false},
		{"normal", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestApplyArenaPreset(t *testing.T) {
	base := DefaultArenaConfig()

	easy := DefaultArenaConfig()
	ApplyArenaPreset(&easy, DifficultyEasy)
	if easy.Tiers[3].WallProbability != 0.05 {
		t.Errorf("easy wall probability = %v, expected 0.05", easy.Tiers[3].WallProbability)
	}
	if easy.Tiers[3].Count != base.Tiers[3].Count {
		t.Errorf("easy should keep counts, got %d", easy.Tiers[3].Count)
	}

	hard := DefaultArenaConfig()
	ApplyArenaPreset(&hard, DifficultyHard)
	if hard.Tiers[2].Count != 25 {
		t.Errorf("hard tier count = %d, expected 25", hard.Tiers[2].Count)
	}
	if p, _ := hard.ParamsFor(30); p.Count != 60 {
		t.Errorf("hard ParamsFor(30).Count = %d, expected 60", p.Count)
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset produced invalid config: %v", err)
	}

	normal := DefaultArenaConfig()
	ApplyArenaPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, base) {
		t.Error("normal preset should not change the config")
	}

	// The preset must not alias the caller's original tier slice
	shared := DefaultArenaConfig()
	orig := shared.Tiers
	ApplyArenaPreset(&shared, DifficultyHard)
	if orig[0].Count != base.Tiers[0].Count {
		t.Error("ApplyArenaPreset mutated the original tier slice")
	}
}
