package tui

import (
	"errors"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockarena/internal/cache"
	"github.com/vovakirdan/blockarena/internal/config"
	"github.com/vovakirdan/blockarena/internal/core"
	"github.com/vovakirdan/blockarena/internal/level"
	"github.com/vovakirdan/blockarena/internal/progress"
	"github.com/vovakirdan/blockarena/internal/storage"
)

func TestRasterPlacesBlocks(t *testing.T) {
	world := config.WorldConfig{HalfWidth: 10, HalfHeight: 10}
	wallColor := core.RGB(200, 0, 0)
	movColor := core.RGB(0, 200, 0)
	lvl := &level.Level{
		Blocks: []level.Block{
			{Center: core.Vec3{X: 2.5, Y: 2.5}, Size: core.V2(5, 5), Color: movColor, Density: 1},
			{Center: core.Vec3{X: -7.5, Y: -5}, Size: core.V2(5, 2), Color: wallColor},
		},
		AccentColor: core.RGB(255, 255, 0),
	}
	s := core.NewScreen(20, 20)

	Raster(lvl, world, s)

	// One cell per world unit; row 0 is y = +10.
	tests := []struct {
		name  string
		x, y  int
		rune  rune
		color core.Color
	}{
		{"movable top-left", 10, 5, MovableRune, movColor},
		{"movable bottom-right", 14, 9, MovableRune, movColor},
		{"wall", 0, 14, WallRune, wallColor},
		{"wall far corner", 4, 15, WallRune, wallColor},
		{"spawn", 10, 9, SpawnRune, lvl.AccentColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := s.GetCell(tt.x, tt.y)
			if cell.Rune != tt.rune || cell.Color != tt.color {
				t.Errorf("cell (%d,%d) = %q %v, expected %q %v", tt.x, tt.y, cell.Rune, cell.Color, tt.rune, tt.color)
			}
		})
	}

	if got := s.Get(15, 5); got != ' ' {
		t.Errorf("cell right of the movable block = %q, expected blank", got)
	}
	if got := s.Get(10, 4); got != ' ' {
		t.Errorf("cell above the movable block = %q, expected blank", got)
	}
}

func TestRasterEmptyScreen(t *testing.T) {
	lvl := &level.Level{Blocks: []level.Block{{Size: core.V2(5, 5)}}}
	Raster(lvl, config.WorldConfig{HalfWidth: 10, HalfHeight: 10}, core.NewScreen(0, 0))
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "cd", core.RGB(1, 2, 3))
	s.SetColored(0, 1, 'x', core.RGB(9, 9, 9))

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() returned %d lines, expected 2", len(lines))
	}
	for _, want := range []string{"ab", "cd", "x"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() output missing %q", want)
		}
	}
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper(DefaultViewerKeyMap())

	tests := []struct {
		msg      tea.KeyMsg
		expected core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionNextLevel},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")}, core.ActionNextLevel},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionPrevLevel},
		{tea.KeyMsg{Type: tea.KeyHome}, core.ActionFirstLevel},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}, core.ActionScreenshot},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")}, core.ActionHelp},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}, core.ActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKey(tt.msg); got != tt.expected {
			t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}

func newTestViewer(t *testing.T, startID int) ViewerModel {
	t.Helper()
	cfg := config.DefaultArenaConfig()
	synth, err := level.NewSynthesizer(cfg)
	if err != nil {
		t.Fatalf("NewSynthesizer() error = %v", err)
	}
	levels := cache.New(synth, rand.New(rand.NewSource(1)), nil)
	rt := core.RuntimeConfig{ScreenW: 70, ScreenH: 30, Seed: 1}
	return NewViewerModel(levels, cfg.World, rt, startID).WithScreenshotDir(t.TempDir())
}

func press(t *testing.T, m ViewerModel, msg tea.KeyMsg) (ViewerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	vm, ok := next.(ViewerModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected ViewerModel", next)
	}
	return vm, cmd
}

func TestViewerNavigation(t *testing.T) {
	m := newTestViewer(t, 3)
	if m.LevelID() != 3 {
		t.Fatalf("LevelID() = %d, expected 3", m.LevelID())
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.LevelID() != 4 {
		t.Errorf("after next LevelID() = %d, expected 4", m.LevelID())
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyHome})
	if m.LevelID() != 1 {
		t.Errorf("after home LevelID() = %d, expected 1", m.LevelID())
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.LevelID() != 1 {
		t.Errorf("prev at level 1 moved to %d", m.LevelID())
	}

	if !strings.Contains(m.View(), "Level 1") {
		t.Error("View() missing the level header")
	}
}

func TestViewerStartClamped(t *testing.T) {
	if m := newTestViewer(t, 0); m.LevelID() != 1 {
		t.Errorf("LevelID() = %d, expected start clamped to 1", m.LevelID())
	}
}

func TestViewerQuit(t *testing.T) {
	m := newTestViewer(t, 1)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key did not produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestViewerScreenshot(t *testing.T) {
	m := newTestViewer(t, 2)
	dir := m.shotDir

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	if cmd == nil {
		t.Error("screenshot returned no status timer")
	}
	if !strings.HasPrefix(m.Status(), "saved ") {
		t.Fatalf("Status() = %q, expected saved message", m.Status())
	}

	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("screenshot dir has %d entries (err %v), expected 1", len(entries), err)
	}
	if !strings.HasPrefix(entries[0].Name(), "level_002_") {
		t.Errorf("screenshot name = %q", entries[0].Name())
	}

	next, _ := m.Update(clearStatusMsg(m.statusSeq))
	if next.(ViewerModel).Status() != "" {
		t.Error("status not cleared by its timer")
	}
}

func TestViewerResize(t *testing.T) {
	m := newTestViewer(t, 1)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	vm := next.(ViewerModel)
	if vm.screen.Width() != 40 || vm.screen.Height() != 12-chromeRows {
		t.Errorf("screen = %dx%d after resize, expected 40x%d", vm.screen.Width(), vm.screen.Height(), 12-chromeRows)
	}
}

type fakeRuns struct {
	byLevel map[int][]storage.RunEntry
	err     error
}

func (f fakeRuns) BestRuns(levelID, limit int) ([]storage.RunEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byLevel[levelID], nil
}

func TestScoreboardLevels(t *testing.T) {
	src := fakeRuns{byLevel: map[int][]storage.RunEntry{
		1: {
			{Profile: "bob", Run: progress.Run{LevelID: 1, Elapsed: 2 * time.Second, Completed: true}},
			{Profile: "alice", Run: progress.Run{LevelID: 1, Elapsed: 3 * time.Second, Completed: true}},
		},
		2: {
			{Profile: "carol", Run: progress.Run{LevelID: 2, Elapsed: time.Second, Completed: true}},
		},
	}}

	m := NewScoreboardModel(src, 1, 100, 30)
	if len(m.Runs()) != 2 {
		t.Fatalf("Runs() = %d entries, expected 2", len(m.Runs()))
	}
	if !strings.Contains(m.View(), "bob") {
		t.Error("View() missing profile name")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(ScoreboardModel)
	if m.LevelID() != 2 || len(m.Runs()) != 1 {
		t.Errorf("after next: level %d with %d runs, expected level 2 with 1", m.LevelID(), len(m.Runs()))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(ScoreboardModel)
	if !strings.Contains(m.View(), "No completed runs") {
		t.Error("View() for an empty level missing placeholder")
	}
}

func TestScoreboardLoadError(t *testing.T) {
	m := NewScoreboardModel(fakeRuns{err: errors.New("disk on fire")}, 1, 60, 20)
	if !strings.Contains(m.View(), "disk on fire") {
		t.Error("View() does not surface the load error")
	}
}
