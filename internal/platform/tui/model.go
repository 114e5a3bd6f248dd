package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockarena/internal/cache"
	"github.com/vovakirdan/blockarena/internal/config"
	"github.com/vovakirdan/blockarena/internal/core"
	"github.com/vovakirdan/blockarena/internal/level"
)

// chromeRows is the number of rows taken by the header and help bar.
const chromeRows = 2

// ViewerModel is the Bubble Tea model for browsing generated levels.
type ViewerModel struct {
	levels    *cache.LevelCache
	world     config.WorldConfig
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      ViewerKeyMap
	keyMapper *KeyMapper
	help      help.Model
	shotDir   string

	id        int
	current   *level.Level
	err       error
	status    string
	statusSeq int
	quitting  bool
}

// NewViewerModel creates a viewer showing startID first.
func NewViewerModel(levels *cache.LevelCache, world config.WorldConfig, cfg core.RuntimeConfig, startID int) ViewerModel {
	keys := DefaultViewerKeyMap()
	home, _ := os.UserHomeDir()

	m := ViewerModel{
		levels:    levels,
		world:     world,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-chromeRows, 0)),
		config:    cfg,
		keys:      keys,
		keyMapper: NewKeyMapper(keys),
		help:      help.New(),
		shotDir:   filepath.Join(home, ".arena", "screenshots"),
	}
	m.load(max(startID, 1))
	return m
}

// WithScreenshotDir returns a copy that saves screenshots under dir.
func (m ViewerModel) WithScreenshotDir(dir string) ViewerModel {
	m.shotDir = dir
	return m
}

// LevelID returns the id of the level on screen.
func (m ViewerModel) LevelID() int {
	return m.id
}

// Status returns the current status line.
func (m ViewerModel) Status() string {
	return m.status
}

// Init initializes the model.
func (m ViewerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case clearStatusMsg:
		if int(msg) == m.statusSeq {
			m.status = ""
		}
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m ViewerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNextLevel:
		m.load(m.id + 1)
	case core.ActionPrevLevel:
		if m.id > 1 {
			m.load(m.id - 1)
		}
	case core.ActionFirstLevel:
		m.load(1)
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionScreenshot:
		path, err := m.saveScreenshot()
		if err != nil {
			return m.setStatus("screenshot failed: " + err.Error())
		}
		return m.setStatus("saved " + path)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m ViewerModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-chromeRows, 0))
	m.help.Width = msg.Width
	return m, nil
}

func (m ViewerModel) setStatus(s string) (tea.Model, tea.Cmd) {
	m.status = s
	m.statusSeq++
	return m, clearStatusCmd(m.statusSeq)
}

func (m *ViewerModel) load(id int) {
	m.id = id
	m.current, m.err = m.levels.Get(id)
}

// saveScreenshot writes the current preview as plain text.
func (m ViewerModel) saveScreenshot() (string, error) {
	if m.current == nil {
		return "", errors.New("no level to save")
	}
	Raster(m.current, m.world, m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("level_%03d_%s.txt", m.id, timestamp))
	content := m.header() + "\n" + m.screen.String() + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// header summarizes the level on screen.
func (m ViewerModel) header() string {
	if m.err != nil {
		return fmt.Sprintf("Level %d: %v", m.id, m.err)
	}
	movable, walls := m.current.Counts()
	return fmt.Sprintf("Level %d  movable %d  walls %d  threshold %.2f  time %s",
		m.id, movable, walls, m.current.PointThreshold, m.current.Duration)
}

// View renders the current state to a string for display.
func (m ViewerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	headerStyle := lipgloss.NewStyle().Bold(true)
	if m.current != nil {
		headerStyle = headerStyle.Foreground(lipgloss.Color(m.current.AccentColor.Hex()))
	}
	line := m.header()
	if m.status != "" {
		line += "  | " + m.status
	}
	b.WriteString(headerStyle.Render(line))
	b.WriteString("\n")

	if m.current != nil {
		Raster(m.current, m.world, m.screen)
	} else {
		m.screen.Clear()
	}
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Run starts the Bubble Tea program with a viewer over levels.
func Run(levels *cache.LevelCache, world config.WorldConfig, cfg core.RuntimeConfig, startID int) error {
	model := NewViewerModel(levels, world, cfg, startID)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
