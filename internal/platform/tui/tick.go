// Package tui provides the Bubble Tea level viewer, the run leaderboard and
// the SSH server that serves the viewer to remote terminals.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTTL is how long a status line stays visible.
const statusTTL = 3 * time.Second

// clearStatusMsg expires the status line set at the given sequence number.
type clearStatusMsg int

// clearStatusCmd returns a command that expires status seq after statusTTL.
func clearStatusCmd(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg(seq)
	})
}
