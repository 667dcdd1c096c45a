// Package tui runs the demos in a terminal with Bubble Tea: the fixed tick
// loop, key and mouse mapping, lipgloss rendering, the menus and the SSH
// server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the running demo to advance one fixed step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg. A non-positive rate falls back to 60.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
