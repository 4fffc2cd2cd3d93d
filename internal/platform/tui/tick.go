// Package tui provides the Bubble Tea integration for Pixel Pilot.
// It handles the terminal UI loop, input mapping, and frame pacing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after wait.
// A zero wait means the previous frame ran over budget and the next one
// starts immediately.
func tickCmd(wait time.Duration) tea.Cmd {
	if wait <= 0 {
		return func() tea.Msg {
			return TickMsg(time.Now())
		}
	}
	return tea.Tick(wait, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
