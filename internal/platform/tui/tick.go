// Package tui provides the Bubble Tea front end for Delhi Dash.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/delhi-dash/internal/core"
)

// TickMsg asks the model to advance the game by one fixed step.
type TickMsg time.Time

// tickCmd schedules the next tick. The game always advances by the fixed
// step, however late the message arrives.
func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	return tea.Tick(cfg.TickDelta(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
