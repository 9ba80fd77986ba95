package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tomate-timer/tomate/internal/domain"
)

// ActionDispatcher maps palette commands to UI messages.
// This keeps the command palette decoupled from specific message types.
type ActionDispatcher struct{}

// NewActionDispatcher creates a new action dispatcher.
func NewActionDispatcher() *ActionDispatcher {
	return &ActionDispatcher{}
}

// Dispatch returns the tea.Msg for a command, or nil if it cannot be dispatched.
func (d *ActionDispatcher) Dispatch(cmd domain.Command) tea.Msg {
	if cmd.ID == domain.CmdOpenStats {
		return ToggleStatsMsg{}
	}
	if domain.GetCommandByID(string(cmd.ID)) == nil {
		return nil
	}
	return RunCommandMsg{ID: cmd.ID}
}
