package ui

import (
	"github.com/tomate-timer/tomate/internal/config"
	"github.com/tomate-timer/tomate/internal/domain"
)

// Action messages. Key handlers and the command palette produce these;
// Model handles them in updateTimer.

// QuitMsg requests quitting the application
type QuitMsg struct{}

// RunCommandMsg requests running a clock command
type RunCommandMsg struct {
	ID domain.CommandID
}

// ShowCommandPaletteMsg requests opening the command palette
type ShowCommandPaletteMsg struct{}

// ShowHelpMsg requests showing the help screen
type ShowHelpMsg struct{}

// ShowSettingsMsg requests showing the settings form
type ShowSettingsMsg struct{}

// ConfirmResetStatsMsg requests the statistics reset confirmation
type ConfirmResetStatsMsg struct{}

// ToggleStatsMsg shows or hides the statistics panel
type ToggleStatsMsg struct{}

// ConfigChangedMsg carries a configuration re-read from settings.json.
// The run command forwards watcher events with tea.Program.Send.
type ConfigChangedMsg struct {
	Config config.Config
}

// tickMsg is one second of countdown. Ticks from an older generation are
// stale (the clock was paused or restarted since) and dropped.
type tickMsg struct {
	generation int
}

// clearErrorMsg clears the error line once its delay has passed
type clearErrorMsg struct {
	id int
}
