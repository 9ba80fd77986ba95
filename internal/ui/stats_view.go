package ui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomate-timer/tomate/internal/domain"
	"github.com/tomate-timer/tomate/internal/theme"
)

// renderStatsPanel renders the cumulative statistics and the reset hint
func renderStatsPanel(stats domain.Stats, keys *KeyMap) string {
	row := func(label, value string) string {
		return theme.StatsLabelStyle.Render(label) + theme.StatsValueStyle.Render(value)
	}

	resetHelp := keys.Statistics.Reset.Binding.Help()
	body := lipgloss.JoinVertical(lipgloss.Left,
		theme.PaletteTitleStyle.Render("Statistics"),
		"",
		row("Work sessions", strconv.Itoa(stats.WorkSessions)),
		row("Rounds completed", strconv.Itoa(stats.RoundsCompleted)),
		row("Short breaks", strconv.Itoa(stats.ShortBreaksTaken)),
		row("Long breaks", strconv.Itoa(stats.LongBreaksTaken)),
		row("Total focus", domain.FormatHMS(stats.TotalFocusSeconds)),
		row("Total break", domain.FormatHMS(stats.TotalBreakSeconds)),
		"",
		theme.TipKeyStyle.Render(resetHelp.Key)+" "+theme.TipTextStyle.Render(resetHelp.Desc),
	)

	return theme.StatsBorderStyle.Render(body)
}
