package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/tomate-timer/tomate/internal/domain"
	"github.com/tomate-timer/tomate/internal/theme"
)

const (
	maxProgressWidth = 48
	minProgressWidth = 10
)

// TimerView renders the countdown, progress bar and round counter for a
// clock snapshot
type TimerView struct {
	progress progress.Model
	width    int
}

// NewTimerView creates a TimerView with a static progress bar
func NewTimerView() *TimerView {
	return &TimerView{
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
}

// SetWidth sizes the view to the terminal
func (v *TimerView) SetWidth(width int) {
	v.width = width
	v.progress.Width = min(max(width-10, minProgressWidth), maxProgressWidth)
}

// View renders snap centered in the current width
func (v *TimerView) View(snap domain.Snapshot) string {
	mode := string(snap.State.Mode)

	clock := theme.ClockStyle.
		Foreground(theme.ModeColor(mode)).
		Render(domain.FormatClock(snap.State.RemainingSeconds))

	status := theme.PausedStyle.Render("⏸ Paused")
	if snap.State.Running {
		status = theme.RunningStyle.Render("▶ Running")
	}

	bar := v.progress.ViewAs(float64(snap.ProgressPercent)/100) +
		theme.SettingLabelStyle.Render(fmt.Sprintf(" %3d%%", snap.ProgressPercent))

	autoBreak := "off"
	if snap.Config.AutoStartBreak {
		autoBreak = "on"
	}

	block := lipgloss.JoinVertical(lipgloss.Center,
		theme.ModeStyle(mode).Render(snap.State.Mode.Label()),
		clock,
		bar,
		"",
		status,
		"",
		renderRounds(snap),
		theme.SettingLabelStyle.Render("auto-break: "+autoBreak),
	)

	if v.width <= 0 {
		return block
	}
	return lipgloss.PlaceHorizontal(v.width, lipgloss.Center, block)
}

// renderRounds draws one marker per round of the cycle, filled for the
// rounds already completed
func renderRounds(snap domain.Snapshot) string {
	cycles := max(snap.Config.CyclesBeforeLongBreak, 1)
	done := snap.RoundInCycle()

	var b strings.Builder
	for i := 0; i < cycles; i++ {
		if i < done {
			b.WriteString(theme.RoundDoneStyle.Render("●"))
		} else {
			b.WriteString(theme.RoundTodoStyle.Render("○"))
		}
	}

	return b.String() + theme.SettingLabelStyle.Render(
		fmt.Sprintf("  %d/%d rounds · %d total", done, cycles, snap.State.CompletedWorkSessions))
}
