package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	truncationMark = "..."
)

// ErrorManager holds the error shown in the footer and clears it after a delay
type ErrorManager struct {
	delay time.Duration
	err   error
	id    int
}

// NewErrorManager creates an ErrorManager that clears errors after delay
func NewErrorManager(delay time.Duration) *ErrorManager {
	return &ErrorManager{delay: delay}
}

// SetError replaces the displayed error
func (e *ErrorManager) SetError(err error) {
	e.err = err
	e.id++
}

// ClearError removes the displayed error
func (e *ErrorManager) ClearError() {
	e.err = nil
}

// HasError reports whether an error is displayed
func (e *ErrorManager) HasError() bool {
	return e.err != nil
}

// GetError returns the displayed error
func (e *ErrorManager) GetError() error {
	return e.err
}

// ClearAfterDelay returns a command that clears the current error once the
// delay passes. A newer error set in the meantime is left in place.
func (e *ErrorManager) ClearAfterDelay() tea.Cmd {
	id := e.id
	return tea.Tick(e.delay, func(time.Time) tea.Msg {
		return clearErrorMsg{id: id}
	})
}

// handleClear clears the error if msg belongs to the current one
func (e *ErrorManager) handleClear(msg clearErrorMsg) {
	if msg.id == e.id {
		e.ClearError()
	}
}

// formatErrorForDisplay wraps an error to maxWidth and keeps at most
// maxErrorLines lines, marking truncation with "..."
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	message := strings.TrimSpace(err.Error())
	if message == "" {
		message = "unknown error"
	}

	if maxWidth < 20 {
		maxWidth = 20
	}

	wrapped := lipgloss.NewStyle().Width(maxWidth).Render(errorPrefix + strings.Join(strings.Fields(message), " "))
	lines := strings.Split(wrapped, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	if len(lines) <= maxErrorLines {
		return strings.Join(lines, "\n")
	}

	lines = lines[:maxErrorLines]
	last := []rune(lines[maxErrorLines-1])
	if keep := maxWidth - len(truncationMark); len(last) > keep {
		last = last[:keep]
	}
	lines[maxErrorLines-1] = string(last) + truncationMark
	return strings.Join(lines, "\n")
}
