package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tomate-timer/tomate/internal/domain"
	"github.com/tomate-timer/tomate/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool
	keys        *KeyMap
	viewport    viewport.Model
}

func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}

// buildHelpContent builds the help text from the active key bindings
func buildHelpContent(keys *KeyMap) string {
	var b strings.Builder

	b.WriteString(theme.HelpGroupStyle.Render("Timer") + "\n")
	b.WriteString(renderBinding(keys.Timer.StartPause.Binding))
	b.WriteString(renderBinding(keys.Timer.Reset.Binding))
	b.WriteString(renderBinding(keys.Timer.Work.Binding))
	b.WriteString(renderBinding(keys.Timer.ShortBreak.Binding))
	b.WriteString(renderBinding(keys.Timer.LongBreak.Binding))
	b.WriteString(renderBinding(keys.Timer.ToggleAutoBreak.Binding))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Statistics") + "\n")
	b.WriteString(renderBinding(keys.Statistics.Toggle.Binding))
	b.WriteString(renderBinding(keys.Statistics.Reset.Binding))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Command Palette") + "\n")
	b.WriteString(renderBinding(keys.Application.CommandPalette.Binding))
	b.WriteString(renderBinding(keys.Navigation.Up.Binding))
	b.WriteString(renderBinding(keys.Navigation.Down.Binding))
	b.WriteString(renderBinding(keys.Navigation.Select.Binding))
	b.WriteString(renderBinding(keys.Navigation.Close.Binding))
	for _, c := range domain.Commands {
		b.WriteString(renderShortcut(c.Shortcut, c.Title+" (empty search only)"))
	}

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Application") + "\n")
	b.WriteString(renderBinding(keys.Application.Settings.Binding))
	b.WriteString(renderBinding(keys.Application.Help.Binding))
	b.WriteString(renderBinding(keys.Application.Quit.Binding))
	b.WriteString(renderBinding(keys.Application.ForceQuit.Binding))

	return b.String()
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 5 lines, footer: 3 lines
		h.viewport.Width = msg.Width
		h.viewport.Height = max(msg.Height-8, 5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if key.Matches(msg, h.keys.Navigation.Close.Binding, h.keys.Application.Quit.Binding, h.keys.Application.Help.Binding) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}

	footer := theme.HelpStyle.Render("Press " +
		h.keys.Navigation.Close.Binding.Help().Key + ", " +
		h.keys.Application.Quit.Binding.Help().Key + " or " +
		h.keys.Application.Help.Binding.Help().Key + " to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n" + footer
}
