package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Timer styles
var (
	ClockStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 4)

	PausedStyle = lipgloss.NewStyle().
			Foreground(ColorPaused).
			Bold(true)

	RoundDoneStyle = lipgloss.NewStyle().
			Foreground(ColorRoundDone)

	RoundTodoStyle = lipgloss.NewStyle().
			Foreground(ColorRoundTodo)

	RunningStyle = lipgloss.NewStyle().
			Foreground(ColorShortBreak).
			Bold(true)

	SettingLabelStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)
)

// Statistics panel styles
var (
	StatsBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorMuted).
				Padding(0, 2)

	StatsLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Width(20)

	StatsValueStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(20)
)

// Tip styles
var (
	TipKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	TipTextStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// ModeStyle returns the label style for a timer mode name
func ModeStyle(mode string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ModeColor(mode)).Bold(true)
}

// Command palette styles
var (
	DimmedStyle = lipgloss.NewStyle().
			Foreground(ColorDimmed)

	ScrollIndicatorStyle = lipgloss.NewStyle().
				Foreground(ColorScrollIndicator)

	PaletteBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorMuted).
				Padding(0, 1)

	PaletteDescStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(ColorHintKey)

	FilterCursorStyle = lipgloss.NewStyle().
				Foreground(ColorCursor)

	PaletteTitleStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	PaletteItemSelectedStyle = lipgloss.NewStyle().
					Foreground(ColorHighlight).
					Background(ColorPaletteSelected).
					Bold(true)

	PaletteItemStyle = lipgloss.NewStyle().
				Foreground(ColorNormal)

	PaletteShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)
)
