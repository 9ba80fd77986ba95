package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "203" // Tomato red - app name, clock
	ColorSecondary Color = "86"  // Cyan - subtitles
)

// Mode colors
const (
	ColorLongBreak  Color = "39"  // Blue
	ColorShortBreak Color = "42"  // Green
	ColorWork       Color = "203" // Tomato red
)

// UI semantic colors
const (
	ColorDimmed          Color = "238" // Background behind overlays
	ColorError           Color = "196" // Bright red
	ColorHighlight       Color = "255" // White - emphasis
	ColorMuted           Color = "241" // Gray - secondary text
	ColorNormal          Color = "250" // Default text
	ColorPaletteSelected Color = "237" // Selected palette row
	ColorPaused          Color = "214" // Orange
	ColorScrollIndicator Color = "245"
	ColorSubtle          Color = "245" // Light gray - labels
	ColorVersion         Color = "240" // Dark gray
)

// Accent colors
const (
	ColorCursor    Color = "205" // Pink
	ColorHelpGroup Color = "141" // Purple
	ColorHintKey   Color = "226" // Yellow
	ColorRoundDone Color = "203"
	ColorRoundTodo Color = "240"
)

// ModeColor returns the accent color for a timer mode name
func ModeColor(mode string) Color {
	switch mode {
	case "short_break":
		return ColorShortBreak
	case "long_break":
		return ColorLongBreak
	default:
		return ColorWork
	}
}
