package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomate-timer/tomate/internal/theme"
)

// compositeOverlay renders overlay centered over a dimmed copy of background.
// The result is at least height lines tall.
func compositeOverlay(background, overlay string, width, height int) string {
	bgLines := dimLines(background, width, height)
	overlayLines := strings.Split(overlay, "\n")

	overlayWidth := lipgloss.Width(overlay)
	startX := max((width-overlayWidth)/2, 0)
	startY := max((height-len(overlayLines))/2, 0)

	for len(bgLines) < startY+len(overlayLines) {
		bgLines = append(bgLines, "")
	}

	leftPad := theme.DimmedStyle.Render(strings.Repeat(" ", startX))
	for i, line := range overlayLines {
		rightWidth := max(width-startX-lipgloss.Width(line), 0)
		bgLines[startY+i] = leftPad + line + theme.DimmedStyle.Render(strings.Repeat(" ", rightWidth))
	}

	return strings.Join(bgLines, "\n")
}

// dimLines strips styling from background, dims it and pads it to the
// full terminal size
func dimLines(background string, width, height int) []string {
	lines := strings.Split(background, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		plain := stripAnsi(line)
		if pad := width - lipgloss.Width(plain); pad > 0 {
			plain += strings.Repeat(" ", pad)
		}
		lines[i] = theme.DimmedStyle.Render(plain)
	}
	return lines
}

// stripAnsi removes ANSI escape codes from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false

	for i := 0; i < len(s); i++ {
		if s[i] == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			// SGR and most CSI sequences end with a letter
			if (s[i] >= 'A' && s[i] <= 'Z') || (s[i] >= 'a' && s[i] <= 'z') {
				inEscape = false
			}
			continue
		}
		result.WriteByte(s[i])
	}

	return result.String()
}
