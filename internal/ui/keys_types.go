package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/tomate-timer/tomate/internal/theme"
)

// Tip holds a tip format string and the keys to highlight
type Tip struct {
	Format string
	Keys   []string
}

// KeyWithTip wraps a key.Binding with an optional tip for the footer.
type KeyWithTip struct {
	Binding key.Binding
	Tip     *Tip
}

// newTip builds a tip from a format string with %s placeholders for keys,
// e.g. newTip("press %s to filter", "/")
func newTip(format string, keys ...string) *Tip {
	return &Tip{Format: format, Keys: keys}
}

// Plain returns the tip text without styling
func (t Tip) Plain() string {
	args := make([]any, len(t.Keys))
	for i, k := range t.Keys {
		args[i] = k
	}
	return fmt.Sprintf(t.Format, args...)
}

// RenderTip formats a tip with highlighted keys and gray text
func RenderTip(tip Tip) string {
	parts := strings.Split(tip.Format, "%s")
	var b strings.Builder
	b.WriteString(theme.TipTextStyle.Render("ℹ  tip: "))
	for i, part := range parts {
		b.WriteString(theme.TipTextStyle.Render(part))
		if i < len(tip.Keys) {
			b.WriteString(theme.TipKeyStyle.Render(tip.Keys[i]))
		}
	}
	return b.String()
}

// displayKey renders a key the way help text shows it
func displayKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
