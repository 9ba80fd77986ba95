package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/tomate-timer/tomate/internal/config"
)

// ApplicationKeys defines key bindings for application-level actions
type ApplicationKeys struct {
	CommandPalette KeyWithTip
	ForceQuit      KeyWithTip
	Help           KeyWithTip
	Quit           KeyWithTip
	Settings       KeyWithTip
}

func newApplicationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) ApplicationKeys {
	return ApplicationKeys{
		CommandPalette: buildBinding("command_palette", defaults, customKeys),
		ForceQuit:      buildBinding("force_quit", defaults, customKeys),
		Help:           buildBinding("help", defaults, customKeys),
		Quit:           buildBinding("quit", defaults, customKeys),
		Settings:       buildBinding("settings", defaults, customKeys),
	}
}

// buildBinding creates a KeyWithTip from the key definition, using custom keys if provided.
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) KeyWithTip {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	shown := make([]string, len(keys))
	for i, k := range keys {
		shown[i] = displayKey(k)
	}

	result := KeyWithTip{
		Binding: key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(shown, "/"), def.Help),
		),
	}

	if def.TipFormat != "" && len(keys) > 0 {
		result.Tip = newTip(def.TipFormat, shown[0])
	}

	return result
}
