package ui

import (
	"github.com/tomate-timer/tomate/internal/config"
)

// NavigationKeys defines key bindings for moving through the palette and dialogs
type NavigationKeys struct {
	Close  KeyWithTip
	Down   KeyWithTip
	Select KeyWithTip
	Up     KeyWithTip
}

func newNavigationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) NavigationKeys {
	return NavigationKeys{
		Close:  buildBinding("close", defaults, customKeys),
		Down:   buildBinding("down", defaults, customKeys),
		Select: buildBinding("select", defaults, customKeys),
		Up:     buildBinding("up", defaults, customKeys),
	}
}
