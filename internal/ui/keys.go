package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/tomate-timer/tomate/internal/config"
	"github.com/tomate-timer/tomate/internal/domain"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Navigation  NavigationKeys
	Statistics  StatisticsKeys
	Timer       TimerKeys
}

// NewKeyMap creates a KeyMap, applying custom bindings over the defaults.
// Pass nil for keysConfig to use default bindings.
func NewKeyMap(keysConfig config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Application: newApplicationKeys(defaults, keysConfig),
		Navigation:  newNavigationKeys(defaults, keysConfig),
		Statistics:  newStatisticsKeys(defaults, keysConfig),
		Timer:       newTimerKeys(defaults, keysConfig),
	}
}

// ShortHelp returns the bindings shown in the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Timer.StartPause.Binding,
		k.Timer.Reset.Binding,
		k.Statistics.Toggle.Binding,
		k.Application.CommandPalette.Binding,
		k.Application.Help.Binding,
		k.Application.Quit.Binding,
	}
}

// FullHelp returns every binding grouped in columns
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			k.Timer.StartPause.Binding,
			k.Timer.Reset.Binding,
			k.Timer.Work.Binding,
			k.Timer.ShortBreak.Binding,
			k.Timer.LongBreak.Binding,
			k.Timer.ToggleAutoBreak.Binding,
		},
		{
			k.Statistics.Toggle.Binding,
			k.Statistics.Reset.Binding,
		},
		{
			k.Application.CommandPalette.Binding,
			k.Application.Settings.Binding,
			k.Application.Help.Binding,
			k.Application.Quit.Binding,
			k.Application.ForceQuit.Binding,
		},
	}
}

// commandBindings pairs the command-bound keys with the command they run
func (k KeyMap) commandBindings() []commandBinding {
	return []commandBinding{
		{id: domain.CmdStartPause, binding: k.Timer.StartPause.Binding},
		{id: domain.CmdReset, binding: k.Timer.Reset.Binding},
		{id: domain.CmdWork, binding: k.Timer.Work.Binding},
		{id: domain.CmdShort, binding: k.Timer.ShortBreak.Binding},
		{id: domain.CmdLong, binding: k.Timer.LongBreak.Binding},
		{id: domain.CmdToggleAutoBreak, binding: k.Timer.ToggleAutoBreak.Binding},
		{id: domain.CmdOpenStats, binding: k.Statistics.Toggle.Binding},
	}
}

// Tips returns every tip defined by the bindings, in a stable order
func (k KeyMap) Tips() []Tip {
	var tips []Tip
	for _, kt := range []KeyWithTip{
		k.Application.CommandPalette,
		k.Application.Help,
		k.Application.Settings,
		k.Timer.Reset,
		k.Timer.ToggleAutoBreak,
		k.Statistics.Toggle,
		k.Statistics.Reset,
	} {
		if kt.Tip != nil {
			tips = append(tips, *kt.Tip)
		}
	}
	return tips
}

type commandBinding struct {
	binding key.Binding
	id      domain.CommandID
}
