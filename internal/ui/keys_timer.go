package ui

import (
	"github.com/tomate-timer/tomate/internal/config"
)

// TimerKeys defines key bindings that drive the session clock
type TimerKeys struct {
	LongBreak       KeyWithTip
	Reset           KeyWithTip
	ShortBreak      KeyWithTip
	StartPause      KeyWithTip
	ToggleAutoBreak KeyWithTip
	Work            KeyWithTip
}

// StatisticsKeys defines key bindings for the statistics panel
type StatisticsKeys struct {
	Reset  KeyWithTip
	Toggle KeyWithTip
}

func newTimerKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) TimerKeys {
	return TimerKeys{
		LongBreak:       buildBinding("long_break", defaults, customKeys),
		Reset:           buildBinding("reset", defaults, customKeys),
		ShortBreak:      buildBinding("short_break", defaults, customKeys),
		StartPause:      buildBinding("start_pause", defaults, customKeys),
		ToggleAutoBreak: buildBinding("toggle_auto_break", defaults, customKeys),
		Work:            buildBinding("work", defaults, customKeys),
	}
}

func newStatisticsKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) StatisticsKeys {
	return StatisticsKeys{
		Reset:  buildBinding("reset_stats", defaults, customKeys),
		Toggle: buildBinding("statistics", defaults, customKeys),
	}
}
