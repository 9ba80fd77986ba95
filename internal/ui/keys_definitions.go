package ui

import (
	"sort"
	"sync"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults  []string
	Help      string
	Name      string
	TipFormat string
}

// AllKeyDefinitions contains all configurable key bindings.
// Names are the keys accepted under "keys" in settings.json.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "command_palette", Defaults: []string{"ctrl+k", ":"}, Help: "command palette", TipFormat: "press %s to open the command palette"},
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?"}, Help: "show keyboard shortcuts", TipFormat: "press %s to see all shortcuts"},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application"},
	{Name: "settings", Defaults: []string{","}, Help: "edit timer settings", TipFormat: "press %s to change durations without leaving the timer"},

	// Navigation keys (palette and dialogs)
	{Name: "close", Defaults: []string{"esc"}, Help: "close palette or dialog"},
	{Name: "down", Defaults: []string{"down", "ctrl+n"}, Help: "next entry"},
	{Name: "select", Defaults: []string{"enter"}, Help: "run selected entry"},
	{Name: "up", Defaults: []string{"up", "ctrl+p"}, Help: "previous entry"},

	// Timer keys
	{Name: "long_break", Defaults: []string{"l"}, Help: "start long break"},
	{Name: "reset", Defaults: []string{"r"}, Help: "reset timer", TipFormat: "press %s to reset the timer and the round counter"},
	{Name: "short_break", Defaults: []string{"s"}, Help: "start short break"},
	{Name: "start_pause", Defaults: []string{" ", "p"}, Help: "start / pause timer"},
	{Name: "toggle_auto_break", Defaults: []string{"a"}, Help: "toggle auto-break", TipFormat: "press %s to start breaks automatically"},
	{Name: "work", Defaults: []string{"w"}, Help: "switch to work"},

	// Statistics keys
	{Name: "reset_stats", Defaults: []string{"X"}, Help: "reset statistics", TipFormat: "press %s to clear all statistics"},
	{Name: "statistics", Defaults: []string{".", "tab"}, Help: "toggle statistics", TipFormat: "press %s to show your statistics"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for name, or nil if unknown
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	def, ok := keyDefinitionsMap[name]
	if !ok {
		return nil
	}
	return &def
}

// GetValidKeyNames returns all binding names, sorted
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, 0, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			validKeyNames = append(validKeyNames, def.Name)
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName reports whether name is a known binding
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}
