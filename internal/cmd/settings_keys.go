package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/tomate-timer/tomate/internal/config"
	"github.com/tomate-timer/tomate/internal/logging"
	"github.com/tomate-timer/tomate/internal/ui"
)

// SettingsKeysCmd manages keyboard shortcuts
type SettingsKeysCmd struct {
	List  SettingsKeysListCmd  `cmd:"list" help:"List all key bindings (defaults and custom)" default:"withargs"`
	Set   SettingsKeysSetCmd   `cmd:"set" help:"Set a key binding"`
	Unset SettingsKeysUnsetCmd `cmd:"unset" help:"Restore the default keys of a binding"`
}

// SettingsKeysListCmd lists all key bindings
type SettingsKeysListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// SettingsKeysSetCmd sets a key binding
type SettingsKeysSetCmd struct {
	Key   string `arg:"" help:"Binding name (e.g. start_pause, help, quit)"`
	Value string `arg:"" help:"Key binding (e.g. p, ctrl+s, or comma-separated for multiple: up,k)"`
}

// SettingsKeysUnsetCmd removes a custom key binding
type SettingsKeysUnsetCmd struct {
	Key string `arg:"" help:"Binding name"`
}

// Run executes the list command
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	defaults := ui.GetDefaultKeyBindings()
	names := ui.GetValidKeyNames()
	customKeys := cli.config.Keys

	if s.Format == "json" {
		return s.outputJSON(names, defaults, customKeys)
	}

	return s.outputTable(cli.loaderPath(), names, defaults, customKeys)
}

func (s *SettingsKeysListCmd) outputJSON(names []string, defaults map[string][]string, customKeys config.KeyBindingsConfig) error {
	result := make(map[string]map[string]any)

	for _, name := range names {
		entry := make(map[string]any)
		entry["default"] = defaults[name]

		if custom, ok := customKeys[name]; ok && len(custom) > 0 {
			entry["custom"] = custom
		}
		result[name] = entry
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func (s *SettingsKeysListCmd) outputTable(settingsFile string, names []string, defaults map[string][]string, customKeys config.KeyBindingsConfig) error {
	fmt.Printf("Key Bindings (settings file: %s)\n\n", settingsFile)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Name\tDefault\tCustom")
	fmt.Fprintln(w, "────\t───────\t──────")

	for _, name := range names {
		defaultKeys := displayKeys(defaults[name])
		customStr := "-"

		if custom, ok := customKeys[name]; ok && len(custom) > 0 {
			customStr = displayKeys(custom)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\n", name, defaultKeys, customStr)
	}

	w.Flush()

	fmt.Println()
	fmt.Println("Use 'tomate settings keys set <name> <value>' to customize.")
	return nil
}

// Run executes the set command
func (s *SettingsKeysSetCmd) Run(cli *CLI) error {
	if !ui.IsValidKeyName(s.Key) {
		return fmt.Errorf("unknown key '%s'. Valid keys: %s",
			s.Key, strings.Join(ui.GetValidKeyNames(), ", "))
	}

	values := parseKeyValues(s.Value)
	if len(values) == 0 {
		return fmt.Errorf("value cannot be empty")
	}

	logging.Logger.Debug("Setting key binding", "key", s.Key, "values", values)

	return updateKeys(cli.loaderPath(), func(keys config.KeyBindingsConfig) {
		keys[s.Key] = values
	}, fmt.Sprintf("Set '%s' to: %s", s.Key, displayKeys(values)))
}

// Run executes the unset command
func (s *SettingsKeysUnsetCmd) Run(cli *CLI) error {
	if !ui.IsValidKeyName(s.Key) {
		return fmt.Errorf("unknown key '%s'. Valid keys: %s",
			s.Key, strings.Join(ui.GetValidKeyNames(), ", "))
	}

	defaults := ui.GetDefaultKeyBindings()[s.Key]
	return updateKeys(cli.loaderPath(), func(keys config.KeyBindingsConfig) {
		delete(keys, s.Key)
	}, fmt.Sprintf("'%s' restored to: %s", s.Key, displayKeys(defaults)))
}

// updateKeys loads settings.json, edits its key bindings, validates and
// saves it. A running TUI or daemon picks the change up from the watcher.
func updateKeys(path string, edit func(config.KeyBindingsConfig), done string) error {
	settings, err := config.LoadSettingsFrom(path)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if settings.Keys == nil {
		settings.Keys = make(config.KeyBindingsConfig)
	}
	edit(settings.Keys)

	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("conflict: %w", err)
	}
	if len(settings.Keys) == 0 {
		settings.Keys = nil
	}

	if err := config.SaveSettingsTo(path, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Println(done)
	return nil
}

// parseKeyValues parses comma-separated key values. "space" stands for the
// space bar, which cannot survive the trimming.
func parseKeyValues(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		switch {
		case trimmed == "space":
			result = append(result, " ")
		case trimmed != "":
			result = append(result, trimmed)
		}
	}
	return result
}

func displayKeys(keys []string) string {
	shown := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		shown[i] = k
	}
	return strings.Join(shown, ", ")
}
