package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/tomate-timer/tomate/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"withargs"`
	Show SettingsShowCmd `cmd:"show" help:"Show the effective configuration"`
	Keys SettingsKeysCmd `cmd:"keys" help:"Manage key bindings"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := cli.loaderPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		fmt.Fprintf(w, "%s\t%s\n", key, formatValue(example[key]))
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Every setting can also be set through a TOMATE_<NAME> environment variable.")
	fmt.Println("All settings are optional and have sensible defaults.")

	return nil
}

// SettingsShowCmd prints the configuration after defaults, settings.json
// and environment are merged
type SettingsShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	cfg := cli.config

	if s.Format == "json" {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%d\n", config.KeyWorkMinutes, cfg.WorkMinutes)
	fmt.Fprintf(w, "%s\t%d\n", config.KeyShortBreakMinutes, cfg.ShortBreakMinutes)
	fmt.Fprintf(w, "%s\t%d\n", config.KeyLongBreakMinutes, cfg.LongBreakMinutes)
	fmt.Fprintf(w, "%s\t%d\n", config.KeyCyclesBeforeLongBreak, cfg.CyclesBeforeLongBreak)
	fmt.Fprintf(w, "%s\t%t\n", config.KeyAutoStartBreak, cfg.AutoStartBreak)
	fmt.Fprintf(w, "%s\t%t\n", config.KeyCreditInterrupted, cfg.CreditInterrupted)
	fmt.Fprintf(w, "%s\t%t\n", config.KeyNotifications, cfg.Notifications)
	fmt.Fprintf(w, "%s\t%t\n", config.KeySound, cfg.Sound)
	fmt.Fprintf(w, "%s\t%t\n", config.KeyDebug, cfg.Debug)
	fmt.Fprintf(w, "%s\t%d\n", config.KeyMaxLogFiles, cfg.MaxLogFiles)
	fmt.Fprintf(w, "%s\t%d custom\n", config.KeyKeys, len(cfg.Keys))
	return w.Flush()
}

func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return fmt.Sprintf("%t", v)
	case int:
		return fmt.Sprintf("%d", v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}
