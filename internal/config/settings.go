package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig holds custom key binding overrides.
// Keys are binding names (e.g. "start_pause", "help"), values are key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for unknown binding names, empty keys and keys assigned
// to two bindings. validNames should come from ui.GetValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	keyToAction := make(map[string]string)
	for name, keys := range k {
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}
		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// Settings is the on-disk shape of $TOMATE_HOME/settings.json.
// Pointer fields distinguish "unset" from zero values.
type Settings struct {
	AutoStartBreak        *bool             `json:"auto_start_break,omitempty"`
	CreditInterrupted     *bool             `json:"credit_interrupted,omitempty"`
	CyclesBeforeLongBreak *int              `json:"cycles_before_long_break,omitempty"`
	Debug                 *bool             `json:"debug,omitempty"`
	Keys                  KeyBindingsConfig `json:"keys,omitempty"`
	LongBreakMinutes      *int              `json:"long_break_minutes,omitempty"`
	MaxLogFiles           *int              `json:"max_log_files,omitempty"`
	Notifications         *bool             `json:"notifications,omitempty"`
	ShortBreakMinutes     *int              `json:"short_break_minutes,omitempty"`
	Sound                 *bool             `json:"sound,omitempty"`
	WorkMinutes           *int              `json:"work_minutes,omitempty"`
}

// LoadSettings reads the raw settings file. A missing file yields empty
// Settings, not an error.
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom reads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	return &settings, nil
}

// SaveSettings writes settings to $TOMATE_HOME/settings.json
func SaveSettings(settings *Settings) error {
	return SaveSettingsTo(GetSettingsPath(), settings)
}

// SaveSettingsTo writes settings to path, creating its directory. The file
// is replaced atomically so a watcher never sees a half-written document.
func SaveSettingsTo(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace settings file: %w", err)
	}
	return nil
}

// ApplyTimer copies the timer fields of cfg into the settings, leaving
// everything else as it was
func (s *Settings) ApplyTimer(cfg Config) {
	s.AutoStartBreak = ptr(cfg.AutoStartBreak)
	s.CreditInterrupted = ptr(cfg.CreditInterrupted)
	s.CyclesBeforeLongBreak = ptr(cfg.CyclesBeforeLongBreak)
	s.LongBreakMinutes = ptr(cfg.LongBreakMinutes)
	s.Notifications = ptr(cfg.Notifications)
	s.ShortBreakMinutes = ptr(cfg.ShortBreakMinutes)
	s.Sound = ptr(cfg.Sound)
	s.WorkMinutes = ptr(cfg.WorkMinutes)
}

func ptr[T any](v T) *T {
	return &v
}
