package services

import (
	"fmt"

	"github.com/tomate-timer/tomate/internal/config"
	"github.com/tomate-timer/tomate/internal/logging"
)

// SettingsService writes timer settings edited at runtime back to
// settings.json, preserving every field the edit does not cover
type SettingsService struct {
	path string
}

// NewSettingsService creates a SettingsService for the settings file at path
func NewSettingsService(path string) *SettingsService {
	return &SettingsService{path: path}
}

// SaveTimer merges the timer fields of cfg into the settings file
func (s *SettingsService) SaveTimer(cfg config.Config) error {
	logging.Logger.Info("Saving timer settings",
		"path", s.path,
		"work_minutes", cfg.WorkMinutes,
		"short_break_minutes", cfg.ShortBreakMinutes,
		"long_break_minutes", cfg.LongBreakMinutes,
		"cycles_before_long_break", cfg.CyclesBeforeLongBreak)

	settings, err := config.LoadSettingsFrom(s.path)
	if err != nil {
		logging.Logger.Error("Failed to load settings before save", "error", err)
		return fmt.Errorf("failed to load settings: %w", err)
	}

	settings.ApplyTimer(cfg)
	if err := config.SaveSettingsTo(s.path, settings); err != nil {
		logging.Logger.Error("Failed to save settings", "error", err)
		return fmt.Errorf("failed to save settings: %w", err)
	}

	logging.Logger.Info("Timer settings saved", "path", s.path)
	return nil
}
