package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomate-timer/tomate/internal/config"
)

func TestSettingsService_SaveTimer_PreservesOtherFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"debug": true, "keys": {"quit": "x"}, "work_minutes": 50}`), 0644))

	cfg := config.DefaultConfig()
	cfg.WorkMinutes = 30
	cfg.CyclesBeforeLongBreak = 3

	svc := NewSettingsService(path)
	require.NoError(t, svc.SaveTimer(cfg))

	saved, err := config.LoadSettingsFrom(path)
	require.NoError(t, err)
	require.NotNil(t, saved.WorkMinutes)
	assert.Equal(t, 30, *saved.WorkMinutes)
	require.NotNil(t, saved.CyclesBeforeLongBreak)
	assert.Equal(t, 3, *saved.CyclesBeforeLongBreak)
	require.NotNil(t, saved.Debug)
	assert.True(t, *saved.Debug)
	assert.Equal(t, config.KeyBindingValue{"x"}, saved.Keys["quit"])
}

func TestSettingsService_SaveTimer_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")

	svc := NewSettingsService(path)
	require.NoError(t, svc.SaveTimer(config.DefaultConfig()))

	loaded, err := config.NewLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().WorkMinutes, loaded.WorkMinutes)
}

func TestSettingsService_SaveTimer_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	err := NewSettingsService(path).SaveTimer(config.DefaultConfig())
	assert.Error(t, err)
}
