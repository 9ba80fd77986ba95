package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoader_MissingFileUsesDefaults(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "settings.json"))

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoader_ReadsSettingsFile(t *testing.T) {
	path := writeSettings(t, t.TempDir(), `{
		"work_minutes": 50,
		"short_break_minutes": 10,
		"auto_start_break": true,
		"sound": false,
		"keys": {"start_pause": "space", "help": ["h", "?"]}
	}`)

	cfg, err := NewLoader(path).Load()

	require.NoError(t, err)
	assert.Equal(t, 50, cfg.WorkMinutes)
	assert.Equal(t, 10, cfg.ShortBreakMinutes)
	assert.Equal(t, 15, cfg.LongBreakMinutes)
	assert.True(t, cfg.AutoStartBreak)
	assert.False(t, cfg.Sound)
	assert.True(t, cfg.Notifications)
	assert.Equal(t, KeyBindingValue{"space"}, cfg.Keys["start_pause"])
	assert.Equal(t, KeyBindingValue{"h", "?"}, cfg.Keys["help"])
}

func TestLoader_EnvOverridesFile(t *testing.T) {
	path := writeSettings(t, t.TempDir(), `{"work_minutes": 50}`)
	t.Setenv("TOMATE_WORK_MINUTES", "45")

	cfg, err := NewLoader(path).Load()

	require.NoError(t, err)
	assert.Equal(t, 45, cfg.WorkMinutes)
}

func TestLoader_ClampsLowValues(t *testing.T) {
	path := writeSettings(t, t.TempDir(), `{"work_minutes": 0, "cycles_before_long_break": -2, "max_log_files": -1}`)

	cfg, err := NewLoader(path).Load()

	require.NoError(t, err)
	assert.Equal(t, 1, cfg.WorkMinutes)
	assert.Equal(t, 1, cfg.CyclesBeforeLongBreak)
	assert.Equal(t, 0, cfg.MaxLogFiles)
}

func TestLoader_InvalidJSON(t *testing.T) {
	path := writeSettings(t, t.TempDir(), `{"work_minutes": `)

	_, err := NewLoader(path).Load()

	assert.Error(t, err)
}

func TestLoader_FileEventDeliversNewConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeSettings(t, dir, `{"work_minutes": 25}`)
	loader := NewLoader(path)
	_, err := loader.Load()
	require.NoError(t, err)

	writeSettings(t, dir, `{"work_minutes": 30}`)
	require.NoError(t, loader.v.ReadInConfig())

	var got Config
	loader.onFileEvent(fsnotify.Event{Name: path, Op: fsnotify.Write}, func(c Config) { got = c })

	assert.Equal(t, 30, got.WorkMinutes)
}

func TestConfig_SessionConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WorkMinutes = 2
	cfg.AutoStartBreak = true

	sc := cfg.SessionConfig()

	assert.Equal(t, 120, sc.WorkSeconds)
	assert.Equal(t, 300, sc.ShortBreakSeconds)
	assert.Equal(t, 900, sc.LongBreakSeconds)
	assert.Equal(t, 4, sc.CyclesBeforeLongBreak)
	assert.True(t, sc.AutoStartBreak)
	assert.True(t, sc.CreditInterrupted)
}

func TestSettings_SaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")
	s := &Settings{Keys: KeyBindingsConfig{"help": {"?"}}}
	s.ApplyTimer(DefaultConfig())

	require.NoError(t, SaveSettingsTo(path, s))
	loaded, err := LoadSettingsFrom(path)

	require.NoError(t, err)
	require.NotNil(t, loaded.WorkMinutes)
	assert.Equal(t, 25, *loaded.WorkMinutes)
	assert.Nil(t, loaded.Debug)
	assert.Equal(t, KeyBindingValue{"?"}, loaded.Keys["help"])

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"help": "?"`)
}

func TestLoadSettingsFrom_Missing(t *testing.T) {
	s, err := LoadSettingsFrom(filepath.Join(t.TempDir(), "nope.json"))

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, s)
}

func TestKeyBindingsConfig_Validate(t *testing.T) {
	valid := []string{"start_pause", "reset", "help"}

	assert.NoError(t, KeyBindingsConfig{"start_pause": {"space"}}.Validate(valid))
	assert.ErrorContains(t, KeyBindingsConfig{"launch": {"x"}}.Validate(valid), "unknown key binding")
	assert.ErrorContains(t, KeyBindingsConfig{"reset": {""}}.Validate(valid), "empty value")
	assert.ErrorContains(t,
		KeyBindingsConfig{"reset": {"x"}, "help": {"x"}}.Validate(valid),
		"is assigned to both")
}

func TestGetSettingsExample_CoversEveryField(t *testing.T) {
	example := GetSettingsExample()

	assert.Equal(t, 25, example[KeyWorkMinutes])
	assert.Equal(t, true, example[KeyCreditInterrupted])
	assert.Contains(t, example, KeyKeys)
	assert.Len(t, example, 11)
}

func TestGetTomateHome_Env(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TOMATE_HOME", dir)

	assert.Equal(t, dir, GetTomateHome())
	assert.Equal(t, filepath.Join(dir, "state.db"), GetDBPath())
	assert.Equal(t, filepath.Join(dir, "settings.json"), GetSettingsPath())
}
