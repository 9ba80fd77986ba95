package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomate-timer/tomate/internal/config"
	"github.com/tomate-timer/tomate/internal/domain"
)

func TestTimerFlagsApply(t *testing.T) {
	base := config.DefaultConfig()

	t.Run("no flags keeps config", func(t *testing.T) {
		assert.Equal(t, base, TimerFlags{}.apply(base))
	})

	t.Run("given flags override", func(t *testing.T) {
		got := TimerFlags{Work: 50, Short: 10}.apply(base)
		assert.Equal(t, 50, got.WorkMinutes)
		assert.Equal(t, 10, got.ShortBreakMinutes)
		assert.Equal(t, base.LongBreakMinutes, got.LongBreakMinutes)
		assert.Equal(t, base.CyclesBeforeLongBreak, got.CyclesBeforeLongBreak)
	})
}

func TestParseKeyValues(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "single", input: "p", want: []string{"p"}},
		{name: "list with spaces", input: "up, k", want: []string{"up", "k"}},
		{name: "space alias", input: "space,p", want: []string{" ", "p"}},
		{name: "empty parts dropped", input: ",,", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseKeyValues(tt.input))
		})
	}
}

func TestDisplayKeys(t *testing.T) {
	assert.Equal(t, "space, p", displayKeys([]string{" ", "p"}))
}

func TestUpdateKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	work := 50
	require.NoError(t, config.SaveSettingsTo(path, &config.Settings{WorkMinutes: &work}))

	require.NoError(t, updateKeys(path, func(keys config.KeyBindingsConfig) {
		keys["start_pause"] = config.KeyBindingValue{"p"}
	}, "set"))

	settings, err := config.LoadSettingsFrom(path)
	require.NoError(t, err)
	assert.Equal(t, config.KeyBindingValue{"p"}, settings.Keys["start_pause"])
	require.NotNil(t, settings.WorkMinutes)
	assert.Equal(t, 50, *settings.WorkMinutes)

	require.NoError(t, updateKeys(path, func(keys config.KeyBindingsConfig) {
		delete(keys, "start_pause")
	}, "unset"))

	settings, err = config.LoadSettingsFrom(path)
	require.NoError(t, err)
	assert.Nil(t, settings.Keys)
}

func TestUpdateKeysRejectsConflicts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	err := updateKeys(path, func(keys config.KeyBindingsConfig) {
		keys["work"] = config.KeyBindingValue{"x"}
		keys["reset"] = config.KeyBindingValue{"x"}
	}, "set")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conflict")
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "25", formatValue(25))
	assert.Equal(t, "true", formatValue(true))
	assert.Equal(t, `{"help":["h","?"]}`, formatValue(map[string]any{"help": []string{"h", "?"}}))
}

func TestNewContainerFallsBackToMemoryWhenDatabaseUnavailable(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TOMATE_HOME", home)
	// A directory where the database file should be cannot be opened
	require.NoError(t, os.Mkdir(filepath.Join(home, "state.db"), 0755))

	container, err := NewContainer(nil)
	require.NoError(t, err)
	require.NotNil(t, container)
	assert.Nil(t, container.sqliteStore)

	container.StatisticsService.Record(domain.CompletionRecord{
		Category:       domain.ModeWork,
		ElapsedSeconds: 1500,
		Round:          1,
	})
	stats := container.StatisticsService.Stats()
	assert.Equal(t, 1, stats.WorkSessions)
	assert.Equal(t, 1500, stats.TotalFocusSeconds)

	assert.NoError(t, container.Close())
	assert.NoError(t, container.Close())
}

func TestNewContainerOpensDatabase(t *testing.T) {
	t.Setenv("TOMATE_HOME", t.TempDir())

	container, err := NewContainer(nil)
	require.NoError(t, err)
	assert.NotNil(t, container.sqliteStore)
	assert.NoError(t, container.Close())
}

func TestCtlNotice(t *testing.T) {
	assert.Empty(t, ctlNotice("start-pause"))
	assert.Equal(t, "Ignoring unknown command: nap (see 'tomate commands')", ctlNotice("nap"))
	assert.Equal(t, "Ignoring 'open-stats': only available in the TUI", ctlNotice("open-stats"))
}
