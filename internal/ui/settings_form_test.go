package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomate-timer/tomate/internal/config"
)

func TestSettingsFormValues_RoundTrip(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Debug = true

	got, err := newSettingsFormValues(cfg).apply(cfg)

	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestSettingsFormValues_Apply(t *testing.T) {
	base := config.DefaultConfig()
	values := newSettingsFormValues(base)
	values.Work = " 50 "
	values.ShortBreak = "10"
	values.LongBreak = "30"
	values.Cycles = "3"
	values.AutoStartBreak = true
	values.Sound = false

	got, err := values.apply(base)

	require.NoError(t, err)
	assert.Equal(t, 50, got.WorkMinutes)
	assert.Equal(t, 10, got.ShortBreakMinutes)
	assert.Equal(t, 30, got.LongBreakMinutes)
	assert.Equal(t, 3, got.CyclesBeforeLongBreak)
	assert.True(t, got.AutoStartBreak)
	assert.False(t, got.Sound)
	assert.Equal(t, base.MaxLogFiles, got.MaxLogFiles)
}

func TestSettingsFormValues_ApplyRejectsBadNumbers(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"zero", "0"},
		{"negative", "-5"},
		{"text", "ten"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := config.DefaultConfig()
			values := newSettingsFormValues(base)
			values.Work = tt.value

			got, err := values.apply(base)

			assert.Error(t, err)
			assert.Equal(t, base, got)
			assert.Error(t, validatePositive(tt.value))
		})
	}
}

func TestSettingsForm_EscCancels(t *testing.T) {
	form := NewSettingsForm(config.DefaultConfig())

	form.Update(keyMsg("esc"))

	assert.True(t, form.Completed)
	assert.True(t, form.Cancelled)
}
