package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSessionConfig(t *testing.T) {
	cfg := DefaultSessionConfig()

	assert.Equal(t, 1500, cfg.WorkSeconds)
	assert.Equal(t, 300, cfg.ShortBreakSeconds)
	assert.Equal(t, 900, cfg.LongBreakSeconds)
	assert.Equal(t, 4, cfg.CyclesBeforeLongBreak)
	assert.False(t, cfg.AutoStartBreak)
	assert.True(t, cfg.CreditInterrupted)
}

func TestSessionConfig_Clamp(t *testing.T) {
	cfg := SessionConfig{
		CyclesBeforeLongBreak: -3,
		LongBreakSeconds:      0,
		ShortBreakSeconds:     -1,
		WorkSeconds:           42,
	}.Clamp()

	assert.Equal(t, 1, cfg.CyclesBeforeLongBreak)
	assert.Equal(t, 1, cfg.LongBreakSeconds)
	assert.Equal(t, 1, cfg.ShortBreakSeconds)
	assert.Equal(t, 42, cfg.WorkSeconds)
}

func TestSessionConfig_DurationFor(t *testing.T) {
	cfg := SessionConfig{WorkSeconds: 10, ShortBreakSeconds: 20, LongBreakSeconds: 30}

	assert.Equal(t, 10, cfg.DurationFor(ModeWork))
	assert.Equal(t, 20, cfg.DurationFor(ModeShortBreak))
	assert.Equal(t, 30, cfg.DurationFor(ModeLongBreak))
}

func TestSessionConfig_UseLongBreak(t *testing.T) {
	tests := []struct {
		name   string
		cycles int
		round  int
		want   bool
	}{
		{"first round of four", 4, 1, false},
		{"fourth round of four", 4, 4, true},
		{"eighth round of four", 4, 8, true},
		{"every round when cycles is one", 1, 3, true},
		{"zero cycles never long", 0, 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := SessionConfig{CyclesBeforeLongBreak: tt.cycles}
			assert.Equal(t, tt.want, cfg.UseLongBreak(tt.round))
		})
	}
}
