package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		name      string
		remaining int
		total     int
		want      int
	}{
		{"not started", 1500, 1500, 0},
		{"half way", 750, 1500, 50},
		{"done", 0, 1500, 100},
		{"rounds to nearest", 2, 3, 33},
		{"zero total floors at one", 0, 0, 100},
		{"remaining above total clamps", 20, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProgressPercent(tt.remaining, tt.total))
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "25:00", FormatClock(1500))
	assert.Equal(t, "00:09", FormatClock(9))
	assert.Equal(t, "90:00", FormatClock(5400))
	assert.Equal(t, "00:00", FormatClock(-5))
}

func TestFormatHMS(t *testing.T) {
	assert.Equal(t, "00:00:00", FormatHMS(0))
	assert.Equal(t, "01:01:01", FormatHMS(3661))
	assert.Equal(t, "26:00:00", FormatHMS(93600))
}

func TestWindowTitle(t *testing.T) {
	snap := Snapshot{State: SessionState{Mode: ModeWork, RemainingSeconds: 1499}}
	assert.Equal(t, "24:59 - Focus (Paused)", WindowTitle(snap))

	snap.State.Running = true
	snap.State.Mode = ModeLongBreak
	assert.Equal(t, "24:59 - Long Break", WindowTitle(snap))
}

func TestSnapshot_RoundInCycle(t *testing.T) {
	snap := Snapshot{
		Config: SessionConfig{CyclesBeforeLongBreak: 4},
		State:  SessionState{CompletedWorkSessions: 6},
	}
	assert.Equal(t, 2, snap.RoundInCycle())
}
