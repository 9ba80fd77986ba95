package domain

import (
	"fmt"
	"math"
)

// SessionState is the observable state of the clock
type SessionState struct {
	CompletedWorkSessions int
	Mode                  Mode
	RemainingSeconds      int
	Running               bool
	SessionSeconds        int
}

// Snapshot is a value copy of the clock handed to renderers and IPC clients
type Snapshot struct {
	Config          SessionConfig
	ProgressPercent int
	State           SessionState
}

// RoundInCycle returns how many rounds of the current cycle are done (0..cycles-1)
func (s Snapshot) RoundInCycle() int {
	if s.Config.CyclesBeforeLongBreak < 1 {
		return 0
	}
	return s.State.CompletedWorkSessions % s.Config.CyclesBeforeLongBreak
}

// ProgressPercent computes round((1 - remaining/total) * 100) clamped to [0, 100]
func ProgressPercent(remaining, total int) int {
	if total < 1 {
		total = 1
	}
	p := int(math.Round((1 - float64(remaining)/float64(total)) * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// FormatClock renders seconds as mm:ss; minutes may exceed 59
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatHMS renders seconds as hh:mm:ss
func FormatHMS(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}

// WindowTitle returns the terminal title for a snapshot, e.g. "24:59 - Focus (Paused)"
func WindowTitle(s Snapshot) string {
	title := fmt.Sprintf("%s - %s", FormatClock(s.State.RemainingSeconds), s.State.Mode.Label())
	if !s.State.Running {
		title += " (Paused)"
	}
	return title
}
