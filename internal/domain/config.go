package domain

// Default durations in minutes and cadence
const (
	DefaultWorkMinutes           = 25
	DefaultShortBreakMinutes     = 5
	DefaultLongBreakMinutes      = 15
	DefaultCyclesBeforeLongBreak = 4
)

// SessionConfig holds the user-tunable timer configuration.
// Durations are in whole seconds.
type SessionConfig struct {
	AutoStartBreak        bool
	CreditInterrupted     bool
	CyclesBeforeLongBreak int
	LongBreakSeconds      int
	ShortBreakSeconds     int
	WorkSeconds           int
}

// DefaultSessionConfig returns the 25/5/15/4 configuration
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		AutoStartBreak:        false,
		CreditInterrupted:     true,
		CyclesBeforeLongBreak: DefaultCyclesBeforeLongBreak,
		LongBreakSeconds:      DefaultLongBreakMinutes * 60,
		ShortBreakSeconds:     DefaultShortBreakMinutes * 60,
		WorkSeconds:           DefaultWorkMinutes * 60,
	}
}

// Clamp returns a copy with every integer field raised to at least 1
func (c SessionConfig) Clamp() SessionConfig {
	c.CyclesBeforeLongBreak = atLeastOne(c.CyclesBeforeLongBreak)
	c.LongBreakSeconds = atLeastOne(c.LongBreakSeconds)
	c.ShortBreakSeconds = atLeastOne(c.ShortBreakSeconds)
	c.WorkSeconds = atLeastOne(c.WorkSeconds)
	return c
}

// DurationFor returns the configured duration of mode in seconds
func (c SessionConfig) DurationFor(mode Mode) int {
	switch mode {
	case ModeShortBreak:
		return c.ShortBreakSeconds
	case ModeLongBreak:
		return c.LongBreakSeconds
	default:
		return c.WorkSeconds
	}
}

// UseLongBreak reports whether the break after the given completed round is long.
// A non-positive cadence never yields a long break.
func (c SessionConfig) UseLongBreak(round int) bool {
	return c.CyclesBeforeLongBreak > 0 && round%c.CyclesBeforeLongBreak == 0
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
