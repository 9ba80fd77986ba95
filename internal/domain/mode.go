package domain

// Mode is the kind of countdown the clock is running
type Mode string

const (
	ModeWork       Mode = "work"
	ModeShortBreak Mode = "short_break"
	ModeLongBreak  Mode = "long_break"
)

// Modes lists every mode in display order
var Modes = []Mode{ModeWork, ModeShortBreak, ModeLongBreak}

// Label returns the human readable name used in titles and status lines
func (m Mode) Label() string {
	switch m {
	case ModeWork:
		return "Focus"
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return string(m)
	}
}

// IsBreak reports whether the mode is one of the break modes
func (m Mode) IsBreak() bool {
	return m == ModeShortBreak || m == ModeLongBreak
}

// Valid reports whether m is a known mode
func (m Mode) Valid() bool {
	switch m {
	case ModeWork, ModeShortBreak, ModeLongBreak:
		return true
	}
	return false
}

// ParseMode accepts both the canonical values and the short command aliases
// ("short", "long").
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "work":
		return ModeWork, true
	case "short", "short_break", "short-break":
		return ModeShortBreak, true
	case "long", "long_break", "long-break":
		return ModeLongBreak, true
	}
	return "", false
}
