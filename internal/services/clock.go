package services

import (
	"github.com/tomate-timer/tomate/internal/domain"
	"github.com/tomate-timer/tomate/internal/logging"
)

// SessionClock owns the countdown, mode transitions and configuration.
// It is not safe for concurrent use: a single owner (the bubbletea model or
// the Runner goroutine) drives it.
type SessionClock struct {
	cfg       domain.SessionConfig
	listeners []domain.CompletionListener
	state     domain.SessionState
}

// NewSessionClock creates a paused clock in work mode
func NewSessionClock(cfg domain.SessionConfig) *SessionClock {
	cfg = cfg.Clamp()
	c := &SessionClock{cfg: cfg}
	c.enter(domain.ModeWork, false)
	return c
}

// Subscribe registers a listener. Listeners are called synchronously, in
// subscription order, after the transition that produced the record has
// been applied. They must not call back into the clock.
func (c *SessionClock) Subscribe(l domain.CompletionListener) {
	c.listeners = append(c.listeners, l)
}

// Tick advances the countdown by one second. It returns true when the tick
// completed the current session.
func (c *SessionClock) Tick() bool {
	if !c.state.Running {
		return false
	}

	c.state.RemainingSeconds--
	if c.state.RemainingSeconds > 0 {
		return false
	}

	c.state.RemainingSeconds = 0
	c.complete()
	return true
}

// StartPause toggles the running flag
func (c *SessionClock) StartPause() {
	c.state.Running = !c.state.Running
	logging.Logger.Debug("Clock toggled", "running", c.state.Running, "mode", c.state.Mode)
}

// Reset returns to a paused work session with the round counter cleared
func (c *SessionClock) Reset() {
	rec, credited := c.interruptedRecord()

	c.state.CompletedWorkSessions = 0
	c.enter(domain.ModeWork, false)
	logging.Logger.Debug("Clock reset")

	if credited {
		c.emit(rec)
	}
}

// Jump enters mode with its full configured duration. Breaks start running,
// work starts paused. The round counter is left alone.
func (c *SessionClock) Jump(mode domain.Mode) {
	if !mode.Valid() {
		return
	}
	rec, credited := c.interruptedRecord()

	c.enter(mode, mode.IsBreak())
	logging.Logger.Debug("Clock jumped", "mode", mode)

	if credited {
		c.emit(rec)
	}
}

// ToggleAutoBreak flips whether breaks start automatically after work
func (c *SessionClock) ToggleAutoBreak() {
	c.cfg.AutoStartBreak = !c.cfg.AutoStartBreak
	logging.Logger.Debug("Auto-break toggled", "enabled", c.cfg.AutoStartBreak)
}

// UpdateConfig replaces the configuration. A paused clock picks up the new
// duration of its current mode immediately; a running countdown is left
// untouched and the new duration applies on the next entry into that mode.
func (c *SessionClock) UpdateConfig(cfg domain.SessionConfig) {
	c.cfg = cfg.Clamp()
	if !c.state.Running {
		c.state.SessionSeconds = c.cfg.DurationFor(c.state.Mode)
		c.state.RemainingSeconds = c.state.SessionSeconds
	}
	logging.Logger.Debug("Clock config updated",
		"work", c.cfg.WorkSeconds,
		"short_break", c.cfg.ShortBreakSeconds,
		"long_break", c.cfg.LongBreakSeconds,
		"cycles", c.cfg.CyclesBeforeLongBreak)
}

// Dispatch runs the operation named by id. Unknown ids are ignored and
// reported as not handled.
func (c *SessionClock) Dispatch(id string) bool {
	switch domain.NormalizeCommandID(id) {
	case domain.CmdStartPause:
		c.StartPause()
	case domain.CmdReset:
		c.Reset()
	case domain.CmdWork:
		c.Jump(domain.ModeWork)
	case domain.CmdShort:
		c.Jump(domain.ModeShortBreak)
	case domain.CmdLong:
		c.Jump(domain.ModeLongBreak)
	case domain.CmdToggleAutoBreak:
		c.ToggleAutoBreak()
	default:
		logging.Logger.Debug("Ignoring unknown command", "command", id)
		return false
	}
	return true
}

// Snapshot returns a value copy of the observable state
func (c *SessionClock) Snapshot() domain.Snapshot {
	return domain.Snapshot{
		Config:          c.cfg,
		ProgressPercent: domain.ProgressPercent(c.state.RemainingSeconds, c.state.SessionSeconds),
		State:           c.state,
	}
}

// Config returns the current configuration
func (c *SessionClock) Config() domain.SessionConfig {
	return c.cfg
}

// Running reports whether the countdown is advancing
func (c *SessionClock) Running() bool {
	return c.state.Running
}

func (c *SessionClock) complete() {
	exited := c.state.Mode
	rec := domain.CompletionRecord{
		Category:       exited,
		ElapsedSeconds: c.state.SessionSeconds,
	}

	if exited == domain.ModeWork {
		rounds := c.state.CompletedWorkSessions + 1
		c.state.CompletedWorkSessions = rounds
		rec.Round = rounds

		next := domain.ModeShortBreak
		if c.cfg.UseLongBreak(rounds) {
			next = domain.ModeLongBreak
		}
		c.enter(next, c.cfg.AutoStartBreak)
	} else {
		c.enter(domain.ModeWork, false)
	}

	logging.Logger.Info("Session completed",
		"mode", exited,
		"elapsed", rec.ElapsedSeconds,
		"round", rec.Round,
		"next", c.state.Mode)
	c.emit(rec)
}

// interruptedRecord builds the partial-credit record for the session being
// abandoned, if the policy is on and some but not all of it elapsed
func (c *SessionClock) interruptedRecord() (domain.CompletionRecord, bool) {
	if !c.cfg.CreditInterrupted {
		return domain.CompletionRecord{}, false
	}
	remaining := c.state.RemainingSeconds
	if remaining <= 0 || remaining >= c.state.SessionSeconds {
		return domain.CompletionRecord{}, false
	}
	return domain.CompletionRecord{
		Category:       c.state.Mode,
		ElapsedSeconds: c.state.SessionSeconds - remaining,
		Interrupted:    true,
	}, true
}

func (c *SessionClock) enter(mode domain.Mode, running bool) {
	c.state.Mode = mode
	c.state.SessionSeconds = c.cfg.DurationFor(mode)
	c.state.RemainingSeconds = c.state.SessionSeconds
	c.state.Running = running
}

func (c *SessionClock) emit(rec domain.CompletionRecord) {
	for _, l := range c.listeners {
		l(rec)
	}
}
