package domain

// Stats holds the cumulative counters persisted across runs
type Stats struct {
	LongBreaksTaken   int `json:"longBreaksTaken"`
	RoundsCompleted   int `json:"roundsCompleted"`
	ShortBreaksTaken  int `json:"shortBreaksTaken"`
	TotalBreakSeconds int `json:"totalBreakSeconds"`
	TotalFocusSeconds int `json:"totalFocusSeconds"`
	WorkSessions      int `json:"workSessions"`
}

// Apply folds a completion record into the counters and returns the result.
// Interrupted work only moves focus time; breaks count either way.
func (s Stats) Apply(r CompletionRecord) Stats {
	elapsed := r.ElapsedSeconds
	if elapsed < 0 {
		elapsed = 0
	}

	switch r.Category {
	case ModeWork:
		s.TotalFocusSeconds += elapsed
		if !r.Interrupted {
			s.WorkSessions++
			s.RoundsCompleted++
		}
	case ModeShortBreak:
		s.TotalBreakSeconds += elapsed
		s.ShortBreaksTaken++
	case ModeLongBreak:
		s.TotalBreakSeconds += elapsed
		s.LongBreaksTaken++
	}
	return s
}

// Valid reports whether every counter is non-negative
func (s Stats) Valid() bool {
	return s.LongBreaksTaken >= 0 &&
		s.RoundsCompleted >= 0 &&
		s.ShortBreaksTaken >= 0 &&
		s.TotalBreakSeconds >= 0 &&
		s.TotalFocusSeconds >= 0 &&
		s.WorkSessions >= 0
}
