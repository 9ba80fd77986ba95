package domain

// CompletionRecord describes a finished or interrupted session.
// Round is the round counter after the transition (0 for breaks and
// interrupted work).
type CompletionRecord struct {
	Category       Mode
	ElapsedSeconds int
	Interrupted    bool
	Round          int
}

// CompletionListener receives completion records from the clock
type CompletionListener func(CompletionRecord)
