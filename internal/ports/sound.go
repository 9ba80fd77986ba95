package ports

// Sound event types
const (
	SoundEventBreakComplete     = "break_complete"
	SoundEventLongBreakComplete = "long_break_complete"
	SoundEventWorkComplete      = "work_complete"
)

// SoundPlayer plays notification sounds
type SoundPlayer interface {
	// PlaySound plays the default notification sound
	PlaySound() error

	// PlaySoundForEvent plays a sound for a specific event type
	PlaySoundForEvent(eventType string) error
}
