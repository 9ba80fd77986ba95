package services

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"

	"github.com/tomate-timer/tomate/internal/domain"
	"github.com/tomate-timer/tomate/internal/logging"
	"github.com/tomate-timer/tomate/internal/ports"
)

// NotificationService runs the collaborator hooks (desktop notification and
// sound) when a session completes naturally. Hooks are fire-and-forget:
// errors and panics are logged, never returned to the clock.
type NotificationService struct {
	notifier      ports.Notifier
	notifyEnabled atomic.Bool
	soundEnabled  atomic.Bool
	soundPlayer   ports.SoundPlayer
	wg            conc.WaitGroup
}

// NewNotificationService creates a new NotificationService with both
// halves enabled
func NewNotificationService(notifier ports.Notifier, soundPlayer ports.SoundPlayer) *NotificationService {
	s := &NotificationService{
		notifier:    notifier,
		soundPlayer: soundPlayer,
	}
	s.notifyEnabled.Store(true)
	s.soundEnabled.Store(true)
	return s
}

// SetEnabled switches desktop notifications and sounds on or off
func (s *NotificationService) SetEnabled(notifications, sound bool) {
	s.notifyEnabled.Store(notifications)
	s.soundEnabled.Store(sound)
}

// HandleCompletion is a CompletionListener that maps natural completions to
// the work/break hooks. Interrupted records are ignored.
func (s *NotificationService) HandleCompletion(rec domain.CompletionRecord) {
	if rec.Interrupted {
		return
	}
	switch rec.Category {
	case domain.ModeWork:
		s.OnWorkComplete(rec.Round)
	case domain.ModeShortBreak, domain.ModeLongBreak:
		s.OnBreakComplete(rec.Category == domain.ModeLongBreak)
	}
}

// OnWorkComplete fires the work-finished hooks for the given round
func (s *NotificationService) OnWorkComplete(round int) {
	s.fire("work_complete",
		"Work Session Complete!",
		fmt.Sprintf("Great job! You've completed round %d. Time for a break!", round),
		ports.SoundEventWorkComplete)
}

// OnBreakComplete fires the break-finished hooks
func (s *NotificationService) OnBreakComplete(isLong bool) {
	kind, event := "Short", ports.SoundEventBreakComplete
	if isLong {
		kind, event = "Long", ports.SoundEventLongBreakComplete
	}
	s.fire("break_complete",
		fmt.Sprintf("%s Break Complete!", kind),
		fmt.Sprintf("Your %s break is over. Ready to get back to work?", strings.ToLower(kind)),
		event)
}

// Wait blocks until every in-flight hook has finished
func (s *NotificationService) Wait() {
	s.wg.Wait()
}

func (s *NotificationService) fire(hook, title, body, soundEvent string) {
	if s.notifyEnabled.Load() && s.notifier != nil {
		s.run(hook+".notify", func() error {
			return s.notifier.Notify(title, body)
		})
	}
	if s.soundEnabled.Load() && s.soundPlayer != nil {
		s.run(hook+".sound", func() error {
			logging.Logger.Debug("Playing sound for event", "event", soundEvent)
			return s.soundPlayer.PlaySoundForEvent(soundEvent)
		})
	}
}

func (s *NotificationService) run(name string, fn func() error) {
	s.wg.Go(func() {
		var pc panics.Catcher
		pc.Try(func() {
			if err := fn(); err != nil {
				logging.Logger.Warn("Hook failed", "hook", name, "error", err)
			}
		})
		if r := pc.Recovered(); r != nil {
			logging.Logger.Error("Hook panicked", "hook", name, "panic", r.Value, "stack", string(r.Stack))
		}
	})
}
