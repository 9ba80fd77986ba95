//go:build darwin

package sound

import (
	"os/exec"

	"github.com/tomate-timer/tomate/internal/ports"
)

// playForEvent plays sounds on macOS using afplay
func playForEvent(eventType string) error {
	var soundFiles []string

	switch eventType {
	case ports.SoundEventWorkComplete:
		soundFiles = []string{
			"/System/Library/Sounds/Glass.aiff",
			"/System/Library/Sounds/Hero.aiff",
		}
	case ports.SoundEventBreakComplete:
		soundFiles = []string{
			"/System/Library/Sounds/Ping.aiff",
			"/System/Library/Sounds/Tink.aiff",
		}
	case ports.SoundEventLongBreakComplete:
		soundFiles = []string{
			"/System/Library/Sounds/Submarine.aiff",
			"/System/Library/Sounds/Ping.aiff",
		}
	default:
		soundFiles = []string{"/System/Library/Sounds/Glass.aiff"}
	}

	for _, soundFile := range soundFiles {
		if err := exec.Command("afplay", soundFile).Start(); err == nil {
			return nil
		}
	}

	return terminalBell()
}
