//go:build windows

package sound

import (
	"os/exec"

	"github.com/tomate-timer/tomate/internal/ports"
)

// playForEvent plays sounds on Windows using PowerShell
func playForEvent(eventType string) error {
	var soundCommands []string

	switch eventType {
	case ports.SoundEventWorkComplete:
		soundCommands = []string{
			"[System.Media.SystemSounds]::Asterisk.Play()",
			"[System.Media.SystemSounds]::Beep.Play()",
		}
	case ports.SoundEventBreakComplete, ports.SoundEventLongBreakComplete:
		soundCommands = []string{
			"[System.Media.SystemSounds]::Exclamation.Play()",
			"[System.Media.SystemSounds]::Beep.Play()",
		}
	default:
		soundCommands = []string{"[System.Media.SystemSounds]::Beep.Play()"}
	}

	for _, soundCmd := range soundCommands {
		if err := exec.Command("powershell", "-c", soundCmd).Run(); err == nil {
			return nil
		}
	}

	return terminalBell()
}
