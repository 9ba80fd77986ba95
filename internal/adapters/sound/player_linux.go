//go:build linux

package sound

import (
	"os/exec"

	"github.com/tomate-timer/tomate/internal/ports"
)

type candidate struct {
	args []string
	cmd  string
}

const freedesktop = "/usr/share/sounds/freedesktop/stereo/"

// playForEvent plays sounds on Linux using paplay (PulseAudio) or aplay (ALSA)
func playForEvent(eventType string) error {
	var name string
	switch eventType {
	case ports.SoundEventWorkComplete:
		name = "complete"
	case ports.SoundEventBreakComplete:
		name = "message"
	case ports.SoundEventLongBreakComplete:
		name = "service-login"
	default:
		name = "bell"
	}

	candidates := []candidate{
		{cmd: "paplay", args: []string{freedesktop + name + ".oga"}},
		{cmd: "aplay", args: []string{freedesktop + name + ".wav"}},
		{cmd: "paplay", args: []string{freedesktop + "bell.oga"}},
	}

	for _, c := range candidates {
		if err := exec.Command(c.cmd, c.args...).Run(); err == nil {
			return nil
		}
	}

	return terminalBell()
}
