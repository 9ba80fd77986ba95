package cmd

import "github.com/tomate-timer/tomate/internal/ports"

// PlaySoundCmd plays a completion sound
type PlaySoundCmd struct {
	Event string `help:"Sound event" enum:"work_complete,break_complete,long_break_complete" default:"work_complete"`
}

// Run executes the sound playing logic
func (p *PlaySoundCmd) Run(cli *CLI) error {
	if p.Event == ports.SoundEventWorkComplete {
		return cli.Container.SoundPlayer.PlaySound()
	}
	return cli.Container.SoundPlayer.PlaySoundForEvent(p.Event)
}
