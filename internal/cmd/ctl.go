package cmd

import (
	"fmt"
	"os"

	"github.com/tomate-timer/tomate/internal/domain"
	"github.com/tomate-timer/tomate/internal/logging"
)

// CtlCmd sends one clock command to the running daemon
type CtlCmd struct {
	Command string `arg:"" help:"Command identifier (see 'tomate commands')"`
}

// Run executes the ctl command. Identifiers the daemon cannot act on are a
// no-op: the state is printed unchanged and the exit status stays zero.
func (c *CtlCmd) Run(cli *CLI) error {
	if notice := ctlNotice(c.Command); notice != "" {
		fmt.Fprintln(os.Stderr, notice)
	}

	ctx, cancel := withTimeout()
	defer cancel()

	logging.Logger.Debug("Sending command to daemon", "command", c.Command)
	snap, err := cli.Container.Client.Dispatch(ctx, c.Command)
	if err != nil {
		return err
	}

	fmt.Println(domain.WindowTitle(snap))
	return nil
}

// ctlNotice explains why an identifier will be ignored, or returns ""
func ctlNotice(id string) string {
	cmd := domain.GetCommandByID(id)
	switch {
	case cmd == nil:
		return fmt.Sprintf("Ignoring %v: %s (see 'tomate commands')", domain.ErrUnknownCommand, id)
	case cmd.UIOnly:
		return fmt.Sprintf("Ignoring '%s': only available in the TUI", cmd.ID)
	}
	return ""
}
