package cmd

import (
	"fmt"

	"github.com/tomate-timer/tomate/internal/logging"
)

// NotifyCmd fires the completion hooks by hand, to check that desktop
// notifications and sounds work on this machine
type NotifyCmd struct {
	Event string `arg:"" help:"Completion to simulate: work, short or long" enum:"work,short,long" default:"work" optional:""`
	Round int    `help:"Round number shown in the work notification" default:"1"`
}

// Run executes the notify command
func (n *NotifyCmd) Run(cli *CLI) error {
	cfg := cli.config
	service := cli.Container.NotificationService
	service.SetEnabled(cfg.Notifications, cfg.Sound)

	logging.Logger.Info("Manual notification", "event", n.Event, "round", n.Round)

	switch n.Event {
	case "short":
		service.OnBreakComplete(false)
	case "long":
		service.OnBreakComplete(true)
	default:
		service.OnWorkComplete(n.Round)
	}
	service.Wait()

	if !cfg.Notifications && !cfg.Sound {
		fmt.Println("Notifications and sound are both disabled in settings.")
	}
	return nil
}
