package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/tomate-timer/tomate/internal/adapters/ipc"
	"github.com/tomate-timer/tomate/internal/domain"
)

// StatusCmd displays the daemon's clock
type StatusCmd struct {
	Format string `help:"Output format: table, json or short (for status bars)" enum:"table,json,short" default:"table"`
}

// Run executes the status command
func (s *StatusCmd) Run(cli *CLI) error {
	ctx, cancel := withTimeout()
	defer cancel()

	snap, err := cli.Container.Client.Status(ctx)
	if err != nil {
		// Status bars poll this; keep their output stable when no daemon runs
		if s.Format == "short" && errors.Is(err, domain.ErrDaemonNotRunning) {
			fmt.Print("--:--")
			return nil
		}
		return err
	}

	switch s.Format {
	case "json":
		data, err := json.MarshalIndent(ipc.NewStatusData(snap), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	case "short":
		fmt.Print(domain.WindowTitle(snap))
	default:
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "Mode\t%s\n", snap.State.Mode.Label())
		fmt.Fprintf(w, "Remaining\t%s\n", domain.FormatClock(snap.State.RemainingSeconds))
		fmt.Fprintf(w, "Progress\t%d%%\n", snap.ProgressPercent)
		fmt.Fprintf(w, "State\t%s\n", runningLabel(snap.State.Running))
		fmt.Fprintf(w, "Rounds\t%d/%d (%d total)\n",
			snap.RoundInCycle(), snap.Config.CyclesBeforeLongBreak, snap.State.CompletedWorkSessions)
		fmt.Fprintf(w, "Auto-break\t%s\n", onOff(snap.Config.AutoStartBreak))
		w.Flush()
	}
	return nil
}

func runningLabel(running bool) string {
	if running {
		return "Running"
	}
	return "Paused"
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
