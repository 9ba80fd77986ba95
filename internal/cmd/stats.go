package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/huh"

	"github.com/tomate-timer/tomate/internal/adapters/lock"
	"github.com/tomate-timer/tomate/internal/config"
	"github.com/tomate-timer/tomate/internal/domain"
	"github.com/tomate-timer/tomate/internal/logging"
)

// StatsCmd groups the statistics commands
type StatsCmd struct {
	Show  StatsShowCmd  `cmd:"" help:"Show cumulative statistics" default:"withargs"`
	Reset StatsResetCmd `cmd:"reset" help:"Reset all statistics to zero"`
}

// StatsShowCmd prints the counters
type StatsShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the stats command. A running daemon is asked first so the
// numbers include its latest completions.
func (s *StatsShowCmd) Run(cli *CLI) error {
	ctx, cancel := withTimeout()
	defer cancel()

	stats, err := cli.Container.Client.Stats(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrDaemonNotRunning) {
			return err
		}
		logging.Logger.Debug("Daemon not running, reading statistics from disk")
		stats = cli.Container.StatisticsService.Stats()
	}

	if s.Format == "json" {
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Work sessions\t%d\n", stats.WorkSessions)
	fmt.Fprintf(w, "Rounds completed\t%d\n", stats.RoundsCompleted)
	fmt.Fprintf(w, "Short breaks\t%d\n", stats.ShortBreaksTaken)
	fmt.Fprintf(w, "Long breaks\t%d\n", stats.LongBreaksTaken)
	fmt.Fprintf(w, "Total focus\t%s\n", domain.FormatHMS(stats.TotalFocusSeconds))
	fmt.Fprintf(w, "Total break\t%s\n", domain.FormatHMS(stats.TotalBreakSeconds))
	return w.Flush()
}

// StatsResetCmd zeroes every counter
type StatsResetCmd struct {
	Yes bool `help:"Do not ask for confirmation" short:"y"`
}

// Run executes the reset command
func (s *StatsResetCmd) Run(cli *CLI) error {
	if !s.Yes {
		confirmed := false
		err := huh.NewConfirm().
			Title("Reset all statistics?").
			Description("Counters and totals go back to zero. This cannot be undone.").
			Affirmative("Reset").
			Negative("Cancel").
			Value(&confirmed).
			Run()
		if err != nil {
			return fmt.Errorf("confirmation failed: %w", err)
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	ctx, cancel := withTimeout()
	defer cancel()

	err := cli.Container.Client.ResetStats(ctx)
	if err == nil {
		fmt.Println("Statistics reset.")
		return nil
	}
	if !errors.Is(err, domain.ErrDaemonNotRunning) {
		return err
	}

	// No daemon: write directly, but only if no TUI owns the store
	instanceLock, err := lock.Acquire(config.GetLockPath())
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyRunning) {
			return fmt.Errorf("%w: reset statistics from the TUI instead", err)
		}
		return err
	}
	defer instanceLock.Release()

	cli.Container.StatisticsService.Reset()
	fmt.Println("Statistics reset.")
	return nil
}
