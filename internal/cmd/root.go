package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tomate-timer/tomate/internal/adapters/lock"
	"github.com/tomate-timer/tomate/internal/config"
	"github.com/tomate-timer/tomate/internal/domain"
	"github.com/tomate-timer/tomate/internal/logging"
	"github.com/tomate-timer/tomate/internal/services"
	"github.com/tomate-timer/tomate/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run       RunCmd       `cmd:"" help:"Start the timer TUI (default)" default:"withargs"`
	Daemon    DaemonCmd    `cmd:"daemon" help:"Run the timer headless, controlled through a unix socket"`
	Ctl       CtlCmd       `cmd:"ctl" help:"Send a command to the running daemon"`
	Status    StatusCmd    `cmd:"status" help:"Show the daemon's timer state"`
	Stats     StatsCmd     `cmd:"stats" help:"Show or reset cumulative statistics"`
	Commands  CommandsCmd  `cmd:"commands" help:"List command identifiers"`
	Settings  SettingsCmd  `cmd:"settings" help:"Manage settings (meta, show, keys)"`
	PlaySound PlaySoundCmd `cmd:"play-sound" help:"Play a completion sound (cross-platform)" hidden:""`
	Notify    NotifyCmd    `cmd:"notify" help:"Show a desktop notification" hidden:""`

	// Internal fields (not flags)
	Container *Container     `kong:"-"`
	config    config.Config  `kong:"-"`
	loader    *config.Loader `kong:"-"`
}

// SetConfig sets the loader and the configuration it produced before parsing
func (c *CLI) SetConfig(loader *config.Loader, cfg config.Config) {
	c.loader = loader
	c.config = cfg
}

// loaderPath returns the settings file in use
func (c *CLI) loaderPath() string {
	if c.loader != nil {
		return c.loader.Path()
	}
	return config.GetSettingsPath()
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// The loader already merged env and settings.json, so only flags left at
	// their default value take the loaded value.
	if c.MaxLogFiles == logging.DefaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv(logging.EnvMaxLogFiles); !hasEnv {
			c.MaxLogFiles = c.config.MaxLogFiles
		}
	}
	if !c.Debug && c.config.Debug {
		c.Debug = true
	}

	if _, err := logging.Initialize(logging.Options{
		Debug:       c.Debug,
		DebugFile:   c.DebugFile,
		MaxLogFiles: c.MaxLogFiles,
	}); err != nil {
		return err
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv(logging.EnvMaxLogFiles, strconv.Itoa(c.MaxLogFiles))
	}

	// Container opens the database, whose gorm logger needs logging ready
	container, err := NewContainer(c.loader)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	var err error
	if c.Container != nil {
		err = c.Container.Close()
	}
	return errors.Join(err, logging.Close())
}

// TimerFlags override the timer settings for one invocation
type TimerFlags struct {
	Cycles int `help:"Work sessions before a long break (overrides settings)"`
	Long   int `help:"Long break length in minutes (overrides settings)"`
	Short  int `help:"Short break length in minutes (overrides settings)"`
	Work   int `help:"Work session length in minutes (overrides settings)"`
}

// apply returns cfg with every flag that was given (> 0) applied
func (f TimerFlags) apply(cfg config.Config) config.Config {
	if f.Cycles > 0 {
		cfg.CyclesBeforeLongBreak = f.Cycles
	}
	if f.Long > 0 {
		cfg.LongBreakMinutes = f.Long
	}
	if f.Short > 0 {
		cfg.ShortBreakMinutes = f.Short
	}
	if f.Work > 0 {
		cfg.WorkMinutes = f.Work
	}
	return cfg
}

// RunCmd starts the TUI application
type RunCmd struct {
	Dev   bool       `help:"Enable development mode (shows version info in dialogs)"`
	Timer TimerFlags `embed:""`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	logging.Logger.Info("Starting tomate TUI")

	instanceLock, err := lock.Acquire(config.GetLockPath())
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyRunning) {
			return fmt.Errorf("%w (stop the other TUI or daemon first, or use 'tomate ctl')", err)
		}
		return err
	}
	defer instanceLock.Release()

	cfg := r.Timer.apply(cli.config)
	container := cli.Container
	container.NotificationService.SetEnabled(cfg.Notifications, cfg.Sound)

	clock := services.NewSessionClock(cfg.SessionConfig())
	clock.Subscribe(container.StatisticsService.Record)
	clock.Subscribe(container.NotificationService.HandleCompletion)

	model := ui.NewModel(
		clock,
		container.StatisticsService,
		container.SettingsService,
		cfg,
		r.Dev,
		func(applied config.Config) {
			container.NotificationService.SetEnabled(applied.Notifications, applied.Sound)
		},
	)

	logging.Logger.Debug("Initializing Bubble Tea program")
	p := tea.NewProgram(model, tea.WithAltScreen())

	container.Loader.Watch(func(changed config.Config) {
		p.Send(ui.ConfigChangedMsg{Config: r.Timer.apply(changed)})
	})

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	// Let the last notification or sound finish before the process exits
	container.NotificationService.Wait()

	logging.Logger.Info("TUI program exited normally")
	return nil
}

// withTimeout is the deadline used for one-shot socket requests
func withTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}
