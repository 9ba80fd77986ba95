package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/tomate-timer/tomate/internal/adapters/ipc"
	"github.com/tomate-timer/tomate/internal/adapters/lock"
	"github.com/tomate-timer/tomate/internal/adapters/ticker"
	"github.com/tomate-timer/tomate/internal/config"
	"github.com/tomate-timer/tomate/internal/domain"
	"github.com/tomate-timer/tomate/internal/logging"
	"github.com/tomate-timer/tomate/internal/services"
)

// DaemonCmd runs the clock without a terminal. Commands arrive through
// the unix socket (see 'tomate ctl').
type DaemonCmd struct {
	Start bool       `help:"Start the first work session immediately"`
	Timer TimerFlags `embed:""`
}

// Run executes the daemon until SIGINT/SIGTERM
func (d *DaemonCmd) Run(cli *CLI) error {
	instanceLock, err := lock.Acquire(config.GetLockPath())
	if err != nil {
		return err
	}
	defer instanceLock.Release()

	server, err := ipc.Listen(config.GetSocketPath())
	if err != nil {
		return err
	}

	cfg := d.Timer.apply(cli.config)
	container := cli.Container
	container.NotificationService.SetEnabled(cfg.Notifications, cfg.Sound)

	clock := services.NewSessionClock(cfg.SessionConfig())
	clock.Subscribe(container.StatisticsService.Record)
	clock.Subscribe(container.NotificationService.HandleCompletion)
	if d.Start {
		clock.StartPause()
	}

	runner := services.NewRunner(clock, ticker.NewSystemTickerFactory())
	handler := ipc.NewDaemonHandler(runner, container.StatisticsService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return runner.Run(gctx)
	})
	g.Go(func() error {
		return server.Serve(gctx, handler)
	})
	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil {
			logging.Logger.Info("Shutdown signal received")
		}
		return nil
	})

	watcher := &daemonConfigWatcher{
		applied: cfg.SessionConfig(),
		flags:   d.Timer,
		notify:  container.NotificationService,
		runner:  runner,
	}
	container.Loader.Watch(watcher.onChange)

	logging.Logger.Info("Daemon started", "pid", os.Getpid(), "socket", config.GetSocketPath())
	fmt.Printf("tomate daemon running (pid %d), socket %s\n", os.Getpid(), config.GetSocketPath())

	err = g.Wait()
	container.NotificationService.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.Logger.Error("Daemon stopped with error", "error", err)
		return err
	}

	logging.Logger.Info("Daemon stopped")
	return nil
}

// daemonConfigWatcher feeds settings file edits into the runner
type daemonConfigWatcher struct {
	applied domain.SessionConfig
	flags   TimerFlags
	notify  *services.NotificationService
	runner  *services.Runner
}

// onChange runs on the file watcher goroutine, one event at a time
func (w *daemonConfigWatcher) onChange(cfg config.Config) {
	cfg = w.flags.apply(cfg)
	w.notify.SetEnabled(cfg.Notifications, cfg.Sound)

	sessionCfg := cfg.SessionConfig()
	if sessionCfg == w.applied {
		return
	}

	ctx, cancel := withTimeout()
	defer cancel()
	if err := w.runner.UpdateConfig(ctx, sessionCfg); err != nil {
		logging.Logger.Warn("Failed to apply settings change", "error", err)
		return
	}
	w.applied = sessionCfg
	logging.Logger.Info("Timer settings applied",
		"work_seconds", sessionCfg.WorkSeconds,
		"cycles", sessionCfg.CyclesBeforeLongBreak)
}
