package services

import (
	"context"
	"time"

	"github.com/tomate-timer/tomate/internal/domain"
	"github.com/tomate-timer/tomate/internal/logging"
	"github.com/tomate-timer/tomate/internal/ports"
)

// TickInterval is the wall-clock length of one countdown second
const TickInterval = time.Second

type commandMsg struct {
	id    string
	reply chan bool
}

type configMsg struct {
	cfg   domain.SessionConfig
	reply chan struct{}
}

type snapshotMsg struct {
	reply chan domain.Snapshot
}

// Runner owns a SessionClock on a single goroutine. Commands, configuration
// changes and snapshot queries arrive over channels and are applied one at a
// time; ticks come from a ticker that only exists while the clock runs.
type Runner struct {
	clock     *SessionClock
	commands  chan commandMsg
	configs   chan configMsg
	done      chan struct{}
	interval  time.Duration
	snapshots chan snapshotMsg
	tickers   ports.TickerFactory
}

// NewRunner creates a Runner around clock. The clock must not be touched
// by anyone else once Run has started.
func NewRunner(clock *SessionClock, tickers ports.TickerFactory) *Runner {
	return &Runner{
		clock:     clock,
		commands:  make(chan commandMsg),
		configs:   make(chan configMsg),
		done:      make(chan struct{}),
		interval:  TickInterval,
		snapshots: make(chan snapshotMsg),
		tickers:   tickers,
	}
}

// Run processes messages until ctx is cancelled
func (r *Runner) Run(ctx context.Context) error {
	defer close(r.done)

	var ticker ports.Ticker
	var tickC <-chan time.Time
	releaseTicker := func() {
		if ticker != nil {
			ticker.Stop()
			ticker, tickC = nil, nil
		}
	}
	defer releaseTicker()

	syncTicker := func() {
		switch {
		case r.clock.Running() && ticker == nil:
			ticker = r.tickers.NewTicker(r.interval)
			tickC = ticker.C()
			logging.Logger.Debug("Ticker acquired")
		case !r.clock.Running() && ticker != nil:
			releaseTicker()
			logging.Logger.Debug("Ticker released")
		}
	}
	syncTicker()

	logging.Logger.Info("Runner started")
	for {
		select {
		case <-ctx.Done():
			logging.Logger.Info("Runner stopping", "reason", ctx.Err())
			return nil
		case <-tickC:
			r.clock.Tick()
		case msg := <-r.commands:
			msg.reply <- r.clock.Dispatch(msg.id)
		case msg := <-r.configs:
			r.clock.UpdateConfig(msg.cfg)
			msg.reply <- struct{}{}
		case msg := <-r.snapshots:
			msg.reply <- r.clock.Snapshot()
		}
		syncTicker()
	}
}

// Dispatch sends a command to the clock and reports whether it was handled
func (r *Runner) Dispatch(ctx context.Context, id string) (bool, error) {
	msg := commandMsg{id: id, reply: make(chan bool, 1)}
	if err := send(ctx, r.done, r.commands, msg); err != nil {
		return false, err
	}
	return receive(ctx, r.done, msg.reply)
}

// UpdateConfig applies a configuration change on the loop goroutine
func (r *Runner) UpdateConfig(ctx context.Context, cfg domain.SessionConfig) error {
	msg := configMsg{cfg: cfg, reply: make(chan struct{}, 1)}
	if err := send(ctx, r.done, r.configs, msg); err != nil {
		return err
	}
	_, err := receive(ctx, r.done, msg.reply)
	return err
}

// Snapshot returns the clock state as seen by the loop
func (r *Runner) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	msg := snapshotMsg{reply: make(chan domain.Snapshot, 1)}
	if err := send(ctx, r.done, r.snapshots, msg); err != nil {
		return domain.Snapshot{}, err
	}
	return receive(ctx, r.done, msg.reply)
}

// Done is closed when Run returns
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

func send[T any](ctx context.Context, done <-chan struct{}, ch chan<- T, v T) error {
	select {
	case ch <- v:
		return nil
	case <-done:
		return domain.ErrRunnerStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

func receive[T any](ctx context.Context, done <-chan struct{}, ch <-chan T) (T, error) {
	var zero T
	select {
	case v := <-ch:
		return v, nil
	case <-done:
		// the loop may have replied just before exiting
		select {
		case v := <-ch:
			return v, nil
		default:
			return zero, domain.ErrRunnerStopped
		}
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
