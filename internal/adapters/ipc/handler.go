package ipc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tomate-timer/tomate/internal/domain"
	"github.com/tomate-timer/tomate/internal/logging"
)

// ClockController is the part of the runner the daemon exposes
type ClockController interface {
	Dispatch(ctx context.Context, id string) (bool, error)
	Snapshot(ctx context.Context) (domain.Snapshot, error)
}

// StatsController is the part of the statistics service the daemon exposes
type StatsController interface {
	Reset()
	Stats() domain.Stats
}

// Handler processes a decoded Command
type Handler interface {
	Handle(ctx context.Context, cmd Command) Response
}

// DaemonHandler routes socket commands to the runner and statistics
type DaemonHandler struct {
	clock ClockController
	stats StatsController
}

// NewDaemonHandler creates a new DaemonHandler
func NewDaemonHandler(clock ClockController, stats StatsController) *DaemonHandler {
	return &DaemonHandler{clock: clock, stats: stats}
}

// Handle implements Handler
func (h *DaemonHandler) Handle(ctx context.Context, cmd Command) Response {
	logging.Logger.Debug("Handling command", "name", cmd.Name)

	switch cmd.Name {
	case CmdPing:
		return OK("pong", nil)

	case CmdDispatch:
		var args DispatchArgs
		if err := json.Unmarshal(cmd.Args, &args); err != nil {
			return Fail(fmt.Sprintf("Invalid args for %s: %v", cmd.Name, err))
		}
		handled, err := h.clock.Dispatch(ctx, args.Command)
		if err != nil {
			return Fail(err.Error())
		}
		if !handled {
			// Unknown commands are a no-op, reported with the unchanged state
			return h.status(ctx, fmt.Sprintf("ignored %v: %s", domain.ErrUnknownCommand, args.Command))
		}
		return h.status(ctx, fmt.Sprintf("%s applied", args.Command))

	case CmdStatus:
		return h.status(ctx, "")

	case CmdStats:
		return OK("", h.stats.Stats())

	case CmdResetStats:
		h.stats.Reset()
		return OK("Statistics reset", h.stats.Stats())

	default:
		return Fail(fmt.Sprintf("%v: %s", domain.ErrUnknownCommand, cmd.Name))
	}
}

func (h *DaemonHandler) status(ctx context.Context, message string) Response {
	snap, err := h.clock.Snapshot(ctx)
	if err != nil {
		return Fail(err.Error())
	}
	return OK(message, NewStatusData(snap))
}
