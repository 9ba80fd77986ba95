package ipc

import (
	"encoding/json"
	"fmt"

	"github.com/tomate-timer/tomate/internal/domain"
)

// Command names understood by the daemon
const (
	CmdDispatch   = "dispatch"
	CmdPing       = "ping"
	CmdResetStats = "reset-stats"
	CmdStats      = "stats"
	CmdStatus     = "status"
)

// Command is a request sent over the socket, one JSON document per connection
type Command struct {
	Args json.RawMessage `json:"args,omitempty"`
	Name string          `json:"name"`
}

// Response is sent back for every Command
type Response struct {
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Success bool            `json:"success"`
}

// DispatchArgs carries a clock command identifier
type DispatchArgs struct {
	Command string `json:"command"`
}

// StatusData is the wire form of a clock snapshot
type StatusData struct {
	AutoStartBreak        bool   `json:"autoStartBreak"`
	CompletedWorkSessions int    `json:"completedWorkSessions"`
	CyclesBeforeLongBreak int    `json:"cyclesBeforeLongBreak"`
	Mode                  string `json:"mode"`
	ProgressPercent       int    `json:"progressPercent"`
	RemainingSeconds      int    `json:"remainingSeconds"`
	Running               bool   `json:"running"`
	SessionSeconds        int    `json:"sessionSeconds"`
}

// NewStatusData converts a snapshot for the wire
func NewStatusData(s domain.Snapshot) StatusData {
	return StatusData{
		AutoStartBreak:        s.Config.AutoStartBreak,
		CompletedWorkSessions: s.State.CompletedWorkSessions,
		CyclesBeforeLongBreak: s.Config.CyclesBeforeLongBreak,
		Mode:                  string(s.State.Mode),
		ProgressPercent:       s.ProgressPercent,
		RemainingSeconds:      s.State.RemainingSeconds,
		Running:               s.State.Running,
		SessionSeconds:        s.State.SessionSeconds,
	}
}

// Snapshot converts the wire form back. Only the fields carried over the
// wire are populated.
func (d StatusData) Snapshot() domain.Snapshot {
	return domain.Snapshot{
		Config: domain.SessionConfig{
			AutoStartBreak:        d.AutoStartBreak,
			CyclesBeforeLongBreak: d.CyclesBeforeLongBreak,
		},
		ProgressPercent: d.ProgressPercent,
		State: domain.SessionState{
			CompletedWorkSessions: d.CompletedWorkSessions,
			Mode:                  domain.Mode(d.Mode),
			RemainingSeconds:      d.RemainingSeconds,
			Running:               d.Running,
			SessionSeconds:        d.SessionSeconds,
		},
	}
}

// NewCommand builds a Command with JSON-encoded args (nil for none)
func NewCommand(name string, args any) (Command, error) {
	cmd := Command{Name: name}
	if args == nil {
		return cmd, nil
	}
	raw, err := json.Marshal(args)
	if err != nil {
		return Command{}, fmt.Errorf("failed to encode args for %s: %w", name, err)
	}
	cmd.Args = raw
	return cmd, nil
}

// OK builds a successful Response, encoding data if given
func OK(message string, data any) Response {
	resp := Response{Success: true, Message: message}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return Fail(fmt.Sprintf("failed to encode response: %v", err))
		}
		resp.Data = raw
	}
	return resp
}

// Fail builds an error Response
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}
