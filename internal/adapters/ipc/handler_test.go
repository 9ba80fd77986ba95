package ipc

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomate-timer/tomate/internal/domain"
	"github.com/tomate-timer/tomate/internal/services"
)

// clockAdapter drives a SessionClock synchronously behind ClockController
type clockAdapter struct {
	clock *services.SessionClock
	err   error
	mu    sync.Mutex
}

func (c *clockAdapter) Dispatch(_ context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return false, c.err
	}
	return c.clock.Dispatch(id), nil
}

func (c *clockAdapter) Snapshot(_ context.Context) (domain.Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return domain.Snapshot{}, c.err
	}
	return c.clock.Snapshot(), nil
}

type fakeStats struct {
	mu     sync.Mutex
	resets int
	stats  domain.Stats
}

func (f *fakeStats) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resets++
	f.stats = domain.Stats{}
}

func (f *fakeStats) Stats() domain.Stats {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stats
}

func newTestHandler() (*DaemonHandler, *clockAdapter, *fakeStats) {
	clock := &clockAdapter{clock: services.NewSessionClock(domain.DefaultSessionConfig())}
	stats := &fakeStats{stats: domain.Stats{WorkSessions: 2, RoundsCompleted: 2, TotalFocusSeconds: 3000}}
	return NewDaemonHandler(clock, stats), clock, stats
}

func mustCommand(t *testing.T, name string, args any) Command {
	t.Helper()
	cmd, err := NewCommand(name, args)
	require.NoError(t, err)
	return cmd
}

func TestDaemonHandler_Ping(t *testing.T) {
	h, _, _ := newTestHandler()

	resp := h.Handle(context.Background(), Command{Name: CmdPing})

	assert.True(t, resp.Success)
	assert.Equal(t, "pong", resp.Message)
}

func TestDaemonHandler_Dispatch(t *testing.T) {
	h, _, _ := newTestHandler()

	resp := h.Handle(context.Background(), mustCommand(t, CmdDispatch, DispatchArgs{Command: "short"}))

	require.True(t, resp.Success, resp.Message)
	var data StatusData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "short_break", data.Mode)
	assert.True(t, data.Running)
	assert.Equal(t, 300, data.RemainingSeconds)
}

func TestDaemonHandler_DispatchUnknown(t *testing.T) {
	h, _, _ := newTestHandler()

	resp := h.Handle(context.Background(), mustCommand(t, CmdDispatch, DispatchArgs{Command: "nap"}))

	require.True(t, resp.Success, resp.Message)
	assert.Equal(t, "ignored unknown command: nap", resp.Message)
	var data StatusData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "work", data.Mode)
	assert.False(t, data.Running)
	assert.Equal(t, 1500, data.RemainingSeconds)
}

func TestDaemonHandler_DispatchBadArgs(t *testing.T) {
	h, _, _ := newTestHandler()

	resp := h.Handle(context.Background(), Command{Name: CmdDispatch, Args: json.RawMessage(`[1]`)})

	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "Invalid args")
}

func TestDaemonHandler_RunnerError(t *testing.T) {
	h, clock, _ := newTestHandler()
	clock.err = domain.ErrRunnerStopped

	resp := h.Handle(context.Background(), Command{Name: CmdStatus})

	assert.False(t, resp.Success)
	assert.Equal(t, domain.ErrRunnerStopped.Error(), resp.Message)
}

func TestDaemonHandler_StatsAndReset(t *testing.T) {
	h, _, stats := newTestHandler()

	resp := h.Handle(context.Background(), Command{Name: CmdStats})
	require.True(t, resp.Success)
	var got domain.Stats
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Equal(t, 2, got.WorkSessions)

	resp = h.Handle(context.Background(), Command{Name: CmdResetStats})
	require.True(t, resp.Success)
	assert.Equal(t, 1, stats.resets)
}

func TestDaemonHandler_UnknownCommand(t *testing.T) {
	h, _, _ := newTestHandler()

	resp := h.Handle(context.Background(), Command{Name: "self-destruct"})

	assert.False(t, resp.Success)
	assert.Equal(t, "unknown command: self-destruct", resp.Message)
}

func TestStatusData_RoundTrip(t *testing.T) {
	snap := services.NewSessionClock(domain.DefaultSessionConfig()).Snapshot()

	back := NewStatusData(snap).Snapshot()

	assert.Equal(t, snap.State, back.State)
	assert.Equal(t, snap.ProgressPercent, back.ProgressPercent)
	assert.Equal(t, snap.Config.CyclesBeforeLongBreak, back.Config.CyclesBeforeLongBreak)
}
