package ipc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/tomate-timer/tomate/internal/domain"
)

// Client talks to a running daemon
type Client struct {
	path    string
	timeout time.Duration
}

// NewClient creates a client for the socket at path
func NewClient(path string) *Client {
	return &Client{path: path, timeout: ioTimeout}
}

// Send delivers cmd and returns the daemon's response. When nobody listens
// on the socket the error wraps domain.ErrDaemonNotRunning.
func (c *Client) Send(ctx context.Context, cmd Command) (Response, error) {
	dialer := net.Dialer{Timeout: 2 * time.Second}
	conn, err := dialer.DialContext(ctx, "unix", c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, syscall.ECONNREFUSED) {
			return Response{}, fmt.Errorf("%w (socket %s)", domain.ErrDaemonNotRunning, c.path)
		}
		return Response{}, fmt.Errorf("failed to connect to daemon: %w", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	conn.SetDeadline(deadline)

	if err := json.NewEncoder(conn).Encode(cmd); err != nil {
		return Response{}, fmt.Errorf("failed to send command: %w", err)
	}

	var resp Response
	if err := json.NewDecoder(conn).Decode(&resp); err != nil {
		return Response{}, fmt.Errorf("failed to read response: %w", err)
	}
	return resp, nil
}

// Ping checks that a daemon answers
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.call(ctx, CmdPing, nil)
	return err
}

// Dispatch sends a clock command and returns the resulting snapshot
func (c *Client) Dispatch(ctx context.Context, id string) (domain.Snapshot, error) {
	resp, err := c.call(ctx, CmdDispatch, DispatchArgs{Command: id})
	if err != nil {
		return domain.Snapshot{}, err
	}
	return decodeSnapshot(resp)
}

// Status returns the daemon's clock snapshot
func (c *Client) Status(ctx context.Context) (domain.Snapshot, error) {
	resp, err := c.call(ctx, CmdStatus, nil)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return decodeSnapshot(resp)
}

// Stats returns the daemon's statistics
func (c *Client) Stats(ctx context.Context) (domain.Stats, error) {
	resp, err := c.call(ctx, CmdStats, nil)
	if err != nil {
		return domain.Stats{}, err
	}
	var stats domain.Stats
	if err := json.Unmarshal(resp.Data, &stats); err != nil {
		return domain.Stats{}, fmt.Errorf("failed to decode statistics: %w", err)
	}
	return stats, nil
}

// ResetStats clears the daemon's statistics
func (c *Client) ResetStats(ctx context.Context) error {
	_, err := c.call(ctx, CmdResetStats, nil)
	return err
}

func (c *Client) call(ctx context.Context, name string, args any) (Response, error) {
	cmd, err := NewCommand(name, args)
	if err != nil {
		return Response{}, err
	}
	resp, err := c.Send(ctx, cmd)
	if err != nil {
		return Response{}, err
	}
	if !resp.Success {
		return resp, errors.New(resp.Message)
	}
	return resp, nil
}

func decodeSnapshot(resp Response) (domain.Snapshot, error) {
	var data StatusData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to decode status: %w", err)
	}
	return data.Snapshot(), nil
}
