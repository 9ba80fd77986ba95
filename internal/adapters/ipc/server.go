package ipc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/tomate-timer/tomate/internal/logging"
)

const ioTimeout = 5 * time.Second

// Server accepts one command per connection on a unix socket
type Server struct {
	listener *net.UnixListener
	path     string
}

// Listen binds the socket at path. A leftover socket file nobody answers on
// is removed; a live one means another daemon is running.
func Listen(path string) (*Server, error) {
	if _, err := os.Stat(path); err == nil {
		conn, dialErr := net.DialTimeout("unix", path, 500*time.Millisecond)
		if dialErr == nil {
			conn.Close()
			return nil, fmt.Errorf("socket %s already active, another daemon might be running", path)
		}
		logging.Logger.Warn("Removing stale socket file", "path", path)
		if err := os.Remove(path); err != nil {
			return nil, fmt.Errorf("failed to remove stale socket file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("error checking socket file %s: %w", path, err)
	}

	addr, err := net.ResolveUnixAddr("unix", path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve unix addr %s: %w", path, err)
	}
	listener, err := net.ListenUnix("unix", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on socket %s: %w", path, err)
	}
	if err := os.Chmod(path, 0600); err != nil {
		listener.Close()
		return nil, fmt.Errorf("failed to set permissions on socket %s: %w", path, err)
	}

	logging.Logger.Info("Listening for commands", "socket", path)
	return &Server{listener: listener, path: path}, nil
}

// Serve accepts connections until ctx is cancelled, then waits for
// in-flight connections and removes the socket file
func (s *Server) Serve(ctx context.Context, handler Handler) error {
	var wg conc.WaitGroup
	defer func() {
		wg.Wait()
		os.Remove(s.path)
		logging.Logger.Info("Socket command listener stopped")
	}()

	go func() {
		<-ctx.Done()
		s.listener.Close()
	}()

	for {
		conn, err := s.listener.AcceptUnix()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			logging.Logger.Warn("Failed to accept connection", "error", err)
			time.Sleep(100 * time.Millisecond)
			continue
		}
		wg.Go(func() {
			s.handleConnection(ctx, conn, handler)
		})
	}
}

// Close stops accepting connections
func (s *Server) Close() error {
	return s.listener.Close()
}

func (s *Server) handleConnection(ctx context.Context, conn *net.UnixConn, handler Handler) {
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(ioTimeout))
	decoder := json.NewDecoder(conn)
	encoder := json.NewEncoder(conn)

	var cmd Command
	if err := decoder.Decode(&cmd); err != nil {
		if !errors.Is(err, io.EOF) {
			logging.Logger.Warn("Failed to decode command", "error", err)
		}
		_ = encoder.Encode(Fail("Failed to decode command: " + err.Error()))
		return
	}

	conn.SetReadDeadline(time.Time{})
	conn.SetWriteDeadline(time.Now().Add(ioTimeout))

	reqCtx, cancel := context.WithTimeout(ctx, ioTimeout)
	defer cancel()
	resp := handler.Handle(reqCtx, cmd)

	if err := encoder.Encode(resp); err != nil {
		logging.Logger.Warn("Failed to send response", "error", err)
	}
}
