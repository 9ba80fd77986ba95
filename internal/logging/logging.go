package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Environment variables inherited by child processes (daemon, hooks)
const (
	EnvDebug       = "TOMATE_DEBUG"
	EnvDebugFile   = "TOMATE_DEBUG_FILE"
	EnvMaxLogFiles = "TOMATE_MAX_LOG_FILES"
)

// DefaultMaxLogFiles is the rotation limit when none is configured
const DefaultMaxLogFiles = 1000

// Logger is the public logger instance accessible from all packages.
// It discards everything until Initialize is called.
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

var logFile *os.File

// Options controls where debug logs go
type Options struct {
	Debug       bool
	DebugFile   string
	MaxLogFiles int
}

// Initialize sets up the logger. Environment variables fill in whatever the
// caller left at its zero/default value.
func Initialize(opts Options) (string, error) {
	opts = mergeEnv(opts)

	if !opts.Debug && opts.DebugFile == "" {
		Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return "", nil
	}

	path, err := resolveLogPath(opts)
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}
	logFile = f

	Logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Logger.Info("Debug logging initialized", "log_file", path, "pid", os.Getpid())

	// Children (the daemon started from the TUI, notification helpers) log too
	os.Setenv(EnvDebug, "1")
	os.Setenv(EnvDebugFile, path)

	return path, nil
}

// Close flushes and closes the log file, if one is open
func Close() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	return err
}

func mergeEnv(opts Options) Options {
	if os.Getenv(EnvDebug) == "1" {
		opts.Debug = true
	}
	if v := os.Getenv(EnvDebugFile); v != "" && opts.DebugFile == "" {
		opts.DebugFile = v
	}
	if v := os.Getenv(EnvMaxLogFiles); v != "" && (opts.MaxLogFiles == 0 || opts.MaxLogFiles == DefaultMaxLogFiles) {
		if parsed, err := strconv.Atoi(v); err == nil {
			opts.MaxLogFiles = parsed
		}
	}
	if opts.MaxLogFiles == 0 {
		opts.MaxLogFiles = DefaultMaxLogFiles
	}
	return opts
}

func resolveLogPath(opts Options) (string, error) {
	if opts.DebugFile != "" {
		// Custom file: no rotation
		if err := os.MkdirAll(filepath.Dir(opts.DebugFile), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return opts.DebugFile, nil
	}

	logDir, err := LogDir()
	if err != nil {
		return "", fmt.Errorf("failed to get log directory: %w", err)
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	if opts.MaxLogFiles > 0 {
		if err := rotateLogs(logDir, opts.MaxLogFiles); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}

	return filepath.Join(logDir, uuid.New().String()+".log"), nil
}

// rotateLogs deletes the oldest .log files so that, after one more is
// created, at most maxLogFiles remain
func rotateLogs(logDir string, maxLogFiles int) error {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFileInfo struct {
		modTime time.Time
		path    string
	}
	var logs []logFileInfo

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		logs = append(logs, logFileInfo{modTime: info.ModTime(), path: filepath.Join(logDir, entry.Name())})
	}

	if len(logs) < maxLogFiles {
		return nil
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].modTime.Before(logs[j].modTime)
	})

	excess := len(logs) - maxLogFiles + 1
	for _, l := range logs[:excess] {
		if err := os.Remove(l.path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", l.path, err)
		}
	}
	return nil
}

// LogDir returns the OS-specific log directory
func LogDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Logs", "tomate"), nil
	case "linux":
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			stateHome = filepath.Join(homeDir, ".local", "state")
		}
		return filepath.Join(stateHome, "tomate"), nil
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, "tomate", "logs"), nil
	default:
		return filepath.Join(homeDir, ".tomate", "logs"), nil
	}
}
