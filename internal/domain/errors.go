package domain

import "errors"

var (
	ErrAlreadyRunning   = errors.New("another tomate instance is already running")
	ErrDaemonNotRunning = errors.New("tomate daemon is not running")
	ErrRunnerStopped    = errors.New("runner stopped")
	ErrUnknownCommand   = errors.New("unknown command")
)
