package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tomate-timer/tomate/internal/domain"
	"github.com/tomate-timer/tomate/internal/logging"
)

// errLockHeld is returned by the platform tryLock when another process owns the lock
var errLockHeld = errors.New("lock held")

// InstanceLock guarantees a single process writes the timer state at a time
type InstanceLock struct {
	file *os.File
	path string
}

// Acquire takes the exclusive lock at path without blocking. It returns
// domain.ErrAlreadyRunning when another process holds it.
func Acquire(path string) (*InstanceLock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := tryLock(file); err != nil {
		file.Close()
		if errors.Is(err, errLockHeld) {
			return nil, domain.ErrAlreadyRunning
		}
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}

	// Record the owner for troubleshooting; failure here is harmless
	if err := file.Truncate(0); err == nil {
		_, _ = file.WriteAt([]byte(strconv.Itoa(os.Getpid())+"\n"), 0)
	}

	logging.Logger.Debug("Instance lock acquired", "path", path, "pid", os.Getpid())
	return &InstanceLock{file: file, path: path}, nil
}

// Release drops the lock. Calling it more than once is a no-op.
func (l *InstanceLock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	unlockErr := unlock(l.file)
	closeErr := l.file.Close()
	l.file = nil
	logging.Logger.Debug("Instance lock released", "path", l.path)
	return errors.Join(unlockErr, closeErr)
}
