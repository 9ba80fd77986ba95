//go:build unix

package lock

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomate-timer/tomate/internal/domain"
)

func TestAcquire_Exclusive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tomate.lock")

	first, err := Acquire(path)
	require.NoError(t, err)
	defer first.Release()

	_, err = Acquire(path)
	assert.ErrorIs(t, err, domain.ErrAlreadyRunning)
}

func TestAcquire_AfterRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tomate.lock")

	first, err := Acquire(path)
	require.NoError(t, err)
	require.NoError(t, first.Release())
	require.NoError(t, first.Release())

	second, err := Acquire(path)
	require.NoError(t, err)
	assert.NoError(t, second.Release())
}

func TestAcquire_WritesPid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tomate.lock")

	l, err := Acquire(path)
	require.NoError(t, err)
	defer l.Release()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), strings.TrimSpace(string(data)))
}
