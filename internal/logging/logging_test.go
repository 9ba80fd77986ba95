package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateLogs_RemovesOldest(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"a.log", "b.log", "c.log"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, nil, 0644))
		mt := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(p, mt, mt))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), nil, 0644))

	require.NoError(t, rotateLogs(dir, 2))

	_, err := os.Stat(filepath.Join(dir, "a.log"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "b.log"))
	assert.True(t, os.IsNotExist(err))
	assert.FileExists(t, filepath.Join(dir, "c.log"))
	assert.FileExists(t, filepath.Join(dir, "keep.txt"))
}

func TestRotateLogs_UnderLimit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.log"), nil, 0644))

	require.NoError(t, rotateLogs(dir, 5))

	assert.FileExists(t, filepath.Join(dir, "a.log"))
}

func TestInitialize_DisabledDiscards(t *testing.T) {
	t.Setenv(EnvDebug, "")
	t.Setenv(EnvDebugFile, "")

	path, err := Initialize(Options{})

	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotNil(t, Logger)
}

func TestInitialize_CustomFile(t *testing.T) {
	t.Setenv(EnvDebug, "")
	t.Setenv(EnvDebugFile, "")
	file := filepath.Join(t.TempDir(), "nested", "debug.log")

	path, err := Initialize(Options{DebugFile: file})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close() })

	assert.Equal(t, file, path)
	Logger.Info("hello")
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
