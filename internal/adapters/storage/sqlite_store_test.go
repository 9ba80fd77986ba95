package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomate-timer/tomate/internal/domain"
	"github.com/tomate-timer/tomate/internal/services"
)

func newTestStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.db")
	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	store, _ := newTestStore(t)

	value, found, err := store.Get(context.Background(), "nope")

	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestSQLiteStore_SetThenGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "v1"))
	require.NoError(t, store.Set(ctx, "k", "v2"))

	value, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v2", value)
}

func TestSQLiteStore_Delete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "k", "v"))

	require.NoError(t, store.Delete(ctx, "k"))
	require.NoError(t, store.Delete(ctx, "k"))

	_, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	store, path := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "k", "durable"))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, found, err := reopened.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "durable", value)
}

func TestSQLiteStore_StatisticsSurviveRestart(t *testing.T) {
	store, path := newTestStore(t)
	stats := services.NewStatisticsService(store)
	stats.Record(domain.CompletionRecord{Category: domain.ModeWork, ElapsedSeconds: 1500, Round: 1})
	stats.Record(domain.CompletionRecord{Category: domain.ModeShortBreak, ElapsedSeconds: 300})
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	got := services.NewStatisticsService(reopened).Stats()
	assert.Equal(t, domain.Stats{
		WorkSessions:      1,
		RoundsCompleted:   1,
		TotalFocusSeconds: 1500,
		TotalBreakSeconds: 300,
		ShortBreaksTaken:  1,
	}, got)
}

func TestWithRetry_RetriesBusy(t *testing.T) {
	calls := 0
	err := withRetry(func() error {
		calls++
		if calls < 2 {
			return sqlite3.Error{Code: sqlite3.ErrBusy}
		}
		return nil
	}, 3)

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestWithRetry_GivesUp(t *testing.T) {
	calls := 0
	err := withRetry(func() error {
		calls++
		return sqlite3.Error{Code: sqlite3.ErrLocked}
	}, 3)

	assert.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_OtherErrorsReturnImmediately(t *testing.T) {
	calls := 0
	boom := errors.New("boom")
	err := withRetry(func() error {
		calls++
		return boom
	}, 3)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestClassify_Full(t *testing.T) {
	err := classify(sqlite3.Error{Code: sqlite3.ErrFull})

	assert.ErrorIs(t, err, ErrStorageFull)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	require.NoError(t, m.Set(ctx, "a", "1"))
	v, ok, err := m.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	require.NoError(t, m.Delete(ctx, "a"))
	_, ok, _ = m.Get(ctx, "a")
	assert.False(t, ok)
}
