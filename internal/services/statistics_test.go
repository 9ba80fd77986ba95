package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tomate-timer/tomate/internal/domain"
	portsmocks "github.com/tomate-timer/tomate/internal/ports/mocks"
)

func TestStatisticsService_LoadsLazily(t *testing.T) {
	store := portsmocks.NewMockKeyValueStore(t)
	svc := NewStatisticsService(store)

	store.EXPECT().Get(mock.Anything, StatsKey).
		Return(`{"workSessions":3,"totalFocusSeconds":4500,"totalBreakSeconds":600,"roundsCompleted":3,"shortBreaksTaken":2,"longBreaksTaken":0}`, true, nil).
		Once()

	stats := svc.Stats()
	assert.Equal(t, 3, stats.WorkSessions)
	assert.Equal(t, 4500, stats.TotalFocusSeconds)
	assert.Equal(t, 2, stats.ShortBreaksTaken)

	// second access does not hit the store again
	_ = svc.Stats()
}

func TestStatisticsService_AbsentKeyStartsAtZero(t *testing.T) {
	store := portsmocks.NewMockKeyValueStore(t)
	svc := NewStatisticsService(store)

	store.EXPECT().Get(mock.Anything, StatsKey).Return("", false, nil).Once()

	assert.Equal(t, domain.Stats{}, svc.Stats())
}

func TestStatisticsService_MalformedContentStartsAtZero(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "{{{"},
		{"array", "[1,2,3]"},
		{"string", `"hello"`},
		{"negative counter", `{"workSessions":-1}`},
		{"wrong type", `{"workSessions":"three"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := portsmocks.NewMockKeyValueStore(t)
			svc := NewStatisticsService(store)
			store.EXPECT().Get(mock.Anything, StatsKey).Return(tt.raw, true, nil).Once()

			assert.Equal(t, domain.Stats{}, svc.Stats())
		})
	}
}

func TestStatisticsService_StoreErrorOnLoadIsSwallowed(t *testing.T) {
	store := portsmocks.NewMockKeyValueStore(t)
	svc := NewStatisticsService(store)

	store.EXPECT().Get(mock.Anything, StatsKey).Return("", false, errors.New("disk on fire")).Once()

	assert.Equal(t, domain.Stats{}, svc.Stats())
}

func TestStatisticsService_RecordPersistsFullSnapshot(t *testing.T) {
	store := portsmocks.NewMockKeyValueStore(t)
	svc := NewStatisticsService(store)

	store.EXPECT().Get(mock.Anything, StatsKey).Return("", false, nil).Once()

	var written string
	store.EXPECT().Set(mock.Anything, StatsKey, mock.AnythingOfType("string")).
		Run(func(_ context.Context, _ string, value string) { written = value }).
		Return(nil).
		Once()

	svc.Record(domain.CompletionRecord{Category: domain.ModeWork, ElapsedSeconds: 1500, Round: 1})

	var decoded map[string]int
	require.NoError(t, json.Unmarshal([]byte(written), &decoded))
	assert.Equal(t, map[string]int{
		"workSessions":      1,
		"totalFocusSeconds": 1500,
		"totalBreakSeconds": 0,
		"roundsCompleted":   1,
		"shortBreaksTaken":  0,
		"longBreaksTaken":   0,
	}, decoded)
}

func TestStatisticsService_StoreErrorOnWriteKeepsMemory(t *testing.T) {
	store := portsmocks.NewMockKeyValueStore(t)
	svc := NewStatisticsService(store)

	store.EXPECT().Get(mock.Anything, StatsKey).Return("", false, nil).Once()
	store.EXPECT().Set(mock.Anything, StatsKey, mock.Anything).Return(errors.New("quota exceeded")).Twice()

	svc.Record(domain.CompletionRecord{Category: domain.ModeShortBreak, ElapsedSeconds: 300})
	svc.Record(domain.CompletionRecord{Category: domain.ModeLongBreak, ElapsedSeconds: 900})

	stats := svc.Stats()
	assert.Equal(t, 1200, stats.TotalBreakSeconds)
	assert.Equal(t, 1, stats.ShortBreaksTaken)
	assert.Equal(t, 1, stats.LongBreaksTaken)
}

func TestStatisticsService_Reset(t *testing.T) {
	store := portsmocks.NewMockKeyValueStore(t)
	svc := NewStatisticsService(store)

	store.EXPECT().Get(mock.Anything, StatsKey).Return(`{"workSessions":2,"roundsCompleted":2}`, true, nil).Once()
	store.EXPECT().Delete(mock.Anything, StatsKey).Return(nil).Once()

	require.Equal(t, 2, svc.Stats().WorkSessions)
	svc.Reset()

	assert.Equal(t, domain.Stats{}, svc.Stats())
}

func TestStatisticsService_SubscribedToClock(t *testing.T) {
	store := portsmocks.NewMockKeyValueStore(t)
	svc := NewStatisticsService(store)
	store.EXPECT().Get(mock.Anything, StatsKey).Return("", false, nil).Once()
	store.EXPECT().Set(mock.Anything, StatsKey, mock.Anything).Return(nil)

	clock := NewSessionClock(testConfig())
	clock.Subscribe(svc.Record)
	clock.StartPause()
	tickN(clock, 60)
	clock.StartPause()
	tickN(clock, 10)

	stats := svc.Stats()
	assert.Equal(t, 1, stats.WorkSessions)
	assert.Equal(t, 1, stats.RoundsCompleted)
	assert.Equal(t, 60, stats.TotalFocusSeconds)
	assert.Equal(t, 10, stats.TotalBreakSeconds)
	assert.Equal(t, 1, stats.ShortBreaksTaken)
}

func TestDecodeStats_MissingFieldsDefaultToZero(t *testing.T) {
	stats, err := DecodeStats(`{"workSessions":4,"totalFocusSeconds":6000,"totalBreakSeconds":1500,"roundsCompleted":4,"longBreaksTaken":1}`)

	require.NoError(t, err)
	assert.Equal(t, 0, stats.ShortBreaksTaken)
	assert.Equal(t, 1, stats.LongBreaksTaken)
}

func TestDecodeStats_NormalisesRounds(t *testing.T) {
	stats, err := DecodeStats(`{"workSessions":5,"roundsCompleted":7}`)

	require.NoError(t, err)
	assert.Equal(t, 5, stats.RoundsCompleted)
}
