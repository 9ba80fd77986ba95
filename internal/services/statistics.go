package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/tomate-timer/tomate/internal/domain"
	"github.com/tomate-timer/tomate/internal/logging"
	"github.com/tomate-timer/tomate/internal/ports"
)

// StatsKey is the key the cumulative statistics are stored under
const StatsKey = "pomodoro_stats"

const storeTimeout = 5 * time.Second

// StatisticsService folds completion records into cumulative counters and
// persists a full snapshot after every change. Storage failures are logged
// and swallowed; the in-memory counters stay authoritative.
type StatisticsService struct {
	loaded bool
	mu     sync.Mutex
	stats  domain.Stats
	store  ports.KeyValueStore
}

// NewStatisticsService creates a new StatisticsService. Nothing is read
// from the store until the counters are first needed.
func NewStatisticsService(store ports.KeyValueStore) *StatisticsService {
	return &StatisticsService{store: store}
}

// Record folds a completion record and persists the result.
// It has the CompletionListener signature so it can subscribe to a clock.
func (s *StatisticsService) Record(rec domain.CompletionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded()
	s.stats = s.stats.Apply(rec)
	logging.Logger.Debug("Statistics updated",
		"category", rec.Category,
		"elapsed", rec.ElapsedSeconds,
		"interrupted", rec.Interrupted,
		"work_sessions", s.stats.WorkSessions)
	s.persist()
}

// Stats returns a copy of the current counters
func (s *StatisticsService) Stats() domain.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded()
	return s.stats
}

// Reset zeroes every counter and removes the persisted snapshot
func (s *StatisticsService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats = domain.Stats{}
	s.loaded = true

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := s.store.Delete(ctx, StatsKey); err != nil {
		logging.Logger.Error("Failed to delete statistics", "error", err)
		return
	}
	logging.Logger.Info("Statistics reset")
}

func (s *StatisticsService) ensureLoaded() {
	if s.loaded {
		return
	}
	s.loaded = true

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	raw, found, err := s.store.Get(ctx, StatsKey)
	if err != nil {
		logging.Logger.Error("Failed to load statistics, starting from zero", "error", err)
		return
	}
	if !found {
		return
	}

	stats, err := DecodeStats(raw)
	if err != nil {
		logging.Logger.Warn("Ignoring malformed statistics snapshot", "error", err)
		return
	}
	s.stats = stats
}

func (s *StatisticsService) persist() {
	data, err := json.Marshal(s.stats)
	if err != nil {
		logging.Logger.Error("Failed to encode statistics", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := s.store.Set(ctx, StatsKey, string(data)); err != nil {
		logging.Logger.Error("Failed to persist statistics", "error", err)
	}
}

// DecodeStats parses a persisted snapshot. Missing fields default to zero.
// A snapshot whose roundsCompleted disagrees with workSessions is normalised
// to workSessions.
func DecodeStats(raw string) (domain.Stats, error) {
	var probe any
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		return domain.Stats{}, fmt.Errorf("failed to parse statistics: %w", err)
	}
	if _, ok := probe.(map[string]any); !ok {
		return domain.Stats{}, fmt.Errorf("statistics snapshot is not an object")
	}

	var stats domain.Stats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return domain.Stats{}, fmt.Errorf("failed to decode statistics: %w", err)
	}
	if !stats.Valid() {
		return domain.Stats{}, fmt.Errorf("statistics snapshot has negative counters")
	}

	if stats.RoundsCompleted != stats.WorkSessions {
		logging.Logger.Warn("Normalising roundsCompleted to workSessions",
			"rounds_completed", stats.RoundsCompleted,
			"work_sessions", stats.WorkSessions)
		stats.RoundsCompleted = stats.WorkSessions
	}
	return stats, nil
}
