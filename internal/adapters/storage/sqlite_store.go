package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tomate-timer/tomate/internal/config"
	"github.com/tomate-timer/tomate/internal/ports"
)

const maxRetries = 3

// ErrStorageFull is returned when the database file cannot grow
var ErrStorageFull = errors.New("storage full")

// SQLiteStore implements ports.KeyValueStore on a single SQLite table
type SQLiteStore struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.KeyValueStore = (*SQLiteStore)(nil)

// NewSQLiteStore opens (creating if needed) the database at dbPath
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dbPath = config.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:      newGormLogger(),
		NowFunc:     func() time.Time { return time.Now().UTC() },
		PrepareStmt: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets the CLI read statistics while the daemon writes
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}

	if err := db.AutoMigrate(&KVEntryModel{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate kv_entries schema: %w", err)
	}
	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get implements KeyValueStore.Get
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry KVEntryModel
	err := withRetry(func() error {
		return s.db.WithContext(ctx).Where("name = ?", key).Take(&entry).Error
	}, maxRetries)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, classify(err))
	}
	return entry.Value, true, nil
}

// Set implements KeyValueStore.Set as an upsert
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	err := withRetry(func() error {
		return s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&KVEntryModel{Name: key, Value: value}).Error
	}, maxRetries)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, classify(err))
	}
	return nil
}

// Delete implements KeyValueStore.Delete
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	err := withRetry(func() error {
		return s.db.WithContext(ctx).Where("name = ?", key).Delete(&KVEntryModel{}).Error
	}, maxRetries)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, classify(err))
	}
	return nil
}

// classify maps SQLite's full-disk error to ErrStorageFull
func classify(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrFull {
		return fmt.Errorf("%w: %v", ErrStorageFull, err)
	}
	return err
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		err = fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries: %w", maxRetries, err)
}
