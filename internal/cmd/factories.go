package cmd

import (
	"time"

	"github.com/tomate-timer/tomate/internal/adapters/ipc"
	adapternotify "github.com/tomate-timer/tomate/internal/adapters/notify"
	adaptersound "github.com/tomate-timer/tomate/internal/adapters/sound"
	adapterstorage "github.com/tomate-timer/tomate/internal/adapters/storage"
	"github.com/tomate-timer/tomate/internal/config"
	"github.com/tomate-timer/tomate/internal/logging"
	"github.com/tomate-timer/tomate/internal/ports"
	"github.com/tomate-timer/tomate/internal/services"
)

const requestTimeout = 5 * time.Second

// Container holds all dependencies for the application
type Container struct {
	// Services
	NotificationService *services.NotificationService
	SettingsService     *services.SettingsService
	StatisticsService   *services.StatisticsService

	// Adapters
	Client      *ipc.Client
	Loader      *config.Loader
	SoundPlayer *adaptersound.Player

	// Internal - for cleanup only
	sqliteStore *adapterstorage.SQLiteStore
}

// NewContainer creates a new Container with all dependencies wired.
// A nil loader reads the default settings path. Storage problems are not
// fatal: statistics then live in memory only.
func NewContainer(loader *config.Loader) (*Container, error) {
	if err := config.EnsureHome(); err != nil {
		logging.Logger.Warn("Failed to create tomate home", "path", config.GetTomateHome(), "error", err)
	}

	if loader == nil {
		loader = config.NewLoader(config.GetSettingsPath())
	}

	// Statistics survive a broken database in memory for this process
	var store ports.KeyValueStore
	sqliteStore, err := adapterstorage.NewSQLiteStore(config.GetDBPath())
	if err != nil {
		logging.Logger.Warn("Storage unavailable, statistics will not persist",
			"path", config.GetDBPath(), "error", err)
		store = adapterstorage.NewMemoryStore()
	} else {
		store = sqliteStore
	}

	soundPlayer := adaptersound.NewPlayer()

	return &Container{
		NotificationService: services.NewNotificationService(adapternotify.NewNotifier(), soundPlayer),
		SettingsService:     services.NewSettingsService(loader.Path()),
		StatisticsService:   services.NewStatisticsService(store),
		Client:              ipc.NewClient(config.GetSocketPath()),
		Loader:              loader,
		SoundPlayer:         soundPlayer,
		sqliteStore:         sqliteStore,
	}, nil
}

// Close closes all resources held by the container. Safe to call twice.
func (c *Container) Close() error {
	if c.sqliteStore == nil {
		return nil
	}
	err := c.sqliteStore.Close()
	c.sqliteStore = nil
	return err
}
