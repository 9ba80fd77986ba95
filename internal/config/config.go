package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/tomate-timer/tomate/internal/domain"
	"github.com/tomate-timer/tomate/internal/logging"
)

// Setting keys, shared by the settings file, TOMATE_* env vars and viper
const (
	KeyAutoStartBreak        = "auto_start_break"
	KeyCreditInterrupted     = "credit_interrupted"
	KeyCyclesBeforeLongBreak = "cycles_before_long_break"
	KeyDebug                 = "debug"
	KeyKeys                  = "keys"
	KeyLongBreakMinutes      = "long_break_minutes"
	KeyMaxLogFiles           = "max_log_files"
	KeyNotifications         = "notifications"
	KeyShortBreakMinutes     = "short_break_minutes"
	KeySound                 = "sound"
	KeyWorkMinutes           = "work_minutes"
)

// Config is the effective configuration after defaults, settings.json and
// environment have been merged
type Config struct {
	AutoStartBreak        bool              `json:"auto_start_break" mapstructure:"auto_start_break"`
	CreditInterrupted     bool              `json:"credit_interrupted" mapstructure:"credit_interrupted"`
	CyclesBeforeLongBreak int               `json:"cycles_before_long_break" mapstructure:"cycles_before_long_break"`
	Debug                 bool              `json:"debug" mapstructure:"debug"`
	Keys                  KeyBindingsConfig `json:"keys" mapstructure:"keys"`
	LongBreakMinutes      int               `json:"long_break_minutes" mapstructure:"long_break_minutes"`
	MaxLogFiles           int               `json:"max_log_files" mapstructure:"max_log_files"`
	Notifications         bool              `json:"notifications" mapstructure:"notifications"`
	ShortBreakMinutes     int               `json:"short_break_minutes" mapstructure:"short_break_minutes"`
	Sound                 bool              `json:"sound" mapstructure:"sound"`
	WorkMinutes           int               `json:"work_minutes" mapstructure:"work_minutes"`
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	return Config{
		AutoStartBreak:        false,
		CreditInterrupted:     true,
		CyclesBeforeLongBreak: domain.DefaultCyclesBeforeLongBreak,
		LongBreakMinutes:      domain.DefaultLongBreakMinutes,
		MaxLogFiles:           logging.DefaultMaxLogFiles,
		Notifications:         true,
		ShortBreakMinutes:     domain.DefaultShortBreakMinutes,
		Sound:                 true,
		WorkMinutes:           domain.DefaultWorkMinutes,
	}
}

// SessionConfig converts the timer settings to the clock's configuration
func (c Config) SessionConfig() domain.SessionConfig {
	return domain.SessionConfig{
		AutoStartBreak:        c.AutoStartBreak,
		CreditInterrupted:     c.CreditInterrupted,
		CyclesBeforeLongBreak: c.CyclesBeforeLongBreak,
		LongBreakSeconds:      c.LongBreakMinutes * 60,
		ShortBreakSeconds:     c.ShortBreakMinutes * 60,
		WorkSeconds:           c.WorkMinutes * 60,
	}.Clamp()
}

// Clamp raises every duration and the cadence to at least 1, logging a
// warning for each value it had to fix
func (c *Config) Clamp() {
	clampMin(&c.WorkMinutes, KeyWorkMinutes)
	clampMin(&c.ShortBreakMinutes, KeyShortBreakMinutes)
	clampMin(&c.LongBreakMinutes, KeyLongBreakMinutes)
	clampMin(&c.CyclesBeforeLongBreak, KeyCyclesBeforeLongBreak)
	if c.MaxLogFiles < 0 {
		c.MaxLogFiles = 0
	}
}

func clampMin(v *int, key string) {
	if *v < 1 {
		logging.Logger.Warn("Setting too low, using 1", "key", key, "value", *v)
		*v = 1
	}
}

// Loader reads the effective configuration through viper and can watch the
// settings file for edits
type Loader struct {
	mu   sync.Mutex
	path string
	v    *viper.Viper
}

// NewLoader creates a Loader for the settings file at path
func NewLoader(path string) *Loader {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetEnvPrefix("TOMATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := DefaultConfig()
	v.SetDefault(KeyAutoStartBreak, d.AutoStartBreak)
	v.SetDefault(KeyCreditInterrupted, d.CreditInterrupted)
	v.SetDefault(KeyCyclesBeforeLongBreak, d.CyclesBeforeLongBreak)
	v.SetDefault(KeyDebug, d.Debug)
	v.SetDefault(KeyLongBreakMinutes, d.LongBreakMinutes)
	v.SetDefault(KeyMaxLogFiles, d.MaxLogFiles)
	v.SetDefault(KeyNotifications, d.Notifications)
	v.SetDefault(KeyShortBreakMinutes, d.ShortBreakMinutes)
	v.SetDefault(KeySound, d.Sound)
	v.SetDefault(KeyWorkMinutes, d.WorkMinutes)

	return &Loader{path: path, v: v}
}

// Path returns the settings file the loader reads
func (l *Loader) Path() string {
	return l.path
}

// Load reads settings.json (if present) and returns the merged, clamped
// configuration
func (l *Loader) Load() (Config, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read settings: %w", err)
		}
		logging.Logger.Debug("Settings file not found, using defaults", "path", l.path)
	}
	return l.decode()
}

// Watch calls onChange with the new configuration every time the settings
// file is written. Invalid edits are logged and skipped.
func (l *Loader) Watch(onChange func(Config)) {
	l.v.OnConfigChange(func(e fsnotify.Event) {
		l.onFileEvent(e, onChange)
	})
	l.v.WatchConfig()
	logging.Logger.Debug("Watching settings file", "path", l.path)
}

// onFileEvent runs after viper has re-read the file
func (l *Loader) onFileEvent(e fsnotify.Event, onChange func(Config)) {
	l.mu.Lock()
	cfg, err := l.decode()
	l.mu.Unlock()
	if err != nil {
		logging.Logger.Warn("Ignoring invalid settings change", "error", err, "op", e.Op.String())
		return
	}
	logging.Logger.Info("Settings file changed", "file", e.Name, "op", e.Op.String())
	onChange(cfg)
}

func (l *Loader) decode() (Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	cfg.Clamp()
	return cfg, nil
}
