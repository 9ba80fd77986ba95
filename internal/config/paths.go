package config

import (
	"os"
	"path/filepath"
)

// GetTomateHome returns TOMATE_HOME or ~/.tomate default
func GetTomateHome() string {
	home := os.Getenv("TOMATE_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".tomate"
		}
		return filepath.Join(homeDir, ".tomate")
	}
	return ExpandPath(home)
}

// GetDBPath returns $TOMATE_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetTomateHome(), "state.db")
}

// GetSettingsPath returns $TOMATE_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetTomateHome(), "settings.json")
}

// GetSocketPath returns $TOMATE_HOME/tomate.sock
func GetSocketPath() string {
	return filepath.Join(GetTomateHome(), "tomate.sock")
}

// GetLockPath returns $TOMATE_HOME/tomate.lock
func GetLockPath() string {
	return filepath.Join(GetTomateHome(), "tomate.lock")
}

// EnsureHome creates $TOMATE_HOME if needed
func EnsureHome() error {
	return os.MkdirAll(GetTomateHome(), 0755)
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
