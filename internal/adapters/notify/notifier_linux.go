//go:build linux

package notify

import (
	"fmt"
	"os/exec"
)

// notify uses notify-send (libnotify)
func notify(appName, title, body string) error {
	if err := exec.Command("notify-send", "--app-name", appName, title, body).Run(); err != nil {
		return fmt.Errorf("notify-send failed: %w", err)
	}
	return nil
}
