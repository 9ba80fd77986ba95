//go:build darwin

package notify

import (
	"fmt"
	"os/exec"
	"strconv"
)

// notify uses AppleScript's display notification
func notify(appName, title, body string) error {
	script := fmt.Sprintf("display notification %s with title %s subtitle %s",
		strconv.Quote(body), strconv.Quote(title), strconv.Quote(appName))
	if err := exec.Command("osascript", "-e", script).Run(); err != nil {
		return fmt.Errorf("osascript failed: %w", err)
	}
	return nil
}
