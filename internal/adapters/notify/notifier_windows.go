//go:build windows

package notify

import (
	"fmt"
	"os/exec"
	"strings"
)

const balloonScript = `Add-Type -AssemblyName System.Windows.Forms
$n = New-Object System.Windows.Forms.NotifyIcon
$n.Icon = [System.Drawing.SystemIcons]::Information
$n.BalloonTipTitle = '%s'
$n.BalloonTipText = '%s'
$n.Visible = $true
$n.ShowBalloonTip(5000)
Start-Sleep -Seconds 6
$n.Dispose()`

// notify shows a balloon tip through PowerShell
func notify(_, title, body string) error {
	script := fmt.Sprintf(balloonScript, psEscape(title), psEscape(body))
	if err := exec.Command("powershell", "-NoProfile", "-Command", script).Start(); err != nil {
		return fmt.Errorf("powershell notification failed: %w", err)
	}
	return nil
}

func psEscape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
