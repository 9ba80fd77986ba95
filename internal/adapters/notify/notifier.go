package notify

import (
	"github.com/tomate-timer/tomate/internal/logging"
	"github.com/tomate-timer/tomate/internal/ports"
)

// Notifier implements ports.Notifier with the desktop's native mechanism.
// Platform-specific implementations are in notifier_*.go files with build tags.
type Notifier struct {
	appName string
}

var _ ports.Notifier = (*Notifier)(nil)

// NewNotifier creates a new desktop notifier
func NewNotifier() *Notifier {
	return &Notifier{appName: "tomate"}
}

// Notify shows a desktop notification
func (n *Notifier) Notify(title, body string) error {
	logging.Logger.Debug("Showing notification", "title", title)
	return notify(n.appName, title, body)
}
