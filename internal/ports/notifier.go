package ports

// Notifier shows desktop notifications
type Notifier interface {
	Notify(title, body string) error
}
