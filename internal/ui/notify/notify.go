// Package notify delivers pomodoro messages as desktop notifications.
package notify

import (
	"log/slog"

	"fyne.io/fyne/v2"
)

// Sender posts a desktop notification. fyne.App satisfies it.
type Sender interface {
	SendNotification(notification *fyne.Notification)
}

// Notifier sends each message as a notification with a fixed title.
type Notifier struct {
	sender Sender
	title  string
	logger *slog.Logger
}

// New creates a Notifier.
func New(sender Sender, title string, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{sender: sender, title: title, logger: logger}
}

// Notify sends message. Empty messages are dropped.
func (notifier *Notifier) Notify(message string) {
	if notifier == nil || message == "" {
		return
	}
	notifier.logger.Info("notification", "message", message)
	if notifier.sender == nil {
		return
	}
	notifier.sender.SendNotification(fyne.NewNotification(notifier.title, message))
}
