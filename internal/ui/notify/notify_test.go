package notify

import (
	"io"
	"log/slog"
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*fyne.Notification
}

func (sender *fakeSender) SendNotification(notification *fyne.Notification) {
	sender.sent = append(sender.sent, notification)
}

func TestNotify(t *testing.T) {
	sender := &fakeSender{}
	notifier := New(sender, "Pomodoro", slog.New(slog.NewTextHandler(io.Discard, nil)))

	notifier.Notify("Time for a break! Relax for 5 minutes.")
	notifier.Notify("")

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Pomodoro", sender.sent[0].Title)
	assert.Equal(t, "Time for a break! Relax for 5 minutes.", sender.sent[0].Content)
}

func TestNotifyWithoutSender(t *testing.T) {
	notifier := New(nil, "Pomodoro", nil)
	notifier.Notify("hello")

	var nilNotifier *Notifier
	nilNotifier.Notify("hello")
}
