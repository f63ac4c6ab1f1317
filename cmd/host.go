package main

import (
	"log/slog"

	"fyne.io/fyne/v2"

	"pomodoro/internal/core/model"
	"pomodoro/internal/extension"
	"pomodoro/internal/schedule"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/notify"
	"pomodoro/internal/ui/shortcut"
	"pomodoro/internal/ui/tray"
)

// desktopHost adapts the fyne tray app to extension.Host.
type desktopHost struct {
	settings  *storage.FileSource
	notifier  *notify.Notifier
	scheduler *schedule.Ticker
	tray      *tray.Manager
	commands  *extension.Commands
	canvas    fyne.Canvas
	logger    *slog.Logger
}

func (host *desktopHost) Config() model.Config {
	return host.settings.Config()
}

func (host *desktopHost) Notify(message string) {
	host.notifier.Notify(message)
}

func (host *desktopHost) Scheduler() schedule.Scheduler {
	return host.scheduler
}

func (host *desktopHost) NewStatusItem() extension.StatusItem {
	return host.tray
}

func (host *desktopHost) RegisterCommand(id string, action func()) error {
	if err := host.commands.Register(id, action); err != nil {
		return err
	}
	title := extension.CommandTitles[id]
	if title == "" {
		title = id
	}
	host.tray.AddCommand(id, title)
	return nil
}

func (host *desktopHost) UnregisterCommand(id string) {
	host.commands.Unregister(id)
	host.tray.RemoveCommand(id)
}

func (host *desktopHost) BindKey(chord, commandID string) error {
	keys, err := shortcut.Parse(chord)
	if err != nil {
		return err
	}
	host.canvas.AddShortcut(keys, func(fyne.Shortcut) {
		host.execute(commandID)
	})
	return nil
}

func (host *desktopHost) execute(commandID string) {
	if err := host.commands.Execute(commandID); err != nil {
		host.logger.Error("command failed", "command", commandID, "error", err)
	}
}
