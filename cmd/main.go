package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/core/model"
	"pomodoro/internal/extension"
	"pomodoro/internal/platform"
	"pomodoro/internal/schedule"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/notify"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/tray"
)

const appName = "Pomodoro"

func main() {
	logger := newLogger()

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			logger.Warn("another instance is running", "error", err)
			return
		}
		logger.Error("single instance", "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = guard.Release()
	}()

	settingsPath, err := storage.ResolveConfigPath(appName)
	if err != nil {
		logger.Error("resolve settings path", "error", err)
		os.Exit(1)
	}
	settings := storage.NewFileSource(settingsPath, logger.With("component", "storage"))

	fyneApp := app.NewWithID("com.pomodoro.app")
	fyneApp.SetIcon(theme.HistoryIcon())
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		logger.Error("system tray unsupported on this platform")
		return
	}

	trayWindow := fyneApp.NewWindow(appName)
	trayWindow.SetContent(widget.NewLabel("Pomodoro is running in the system tray."))
	trayWindow.SetCloseIntercept(trayWindow.Hide)
	desktopApp.SetSystemTrayWindow(trayWindow)
	desktopApp.SetSystemTrayIcon(theme.HistoryIcon())

	scheduler := schedule.NewTicker(fyne.Do)
	defer scheduler.Close()

	host := &desktopHost{
		settings:  settings,
		notifier:  notify.New(fyneApp, appName, logger.With("component", "notify")),
		scheduler: scheduler,
		commands:  extension.NewCommands(),
		canvas:    trayWindow.Canvas(),
		logger:    logger.With("component", "host"),
	}
	host.tray = tray.New(desktopApp, host.execute)

	prefsWindow := preferences.New(fyneApp, settings.Config(), func(updated model.Config) {
		if err := settings.Save(updated); err != nil {
			logger.Error("save settings", "path", settings.Path(), "error", err)
			return
		}
		logger.Info("settings saved", "path", settings.Path())
	})

	ext, err := extension.Activate(host, logger)
	if err != nil {
		logger.Error("activate pomodoro", "error", err)
		os.Exit(1)
	}

	host.tray.AddItem("Preferences", prefsWindow.Show)
	host.tray.AddItem("Quit", fyneApp.Quit)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := storage.Watch(ctx, settingsPath, logger.With("component", "storage"), func() {
		fyne.Do(func() {
			prefsWindow.UpdateSettings(settings.Config())
		})
	}); err != nil {
		logger.Warn("settings watcher unavailable", "error", err)
	}

	fyneApp.Run()
	ext.Deactivate()
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if value := os.Getenv("POMODORO_LOG_LEVEL"); value != "" {
		if err := level.UnmarshalText([]byte(value)); err != nil {
			level = slog.LevelInfo
		}
	}
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", appName))
}
