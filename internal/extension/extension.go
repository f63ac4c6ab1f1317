// Package extension binds the pomodoro timer to a host surface: it creates
// the timer on activation, registers its commands and tears it down on
// deactivation.
package extension

import (
	"fmt"
	"log/slog"
	"reflect"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timer"
	"pomodoro/internal/schedule"
)

const (
	// CommandStart starts a work session or resumes a paused one.
	CommandStart = "pomodoro.start"
	// CommandStop pauses the running phase.
	CommandStop = "pomodoro.stop"
	// CommandReset returns the timer to the initial state.
	CommandReset = "pomodoro.reset"
	// CommandShowStatus notifies the current status message.
	CommandShowStatus = "pomodoro.showStatus"

	// StartKeybinding is the chord bound to CommandStart.
	StartKeybinding = "ctrl+alt+p"
)

// CommandTitles holds the human-readable name of every command.
var CommandTitles = map[string]string{
	CommandStart:      "Start Pomodoro",
	CommandStop:       "Stop Pomodoro",
	CommandReset:      "Reset Pomodoro",
	CommandShowStatus: "Show Pomodoro Status",
}

// StatusItem is a status indicator that can trigger a command when clicked.
type StatusItem interface {
	timer.StatusItem
	SetCommand(commandID string)
}

// Host is the surface the extension runs in.
type Host interface {
	Config() model.Config
	Notify(message string)
	Scheduler() schedule.Scheduler
	NewStatusItem() StatusItem
	RegisterCommand(id string, action func()) error
	UnregisterCommand(id string)
	BindKey(chord, commandID string) error
}

// Extension is an activated pomodoro timer.
type Extension struct {
	manager *timer.Manager
	logger  *slog.Logger
}

// Activate creates the timer manager and registers its commands with host.
func Activate(host Host, logger *slog.Logger) (*Extension, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var status timer.StatusItem
	if item := host.NewStatusItem(); !isNil(item) {
		item.SetCommand(CommandShowStatus)
		status = item
	}

	manager := timer.New(timer.Options{
		Config:     host,
		Notifier:   host,
		Scheduler:  host.Scheduler(),
		StatusItem: status,
		Logger:     logger.With("component", "timer"),
	})

	commands := []struct {
		id     string
		action func()
	}{
		{CommandStart, manager.Start},
		{CommandStop, manager.Stop},
		{CommandReset, manager.Reset},
		{CommandShowStatus, manager.ShowStatus},
	}
	registered := make([]string, 0, len(commands))
	for _, command := range commands {
		if err := host.RegisterCommand(command.id, command.action); err != nil {
			for _, id := range registered {
				host.UnregisterCommand(id)
			}
			manager.Dispose()
			return nil, fmt.Errorf("activate: %w", err)
		}
		registered = append(registered, command.id)
	}

	if err := host.BindKey(StartKeybinding, CommandStart); err != nil {
		logger.Warn("keybinding unavailable", "chord", StartKeybinding, "error", err)
	}

	logger.Info("pomodoro activated")
	return &Extension{manager: manager, logger: logger}, nil
}

// Manager returns the timer manager owned by the extension.
func (extension *Extension) Manager() *timer.Manager {
	return extension.manager
}

// Deactivate disposes the timer. It is safe to call more than once.
func (extension *Extension) Deactivate() {
	if extension == nil || extension.manager == nil {
		return
	}
	extension.manager.Dispose()
	extension.logger.Info("pomodoro deactivated")
}

// isNil also catches a nil pointer stored in the interface.
func isNil(item StatusItem) bool {
	if item == nil {
		return true
	}
	value := reflect.ValueOf(item)
	return value.Kind() == reflect.Pointer && value.IsNil()
}
