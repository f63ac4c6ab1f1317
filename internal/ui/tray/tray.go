// Package tray renders the pomodoro status indicator and its commands in the
// system tray menu.
package tray

import (
	"sync"

	"fyne.io/fyne/v2"
)

const menuTitle = "Pomodoro"

// MenuHost displays a system tray menu. desktop.App satisfies it.
type MenuHost interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

type entry struct {
	id     string
	label  string
	action func()
}

// Manager is the tray status item. The first rows of the menu show the
// status text and tooltip; clicking the status row runs the bound command.
type Manager struct {
	mu        sync.Mutex
	host      MenuHost
	execute   func(commandID string)
	commands  []entry
	extras    []entry
	text      string
	tooltip   string
	commandID string
	visible   bool
	disposed  bool
}

// New creates a tray manager. execute runs a command by id.
func New(host MenuHost, execute func(commandID string)) *Manager {
	return &Manager{
		host:    host,
		execute: execute,
	}
}

// AddCommand adds a menu row that runs commandID.
func (manager *Manager) AddCommand(commandID, title string) {
	manager.mu.Lock()
	manager.commands = append(manager.commands, entry{id: commandID, label: title, action: func() {
		manager.run(commandID)
	}})
	manager.mu.Unlock()
	manager.refreshMenu()
}

// RemoveCommand drops the menu row added for commandID.
func (manager *Manager) RemoveCommand(commandID string) {
	manager.mu.Lock()
	removed := false
	for index, command := range manager.commands {
		if command.id == commandID {
			manager.commands = append(manager.commands[:index:index], manager.commands[index+1:]...)
			removed = true
			break
		}
	}
	manager.mu.Unlock()
	if removed {
		manager.refreshMenu()
	}
}

// AddItem adds a menu row below the commands that calls action.
func (manager *Manager) AddItem(label string, action func()) {
	manager.mu.Lock()
	manager.extras = append(manager.extras, entry{label: label, action: action})
	manager.mu.Unlock()
	manager.refreshMenu()
}

// SetText updates the status row.
func (manager *Manager) SetText(text string) {
	if !manager.update(func() { manager.text = text }) {
		return
	}
	manager.refreshMenu()
}

// SetTooltip updates the detail row below the status.
func (manager *Manager) SetTooltip(tooltip string) {
	if !manager.update(func() { manager.tooltip = tooltip }) {
		return
	}
	manager.refreshMenu()
}

// SetCommand binds the status row to commandID.
func (manager *Manager) SetCommand(commandID string) {
	if !manager.update(func() { manager.commandID = commandID }) {
		return
	}
	manager.refreshMenu()
}

// Show makes the status rows visible.
func (manager *Manager) Show() {
	if !manager.update(func() { manager.visible = true }) {
		return
	}
	manager.refreshMenu()
}

// Dispose removes the status rows. Later updates are ignored.
func (manager *Manager) Dispose() {
	manager.mu.Lock()
	if manager.disposed {
		manager.mu.Unlock()
		return
	}
	manager.disposed = true
	manager.visible = false
	manager.mu.Unlock()
	manager.refreshMenu()
}

// Menu builds the current tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	var items []*fyne.MenuItem
	if manager.visible {
		commandID := manager.commandID
		status := fyne.NewMenuItem(manager.text, func() {
			if commandID != "" {
				manager.run(commandID)
			}
		})
		items = append(items, status)
		if manager.tooltip != "" {
			detail := fyne.NewMenuItem(manager.tooltip, nil)
			detail.Disabled = true
			items = append(items, detail)
		}
		items = append(items, fyne.NewMenuItemSeparator())
	}
	for _, command := range manager.commands {
		items = append(items, fyne.NewMenuItem(command.label, command.action))
	}
	if len(manager.extras) > 0 && len(manager.commands) > 0 {
		items = append(items, fyne.NewMenuItemSeparator())
	}
	for _, extra := range manager.extras {
		items = append(items, fyne.NewMenuItem(extra.label, extra.action))
	}
	return fyne.NewMenu(menuTitle, items...)
}

func (manager *Manager) update(change func()) bool {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	if manager.disposed {
		return false
	}
	change()
	return true
}

func (manager *Manager) run(commandID string) {
	if manager.execute != nil {
		manager.execute(commandID)
	}
}

func (manager *Manager) refreshMenu() {
	if manager.host == nil {
		return
	}
	manager.host.SetSystemTrayMenu(manager.Menu())
}
