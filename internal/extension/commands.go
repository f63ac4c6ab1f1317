package extension

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrDuplicateCommand indicates a command id is already registered.
	ErrDuplicateCommand = errors.New("command already registered")
	// ErrUnknownCommand indicates no action is registered for a command id.
	ErrUnknownCommand = errors.New("unknown command")
)

// Commands maps command ids to zero-argument actions, keeping registration order.
type Commands struct {
	mu      sync.RWMutex
	order   []string
	actions map[string]func()
}

// NewCommands creates an empty registry.
func NewCommands() *Commands {
	return &Commands{actions: make(map[string]func())}
}

// Register adds an action under id.
func (commands *Commands) Register(id string, action func()) error {
	if id == "" || action == nil {
		return fmt.Errorf("register command %q: empty id or action", id)
	}
	commands.mu.Lock()
	defer commands.mu.Unlock()
	if _, exists := commands.actions[id]; exists {
		return fmt.Errorf("register command %q: %w", id, ErrDuplicateCommand)
	}
	commands.actions[id] = action
	commands.order = append(commands.order, id)
	return nil
}

// Unregister removes id. Unknown ids are ignored.
func (commands *Commands) Unregister(id string) {
	commands.mu.Lock()
	defer commands.mu.Unlock()
	if _, exists := commands.actions[id]; !exists {
		return
	}
	delete(commands.actions, id)
	for index, registered := range commands.order {
		if registered == id {
			commands.order = append(commands.order[:index:index], commands.order[index+1:]...)
			break
		}
	}
}

// Execute runs the action registered under id.
func (commands *Commands) Execute(id string) error {
	commands.mu.RLock()
	action, ok := commands.actions[id]
	commands.mu.RUnlock()
	if !ok {
		return fmt.Errorf("execute command %q: %w", id, ErrUnknownCommand)
	}
	action()
	return nil
}

// IDs returns the registered ids in registration order.
func (commands *Commands) IDs() []string {
	commands.mu.RLock()
	defer commands.mu.RUnlock()
	return append([]string(nil), commands.order...)
}
