// Package timer coordinates the pomodoro state with its tick loop, the
// status indicator and state observers.
package timer

import (
	"log/slog"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/pomodoro"
	"pomodoro/internal/schedule"
)

// ConfigSource supplies the current settings. It is read at every phase start.
type ConfigSource interface {
	Config() model.Config
}

// Notifier shows a fire-and-forget message to the user.
type Notifier interface {
	Notify(message string)
}

// StatusItem is the status indicator owned by the Manager.
type StatusItem interface {
	SetText(text string)
	SetTooltip(tooltip string)
	Show()
	Dispose()
}

// Listener observes every state replacement.
type Listener func(state pomodoro.State)

// Options contains the Manager's collaborators.
type Options struct {
	Config       ConfigSource
	Notifier     Notifier
	Scheduler    schedule.Scheduler
	StatusItem   StatusItem
	TickInterval time.Duration
	Logger       *slog.Logger
}

type subscription struct {
	id       string
	listener Listener
}

// Manager owns the single timer state of the process.
type Manager struct {
	mu         sync.Mutex
	options    Options
	state      pomodoro.State
	item       StatusItem
	tickHandle schedule.Handle
	tickGen    uint64
	seq        uint64
	listeners  []subscription
	disposed   bool
}

// update is everything that must happen after a transition, outside the lock.
type update struct {
	seq       uint64
	state     pomodoro.State
	item      StatusItem
	listeners []Listener
	message   string
}

// New creates a stopped Manager and shows its status item.
func New(options Options) *Manager {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Scheduler == nil {
		options.Scheduler = schedule.NewTicker(nil)
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	manager := &Manager{
		options: options,
		state:   pomodoro.InitialState(),
		item:    options.StatusItem,
	}
	manager.render(manager.item, manager.state)
	if manager.item != nil {
		manager.item.Show()
	}
	return manager
}

// State returns the current state snapshot.
func (manager *Manager) State() pomodoro.State {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	return manager.state
}

// Start begins a work session when stopped, resumes when paused and does
// nothing when already running.
func (manager *Manager) Start() {
	manager.mu.Lock()
	if manager.disposed || manager.state.IsRunning {
		manager.mu.Unlock()
		return
	}

	var next pomodoro.State
	var message string
	if manager.state.Phase == pomodoro.PhaseStopped {
		next = pomodoro.StartWorkSession(manager.state, manager.configLocked())
		message = pomodoro.PhaseStartMessage(next)
		manager.options.Logger.Info("phase started", "phase", next.Phase, "remaining_seconds", next.TimeRemainingSeconds)
	} else {
		next = pomodoro.Resume(manager.state)
		manager.options.Logger.Debug("timer resumed", "phase", next.Phase, "remaining_seconds", next.TimeRemainingSeconds)
	}
	manager.startTickingLocked()
	pending := manager.replaceLocked(next, message)
	manager.mu.Unlock()

	manager.apply(pending)
}

// Stop halts the tick loop and pauses the current phase.
func (manager *Manager) Stop() {
	manager.mu.Lock()
	if manager.disposed {
		manager.mu.Unlock()
		return
	}
	manager.stopTickingLocked()
	if manager.state.Phase == pomodoro.PhaseStopped || !manager.state.IsRunning {
		manager.mu.Unlock()
		return
	}
	pending := manager.replaceLocked(pomodoro.Pause(manager.state), "")
	manager.options.Logger.Debug("timer paused", "phase", manager.state.Phase, "remaining_seconds", manager.state.TimeRemainingSeconds)
	manager.mu.Unlock()

	manager.apply(pending)
}

// Reset halts the tick loop and returns to the initial state.
func (manager *Manager) Reset() {
	manager.mu.Lock()
	if manager.disposed {
		manager.mu.Unlock()
		return
	}
	manager.stopTickingLocked()
	pending := manager.replaceLocked(pomodoro.Reset(), "")
	manager.options.Logger.Info("timer reset")
	manager.mu.Unlock()

	manager.apply(pending)
}

// ShowStatus sends the current status message to the notifier.
func (manager *Manager) ShowStatus() {
	manager.mu.Lock()
	if manager.disposed {
		manager.mu.Unlock()
		return
	}
	message := pomodoro.StatusMessage(manager.state)
	manager.mu.Unlock()

	manager.notify(message)
}

// Subscribe registers listener and returns a function that removes it.
// Listeners run synchronously, in registration order, after each state
// replacement.
func (manager *Manager) Subscribe(listener Listener) (unsubscribe func()) {
	if listener == nil {
		return func() {}
	}
	id := ulid.Make().String()

	manager.mu.Lock()
	if manager.disposed {
		manager.mu.Unlock()
		return func() {}
	}
	manager.listeners = append(manager.listeners, subscription{id: id, listener: listener})
	manager.mu.Unlock()

	return func() {
		manager.mu.Lock()
		defer manager.mu.Unlock()
		for index, sub := range manager.listeners {
			if sub.id == id {
				manager.listeners = append(manager.listeners[:index:index], manager.listeners[index+1:]...)
				return
			}
		}
	}
}

// Dispose stops ticking, releases the status item and drops all listeners.
// The Manager ignores every call afterwards.
func (manager *Manager) Dispose() {
	manager.mu.Lock()
	if manager.disposed {
		manager.mu.Unlock()
		return
	}
	manager.disposed = true
	manager.stopTickingLocked()
	item := manager.item
	manager.item = nil
	manager.listeners = nil
	manager.mu.Unlock()

	if item != nil {
		item.Dispose()
	}
}

// tick counts down one second. gen identifies the registration that fired;
// callbacks from a cancelled registration are dropped.
func (manager *Manager) tick(gen uint64) {
	manager.mu.Lock()
	if manager.disposed || !manager.state.IsRunning || manager.tickHandle == 0 || gen != manager.tickGen {
		manager.mu.Unlock()
		return
	}

	ticked := manager.replaceLocked(pomodoro.Tick(manager.state), "")
	if manager.state.TimeRemainingSeconds > 0 {
		manager.mu.Unlock()
		manager.apply(ticked)
		return
	}
	manager.stopTickingLocked()
	manager.mu.Unlock()

	manager.apply(ticked)

	manager.mu.Lock()
	// A listener may have stopped or reset the timer at zero.
	if manager.disposed || manager.seq != ticked.seq {
		manager.mu.Unlock()
		return
	}
	next := pomodoro.NextPhase(manager.state, manager.configLocked())
	started := manager.replaceLocked(next, pomodoro.PhaseStartMessage(next))
	manager.options.Logger.Info("phase started",
		"phase", next.Phase,
		"remaining_seconds", next.TimeRemainingSeconds,
		"sessions_completed", next.WorkSessionsCompleted)
	manager.startTickingLocked()
	manager.mu.Unlock()

	manager.apply(started)
}

func (manager *Manager) configLocked() model.Config {
	if manager.options.Config == nil {
		return model.DefaultConfig()
	}
	return manager.options.Config.Config()
}

func (manager *Manager) startTickingLocked() {
	manager.stopTickingLocked()
	manager.tickGen++
	gen := manager.tickGen
	manager.tickHandle = manager.options.Scheduler.Every(manager.options.TickInterval, func() {
		manager.tick(gen)
	})
}

func (manager *Manager) stopTickingLocked() {
	if manager.tickHandle == 0 {
		return
	}
	manager.options.Scheduler.Cancel(manager.tickHandle)
	manager.tickHandle = 0
}

func (manager *Manager) replaceLocked(next pomodoro.State, message string) update {
	manager.seq++
	manager.state = next
	listeners := make([]Listener, 0, len(manager.listeners))
	for _, sub := range manager.listeners {
		listeners = append(listeners, sub.listener)
	}
	return update{
		seq:       manager.seq,
		state:     next,
		item:      manager.item,
		listeners: listeners,
		message:   message,
	}
}

// apply delivers pending unless a newer replacement has superseded it,
// which happens when a listener sends a command while being notified.
func (manager *Manager) apply(pending update) {
	if !manager.current(pending.seq) {
		return
	}
	manager.render(pending.item, pending.state)
	if pending.message != "" {
		manager.notify(pending.message)
	}
	for _, listener := range pending.listeners {
		if !manager.current(pending.seq) {
			return
		}
		listener(pending.state)
	}
}

func (manager *Manager) current(seq uint64) bool {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	return !manager.disposed && manager.seq == seq
}

func (manager *Manager) render(item StatusItem, state pomodoro.State) {
	if item == nil {
		return
	}
	item.SetText(pomodoro.StatusBarText(state))
	item.SetTooltip(pomodoro.Tooltip(state))
}

func (manager *Manager) notify(message string) {
	if manager.options.Notifier == nil {
		return
	}
	manager.options.Notifier.Notify(message)
}
