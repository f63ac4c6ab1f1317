// Package schedule provides the periodic callback primitive that drives the timer.
package schedule

import (
	"sync"
	"time"
)

// Handle identifies a periodic registration. The zero Handle is never issued.
type Handle uint64

// Scheduler runs callbacks repeatedly at a fixed interval.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Handle
	Cancel(handle Handle)
}

// Dispatcher runs fn on the host's event loop.
type Dispatcher func(fn func())

// Ticker is a Scheduler backed by time.Ticker, one goroutine per registration.
type Ticker struct {
	mu       sync.Mutex
	dispatch Dispatcher
	next     Handle
	stops    map[Handle]chan struct{}
}

// NewTicker creates a Ticker. Callbacks are passed to dispatch; a nil
// dispatch runs them directly on the ticker goroutine.
func NewTicker(dispatch Dispatcher) *Ticker {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &Ticker{
		dispatch: dispatch,
		stops:    make(map[Handle]chan struct{}),
	}
}

// Every starts calling fn once per interval until the handle is cancelled.
func (ticker *Ticker) Every(interval time.Duration, fn func()) Handle {
	if interval <= 0 {
		interval = time.Second
	}
	stopCh := make(chan struct{})

	ticker.mu.Lock()
	ticker.next++
	handle := ticker.next
	ticker.stops[handle] = stopCh
	ticker.mu.Unlock()

	go ticker.run(interval, stopCh, fn)
	return handle
}

// Cancel stops a registration. Unknown or already cancelled handles are ignored.
func (ticker *Ticker) Cancel(handle Handle) {
	ticker.mu.Lock()
	stopCh, ok := ticker.stops[handle]
	delete(ticker.stops, handle)
	ticker.mu.Unlock()

	if ok {
		close(stopCh)
	}
}

// Active returns the number of live registrations.
func (ticker *Ticker) Active() int {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	return len(ticker.stops)
}

// Close cancels every registration.
func (ticker *Ticker) Close() {
	ticker.mu.Lock()
	stops := ticker.stops
	ticker.stops = make(map[Handle]chan struct{})
	ticker.mu.Unlock()

	for _, stopCh := range stops {
		close(stopCh)
	}
}

func (ticker *Ticker) run(interval time.Duration, stopCh chan struct{}, fn func()) {
	timeTicker := time.NewTicker(interval)
	defer timeTicker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-timeTicker.C:
			ticker.dispatch(func() {
				// The dispatcher may run fn after Cancel returned.
				select {
				case <-stopCh:
					return
				default:
				}
				fn()
			})
		}
	}
}
