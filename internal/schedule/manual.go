package schedule

import (
	"sort"
	"sync"
	"time"
)

// Manual is a Scheduler whose registrations fire only when Advance is called.
type Manual struct {
	mu      sync.Mutex
	next    Handle
	entries map[Handle]manualEntry
	created int
}

type manualEntry struct {
	interval time.Duration
	fn       func()
}

// NewManual creates an empty manual scheduler.
func NewManual() *Manual {
	return &Manual{entries: make(map[Handle]manualEntry)}
}

// Every records fn; it runs once per Advance step.
func (manual *Manual) Every(interval time.Duration, fn func()) Handle {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	manual.next++
	manual.created++
	manual.entries[manual.next] = manualEntry{interval: interval, fn: fn}
	return manual.next
}

// Cancel removes a registration.
func (manual *Manual) Cancel(handle Handle) {
	manual.mu.Lock()
	delete(manual.entries, handle)
	manual.mu.Unlock()
}

// Advance runs steps rounds. Each round fires every registration that was
// live when the round began and is still live when its turn comes, in
// creation order.
func (manual *Manual) Advance(steps int) {
	for step := 0; step < steps; step++ {
		for _, handle := range manual.handles() {
			manual.mu.Lock()
			entry, ok := manual.entries[handle]
			manual.mu.Unlock()
			if ok {
				entry.fn()
			}
		}
	}
}

// Active returns the number of live registrations.
func (manual *Manual) Active() int {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return len(manual.entries)
}

// Created returns how many registrations were ever made.
func (manual *Manual) Created() int {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return manual.created
}

// Interval returns the interval of a live registration.
func (manual *Manual) Interval(handle Handle) (time.Duration, bool) {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	entry, ok := manual.entries[handle]
	return entry.interval, ok
}

func (manual *Manual) handles() []Handle {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	handles := make([]Handle, 0, len(manual.entries))
	for handle := range manual.entries {
		handles = append(handles, handle)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	return handles
}
