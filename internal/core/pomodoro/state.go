// Package pomodoro holds the timer state and its pure transitions.
package pomodoro

import "pomodoro/internal/core/model"

// Phase represents the current pomodoro mode.
type Phase string

const (
	PhaseStopped    Phase = "stopped"
	PhaseWork       Phase = "work"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

// IsBreak reports whether the phase is a short or long break.
func (phase Phase) IsBreak() bool {
	return phase == PhaseShortBreak || phase == PhaseLongBreak
}

// State is an immutable snapshot of the timer.
type State struct {
	Phase                 Phase
	TimeRemainingSeconds  int
	WorkSessionsCompleted int
	IsRunning             bool
}

// InitialState returns a stopped timer with no completed sessions.
func InitialState() State {
	return State{Phase: PhaseStopped}
}

// StartWorkSession begins a running work phase using the configured duration.
func StartWorkSession(state State, config model.Config) State {
	return State{
		Phase:                 PhaseWork,
		TimeRemainingSeconds:  config.WorkDurationMinutes * 60,
		WorkSessionsCompleted: state.WorkSessionsCompleted,
		IsRunning:             true,
	}
}

// StartBreak counts the finished work session and begins a short or long break.
// A long break is chosen when the new session count is a multiple of
// LongBreakInterval; a non-positive interval never yields a long break.
func StartBreak(state State, config model.Config) State {
	completed := state.WorkSessionsCompleted + 1
	next := State{
		Phase:                 PhaseShortBreak,
		TimeRemainingSeconds:  config.BreakDurationMinutes * 60,
		WorkSessionsCompleted: completed,
		IsRunning:             true,
	}
	if config.LongBreakInterval > 0 && completed%config.LongBreakInterval == 0 {
		next.Phase = PhaseLongBreak
		next.TimeRemainingSeconds = config.LongBreakDurationMinutes * 60
	}
	return next
}

// NextPhase returns the phase that follows a finished one: a break after
// work, work after any break or from stopped.
func NextPhase(state State, config model.Config) State {
	if state.Phase == PhaseWork {
		return StartBreak(state, config)
	}
	return StartWorkSession(state, config)
}

// Pause freezes the countdown.
func Pause(state State) State {
	state.IsRunning = false
	return state
}

// Resume restarts the countdown.
func Resume(state State) State {
	state.IsRunning = true
	return state
}

// Reset discards everything, including completed sessions.
func Reset() State {
	return InitialState()
}

// Tick removes one second from the remaining time, never going below zero.
func Tick(state State) State {
	state.TimeRemainingSeconds--
	if state.TimeRemainingSeconds < 0 {
		state.TimeRemainingSeconds = 0
	}
	return state
}
