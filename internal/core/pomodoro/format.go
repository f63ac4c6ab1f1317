package pomodoro

import "fmt"

const (
	iconReady      = "⏱"
	iconWork       = "🍅"
	iconShortBreak = "☕"
	iconLongBreak  = "🌴"
	iconPaused     = "⏸"
)

// FormatTime renders seconds as MM:SS. Minutes are not wrapped into hours.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// PhaseLabel returns the display name of a phase.
func PhaseLabel(phase Phase) string {
	switch phase {
	case PhaseWork:
		return "Work"
	case PhaseShortBreak:
		return "Break"
	case PhaseLongBreak:
		return "Long Break"
	default:
		return "Ready"
	}
}

func phaseIcon(phase Phase) string {
	switch phase {
	case PhaseWork:
		return iconWork
	case PhaseShortBreak:
		return iconShortBreak
	case PhaseLongBreak:
		return iconLongBreak
	default:
		return iconReady
	}
}

// IsPaused reports whether a session is in progress but not counting down.
func (state State) IsPaused() bool {
	return state.Phase != PhaseStopped && !state.IsRunning
}

// StatusBarText is the compact label shown in the status indicator.
func StatusBarText(state State) string {
	if state.Phase == PhaseStopped {
		return iconReady + " Pomodoro"
	}
	icon := phaseIcon(state.Phase)
	if state.IsPaused() {
		icon = iconPaused
	}
	return icon + " " + FormatTime(state.TimeRemainingSeconds)
}

// Tooltip describes the state in one line for hover text.
func Tooltip(state State) string {
	label := PhaseLabel(state.Phase)
	if state.IsPaused() {
		label += " [paused]"
	}
	return fmt.Sprintf("Pomodoro: %s (%s) - Sessions: %d",
		label, FormatTime(state.TimeRemainingSeconds), state.WorkSessionsCompleted)
}

// StatusMessage is the text shown by the status command.
func StatusMessage(state State) string {
	if state.Phase == PhaseStopped {
		return fmt.Sprintf("Pomodoro timer is ready. %d work sessions completed.", state.WorkSessionsCompleted)
	}
	message := fmt.Sprintf("%s - %s remaining - %d work sessions completed",
		PhaseLabel(state.Phase), FormatTime(state.TimeRemainingSeconds), state.WorkSessionsCompleted)
	if state.IsPaused() {
		message = "Paused: " + message
	}
	return message
}

// PhaseStartMessage announces a freshly started phase. It returns an empty
// string for the stopped phase.
func PhaseStartMessage(state State) string {
	minutes := state.TimeRemainingSeconds / 60
	switch state.Phase {
	case PhaseWork:
		return fmt.Sprintf("Work session started! Focus for %d minutes.", minutes)
	case PhaseShortBreak:
		return fmt.Sprintf("Time for a break! Relax for %d minutes.", minutes)
	case PhaseLongBreak:
		return fmt.Sprintf("Time for a long break! Relax for %d minutes.", minutes)
	default:
		return ""
	}
}
