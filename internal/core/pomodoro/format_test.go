package pomodoro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	tests := map[int]string{
		0:    "00:00",
		5:    "00:05",
		65:   "01:05",
		1500: "25:00",
		3600: "60:00",
		6000: "100:00",
		-3:   "00:00",
	}
	for seconds, want := range tests {
		assert.Equal(t, want, FormatTime(seconds), "seconds=%d", seconds)
	}
}

func TestPhaseLabel(t *testing.T) {
	assert.Equal(t, "Ready", PhaseLabel(PhaseStopped))
	assert.Equal(t, "Work", PhaseLabel(PhaseWork))
	assert.Equal(t, "Break", PhaseLabel(PhaseShortBreak))
	assert.Equal(t, "Long Break", PhaseLabel(PhaseLongBreak))
}

func TestStatusBarText(t *testing.T) {
	assert.Equal(t, "⏱ Pomodoro", StatusBarText(InitialState()))
	assert.Equal(t, "🍅 24:59", StatusBarText(State{Phase: PhaseWork, TimeRemainingSeconds: 1499, IsRunning: true}))
	assert.Equal(t, "☕ 05:00", StatusBarText(State{Phase: PhaseShortBreak, TimeRemainingSeconds: 300, IsRunning: true}))
	assert.Equal(t, "🌴 15:00", StatusBarText(State{Phase: PhaseLongBreak, TimeRemainingSeconds: 900, IsRunning: true}))
	assert.Equal(t, "⏸ 10:00", StatusBarText(State{Phase: PhaseWork, TimeRemainingSeconds: 600}))
}

func TestTooltip(t *testing.T) {
	assert.Equal(t, "Pomodoro: Ready (00:00) - Sessions: 0", Tooltip(InitialState()))
	assert.Equal(t, "Pomodoro: Work (25:00) - Sessions: 2",
		Tooltip(State{Phase: PhaseWork, TimeRemainingSeconds: 1500, WorkSessionsCompleted: 2, IsRunning: true}))
	assert.Equal(t, "Pomodoro: Break [paused] (03:20) - Sessions: 1",
		Tooltip(State{Phase: PhaseShortBreak, TimeRemainingSeconds: 200, WorkSessionsCompleted: 1}))
}

func TestStatusMessage(t *testing.T) {
	assert.Equal(t, "Pomodoro timer is ready. 0 work sessions completed.", StatusMessage(InitialState()))
	assert.Equal(t, "Work - 12:34 remaining - 3 work sessions completed",
		StatusMessage(State{Phase: PhaseWork, TimeRemainingSeconds: 754, WorkSessionsCompleted: 3, IsRunning: true}))
	assert.Equal(t, "Paused: Long Break - 01:00 remaining - 4 work sessions completed",
		StatusMessage(State{Phase: PhaseLongBreak, TimeRemainingSeconds: 60, WorkSessionsCompleted: 4}))
}

func TestPhaseStartMessage(t *testing.T) {
	assert.Equal(t, "Work session started! Focus for 25 minutes.",
		PhaseStartMessage(State{Phase: PhaseWork, TimeRemainingSeconds: 1500, IsRunning: true}))
	assert.Equal(t, "Time for a break! Relax for 5 minutes.",
		PhaseStartMessage(State{Phase: PhaseShortBreak, TimeRemainingSeconds: 300, IsRunning: true}))
	assert.Equal(t, "Time for a long break! Relax for 15 minutes.",
		PhaseStartMessage(State{Phase: PhaseLongBreak, TimeRemainingSeconds: 900, IsRunning: true}))
	assert.Empty(t, PhaseStartMessage(InitialState()))
}
