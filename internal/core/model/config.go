// Package model defines the pomodoro settings shared by the timer, storage
// and preferences packages.
package model

const (
	// DefaultWorkDurationMinutes is the length of a work session.
	DefaultWorkDurationMinutes = 25
	// DefaultBreakDurationMinutes is the length of a short break.
	DefaultBreakDurationMinutes = 5
	// DefaultLongBreakDurationMinutes is the length of a long break.
	DefaultLongBreakDurationMinutes = 15
	// DefaultLongBreakInterval is the number of work sessions per long break.
	DefaultLongBreakInterval = 4
)

// Config contains the user-adjustable pomodoro durations.
type Config struct {
	WorkDurationMinutes      int
	BreakDurationMinutes     int
	LongBreakDurationMinutes int
	LongBreakInterval        int
}

// DefaultConfig returns the stock 25/5/15/4 schedule.
func DefaultConfig() Config {
	return Config{
		WorkDurationMinutes:      DefaultWorkDurationMinutes,
		BreakDurationMinutes:     DefaultBreakDurationMinutes,
		LongBreakDurationMinutes: DefaultLongBreakDurationMinutes,
		LongBreakInterval:        DefaultLongBreakInterval,
	}
}

// WithDefaults replaces every non-positive field with its default value.
func (config Config) WithDefaults() Config {
	defaults := DefaultConfig()
	if config.WorkDurationMinutes <= 0 {
		config.WorkDurationMinutes = defaults.WorkDurationMinutes
	}
	if config.BreakDurationMinutes <= 0 {
		config.BreakDurationMinutes = defaults.BreakDurationMinutes
	}
	if config.LongBreakDurationMinutes <= 0 {
		config.LongBreakDurationMinutes = defaults.LongBreakDurationMinutes
	}
	if config.LongBreakInterval <= 0 {
		config.LongBreakInterval = defaults.LongBreakInterval
	}
	return config
}
