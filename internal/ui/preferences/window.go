// Package preferences provides the window that edits the pomodoro settings.
package preferences

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/core/model"
)

// Window edits the four pomodoro settings.
type Window struct {
	window    fyne.Window
	settings  model.Config
	onSave    func(model.Config)
	work      *widget.Entry
	shortBrk  *widget.Entry
	longBrk   *widget.Entry
	interval  *widget.Entry
	saveBtn   *widget.Button
	cancelBtn *widget.Button
}

// New creates a preferences window. onSave receives the edited settings.
func New(app fyne.App, settings model.Config, onSave func(model.Config)) *Window {
	window := app.NewWindow("Pomodoro Settings")

	prefs := &Window{
		window:   window,
		onSave:   onSave,
		work:     widget.NewEntry(),
		shortBrk: widget.NewEntry(),
		longBrk:  widget.NewEntry(),
		interval: widget.NewEntry(),
	}
	prefs.UpdateSettings(settings)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Durations", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Work session"), prefs.work, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Short break"), prefs.shortBrk, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break"), prefs.longBrk, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break every"), prefs.interval, widget.NewLabel("sessions")),
	)

	prefs.saveBtn = widget.NewButton("Save", prefs.handleSave)
	prefs.cancelBtn = widget.NewButton("Cancel", func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	})
	buttons := container.NewHBox(prefs.saveBtn, layout.NewSpacer(), prefs.cancelBtn)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.SetCloseIntercept(window.Hide)
	window.Resize(fyne.NewSize(360, 240))
	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces the values shown in the window.
func (prefs *Window) UpdateSettings(settings model.Config) {
	prefs.settings = settings
	prefs.work.SetText(strconv.Itoa(settings.WorkDurationMinutes))
	prefs.shortBrk.SetText(strconv.Itoa(settings.BreakDurationMinutes))
	prefs.longBrk.SetText(strconv.Itoa(settings.LongBreakDurationMinutes))
	prefs.interval.SetText(strconv.Itoa(settings.LongBreakInterval))
}

// Settings returns the last saved or loaded settings.
func (prefs *Window) Settings() model.Config {
	return prefs.settings
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if minutes, ok := parsePositiveInt(prefs.work.Text); ok {
		settings.WorkDurationMinutes = minutes
	}
	if minutes, ok := parsePositiveInt(prefs.shortBrk.Text); ok {
		settings.BreakDurationMinutes = minutes
	}
	if minutes, ok := parsePositiveInt(prefs.longBrk.Text); ok {
		settings.LongBreakDurationMinutes = minutes
	}
	if sessions, ok := parsePositiveInt(prefs.interval.Text); ok {
		settings.LongBreakInterval = sessions
	}

	prefs.UpdateSettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
