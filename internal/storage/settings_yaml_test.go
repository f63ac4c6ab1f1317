package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/model"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadSettingsMissingFile(t *testing.T) {
	config, err := LoadSettings(filepath.Join(t.TempDir(), "absent", settingsFileName))

	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfig(), config)
}

func TestLoadSettingsPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	writeFile(t, path, `
work_duration_minutes: 50
break_duration_minutes: -2
long_break_interval: 3
`)

	config, err := LoadSettings(path)

	require.NoError(t, err)
	assert.Equal(t, model.Config{
		WorkDurationMinutes:      50,
		BreakDurationMinutes:     5,
		LongBreakDurationMinutes: 15,
		LongBreakInterval:        3,
	}, config)
}

func TestLoadSettingsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	writeFile(t, path, "work_duration_minutes: [not a number\n")

	config, err := LoadSettings(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse settings yaml")
	assert.Equal(t, model.DefaultConfig(), config)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", settingsFileName)
	want := model.Config{WorkDurationMinutes: 45, BreakDurationMinutes: 10, LongBreakDurationMinutes: 20, LongBreakInterval: 3}

	require.NoError(t, SaveSettings(path, want))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "work_duration_minutes: 45")

	got, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolveConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("AppData", filepath.Join(home, "AppData"))

	path, err := ResolveConfigPath("Pomodoro")

	require.NoError(t, err)
	assert.Equal(t, settingsFileName, filepath.Base(path))
	assert.Equal(t, "Pomodoro", filepath.Base(filepath.Dir(path)))
}

func TestFileSourceReadsFreshValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	source := NewFileSource(path, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Equal(t, model.DefaultConfig(), source.Config())

	writeFile(t, path, "work_duration_minutes: 30\n")
	assert.Equal(t, 30, source.Config().WorkDurationMinutes)

	writeFile(t, path, "work_duration_minutes: [broken\n")
	assert.Equal(t, 30, source.Config().WorkDurationMinutes, "last good values survive a broken file")

	require.NoError(t, source.Save(model.Config{WorkDurationMinutes: 40, BreakDurationMinutes: 5, LongBreakDurationMinutes: 15, LongBreakInterval: 4}))
	assert.Equal(t, 40, source.Config().WorkDurationMinutes)
	assert.Equal(t, path, source.Path())
}

func TestWatchReportsChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", settingsFileName)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var changes atomic.Int32
	require.NoError(t, Watch(ctx, path, slog.New(slog.NewTextHandler(io.Discard, nil)), func() { changes.Add(1) }))

	writeFile(t, filepath.Join(filepath.Dir(path), "other.yaml"), "x: 1\n")
	require.NoError(t, SaveSettings(path, model.DefaultConfig()))

	require.Eventually(t, func() bool { return changes.Load() > 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatchLogsWatcherErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	events := make(chan fsnotify.Event)
	errs := make(chan error)
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	done := make(chan struct{})
	var changes int
	go func() {
		defer close(done)
		watchLoop(context.Background(), path, events, errs, logger, func() { changes++ })
	}()

	errs <- errors.New("queue overflow")
	events <- fsnotify.Event{Name: path, Op: fsnotify.Write}
	close(events)
	<-done

	assert.Equal(t, 1, changes)
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "settings watcher error")
	assert.Contains(t, logs.String(), "queue overflow")
}
