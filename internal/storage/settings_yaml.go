package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"pomodoro/internal/core/model"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	WorkDurationMinutes      int `yaml:"work_duration_minutes"`
	BreakDurationMinutes     int `yaml:"break_duration_minutes"`
	LongBreakDurationMinutes int `yaml:"long_break_duration_minutes"`
	LongBreakInterval        int `yaml:"long_break_interval"`
}

// ResolveConfigPath returns the settings file path under the user config directory.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettings reads the pomodoro settings from a YAML file.
// A missing file yields the defaults; missing or non-positive keys fall back
// to their default value.
func LoadSettings(path string) (model.Config, error) {
	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.DefaultConfig(), nil
		}
		return model.DefaultConfig(), fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return model.DefaultConfig(), fmt.Errorf("parse settings yaml: %w", err)
	}

	return model.Config{
		WorkDurationMinutes:      fileData.WorkDurationMinutes,
		BreakDurationMinutes:     fileData.BreakDurationMinutes,
		LongBreakDurationMinutes: fileData.LongBreakDurationMinutes,
		LongBreakInterval:        fileData.LongBreakInterval,
	}.WithDefaults(), nil
}

// SaveSettings writes the pomodoro settings to a YAML file, creating its directory.
func SaveSettings(path string, config model.Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := yaml.Marshal(yamlSettings{
		WorkDurationMinutes:      config.WorkDurationMinutes,
		BreakDurationMinutes:     config.BreakDurationMinutes,
		LongBreakDurationMinutes: config.LongBreakDurationMinutes,
		LongBreakInterval:        config.LongBreakInterval,
	})
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

// FileSource reads the settings file on every call to Config.
type FileSource struct {
	path   string
	logger *slog.Logger

	mu       sync.Mutex
	lastGood model.Config
}

// NewFileSource creates a source for the settings file at path.
func NewFileSource(path string, logger *slog.Logger) *FileSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileSource{
		path:     path,
		logger:   logger,
		lastGood: model.DefaultConfig(),
	}
}

// Path returns the settings file path.
func (source *FileSource) Path() string {
	return source.path
}

// Config loads the current settings. When the file cannot be read or parsed
// the last successfully loaded settings are returned.
func (source *FileSource) Config() model.Config {
	config, err := LoadSettings(source.path)

	source.mu.Lock()
	defer source.mu.Unlock()
	if err != nil {
		source.logger.Warn("settings unavailable, using previous values", "path", source.path, "error", err)
		return source.lastGood
	}
	source.lastGood = config
	return config
}

// Save writes config to the source's file.
func (source *FileSource) Save(config model.Config) error {
	if err := SaveSettings(source.path, config); err != nil {
		return err
	}
	source.mu.Lock()
	source.lastGood = config
	source.mu.Unlock()
	return nil
}
