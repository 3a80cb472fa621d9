package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/group-creator/internal/logging"
	"github.com/ytget/group-creator/internal/platform"
	"github.com/ytget/group-creator/internal/workflow"
)

// Settings keys for Fyne preferences
const (
	KeyJournalPath = "journal_path"
	KeyStepDelayMs = "progress_step_delay_ms"
	KeyLogLevel    = "log_level"
	KeyLastLogoDir = "last_logo_directory"
)

// Default values
const (
	DefaultStepDelayMs = int(workflow.DefaultStepDelay / time.Millisecond)
	DefaultLogLevel    = logging.LevelInfo
)

// Bounds
const (
	MinStepDelayMs = 1
	MaxStepDelayMs = 1000
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetJournalPath returns the configured group log path
func (s *Settings) GetJournalPath() string {
	path := s.app.Preferences().String(KeyJournalPath)
	if path == "" {
		defaultPath := platform.DefaultJournalPath()
		s.SetJournalPath(defaultPath)
		return defaultPath
	}
	return path
}

// SetJournalPath sets the group log path
func (s *Settings) SetJournalPath(path string) {
	s.app.Preferences().SetString(KeyJournalPath, path)
}

// GetStepDelayMs returns the delay between progress steps in milliseconds
func (s *Settings) GetStepDelayMs() int {
	value := s.app.Preferences().Int(KeyStepDelayMs)
	if value <= 0 {
		s.SetStepDelayMs(DefaultStepDelayMs)
		return DefaultStepDelayMs
	}
	return value
}

// SetStepDelayMs sets the delay between progress steps
func (s *Settings) SetStepDelayMs(ms int) {
	s.app.Preferences().SetInt(KeyStepDelayMs, clamp(ms, MinStepDelayMs, MaxStepDelayMs))
}

// GetLogLevel returns the diagnostic log level
func (s *Settings) GetLogLevel() string {
	return s.app.Preferences().StringWithFallback(KeyLogLevel, DefaultLogLevel)
}

// SetLogLevel sets the diagnostic log level
func (s *Settings) SetLogLevel(level string) {
	s.app.Preferences().SetString(KeyLogLevel, level)
}

// GetLogLevelOptions returns available log levels
func (s *Settings) GetLogLevelOptions() []string {
	return []string{logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError}
}

// GetLastLogoDirectory returns the directory the logo picker opened last
func (s *Settings) GetLastLogoDirectory() string {
	return s.app.Preferences().String(KeyLastLogoDir)
}

// SetLastLogoDirectory remembers the directory of the chosen logo
func (s *Settings) SetLastLogoDirectory(dir string) {
	s.app.Preferences().SetString(KeyLastLogoDir, dir)
}

// WorkflowConfig returns the progress pacing for the workflow service.
// The step count is fixed; only the delay between steps is configurable.
func (s *Settings) WorkflowConfig() workflow.Config {
	return workflow.Config{
		Steps:     workflow.DefaultSteps,
		StepDelay: time.Duration(s.GetStepDelayMs()) * time.Millisecond,
	}
}

func clamp(value, lower, upper int) int {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}
