package ignore

import (
	"github.com/bethropolis/codehints/internal/prefs"
	"github.com/bethropolis/codehints/internal/utils"
)

// New creates an IgnoreMatcher over settings. A nil settings value is
// replaced with the built-in defaults.
func New(settings *prefs.Settings, opts ...Option) *IgnoreMatcher {
	if settings == nil {
		settings = prefs.Defaults()
	}

	matcher := &IgnoreMatcher{
		settings: settings,
		logger:   utils.NoopLogger{},
	}

	// Apply functional options
	for _, opt := range opts {
		opt(matcher)
	}

	matcher.logger.Debug("ignore.New: excluded directories: %q", settings.ExcludedDirectories().String())
	matcher.logger.Debug("ignore.New: excluded files: %q", settings.ExcludedFiles().String())
	matcher.logger.Debug("ignore.New: limits: %d files, %d bytes", settings.MaxFileCount(), settings.MaxFileSize())

	return matcher
}

// Settings returns the preferences the matcher evaluates
func (m *IgnoreMatcher) Settings() *prefs.Settings {
	return m.settings
}
