package ignore

import "github.com/bethropolis/codehints/internal/utils"

// Option functions for configuration
type Option func(*IgnoreMatcher)

// WithHiddenIgnore excludes dot-prefixed files and directories
func WithHiddenIgnore(ignore bool) Option {
	return func(m *IgnoreMatcher) {
		m.ignoreHidden = ignore
	}
}

func WithLogger(logger utils.Logger) Option {
	return func(m *IgnoreMatcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func WithDisabled(disabled bool) Option {
	return func(m *IgnoreMatcher) {
		m.disabled = disabled
	}
}
