// Package ignore provides file/directory pattern matching for exclusion
//
// This package applies compiled .jscodehints preferences to relative paths:
// directory patterns against every directory component, file patterns
// against the base name, plus the per-file size cap and the file count
// budget. It uses the functional options pattern for configuration.
package ignore

// NewFromConfig creates an IgnoreMatcher from a Config struct
func NewFromConfig(cfg Config) *IgnoreMatcher {
	options := []Option{
		WithHiddenIgnore(cfg.IgnoreHidden),
		WithDisabled(cfg.Disabled),
	}

	if cfg.Logger != nil {
		options = append(options, WithLogger(cfg.Logger))
	}

	return New(cfg.Settings, options...)
}

// CreateDisabledMatcher returns a matcher that ignores nothing
func CreateDisabledMatcher() *IgnoreMatcher {
	return New(nil, WithDisabled(true))
}

// IsIgnored is a convenience function to check if a path should be ignored
func IsIgnored(matcher *IgnoreMatcher, path string, isDir bool) bool {
	if matcher == nil {
		return false
	}
	return matcher.ShouldIgnore(path, isDir)
}
