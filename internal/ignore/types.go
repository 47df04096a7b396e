// Package ignore provides file/directory pattern matching for exclusion
package ignore

import (
	"sync/atomic"

	"github.com/bethropolis/codehints/internal/prefs"
	"github.com/bethropolis/codehints/internal/utils"
)

// Reason clarifies why a path would not be handed to the hinting engine.
type Reason string

const (
	ReasonNone              Reason = ""
	ReasonHidden            Reason = "Ignored (Hidden Rule)"
	ReasonExcludedDirectory Reason = "Excluded (Directory Pattern)"
	ReasonExcludedFile      Reason = "Excluded (File Pattern)"
	ReasonSizeLimit         Reason = "Skipped (Size Limit Exceeded)"
	ReasonFileLimit         Reason = "Skipped (File Count Limit Reached)"
)

// IgnoreMatcher determines whether a file or directory should be excluded
// according to the compiled preferences
type IgnoreMatcher struct {
	settings *prefs.Settings

	// Configuration flags
	ignoreHidden bool
	logger       utils.Logger
	disabled     bool

	// admitted counts files accepted against the max-file-count budget
	admitted atomic.Int64
}

// Config holds configuration options for the ignore matcher
type Config struct {
	Settings     *prefs.Settings
	IgnoreHidden bool
	Logger       utils.Logger
	Disabled     bool
}
