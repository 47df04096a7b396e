package prefs

import (
	"encoding/json"
	"math"

	"github.com/bethropolis/codehints/internal/utils"
)

// New builds Settings from raw, substituting a default for every missing or
// invalid value. A nil raw yields the defaults.
func New(raw *RawPreferences, opts ...Option) *Settings {
	b := builder{logger: utils.NoopLogger{}}
	for _, opt := range opts {
		opt(&b)
	}

	if raw == nil {
		return Defaults()
	}

	s := &Settings{
		excludedDirectories: compilePatterns(raw.ExcludedDirectories, nil, b.logger),
		excludedFiles:       compilePatterns(raw.ExcludedFiles, defaultExcludedFiles, b.logger),
		maxFileCount:        DefaultMaxFileCount,
		maxFileSize:         DefaultMaxFileSize,
	}

	if n, ok := positiveInt(raw.MaxFileCount); ok && n <= math.MaxInt {
		s.maxFileCount = int(n)
	} else if raw.MaxFileCount != nil {
		b.logger.Debug("prefs: max-file-count %v invalid, using %d", raw.MaxFileCount, DefaultMaxFileCount)
	}

	if n, ok := positiveInt(raw.MaxFileSize); ok {
		s.maxFileSize = n
	} else if raw.MaxFileSize != nil {
		b.logger.Debug("prefs: max-file-size %v invalid, using %d", raw.MaxFileSize, DefaultMaxFileSize)
	}

	return s
}

// Defaults returns Settings with every field at its built-in default.
func Defaults() *Settings {
	return &Settings{
		excludedFiles: defaultExcludedFiles,
		maxFileCount:  DefaultMaxFileCount,
		maxFileSize:   DefaultMaxFileSize,
	}
}

// positiveInt converts v to a positive integer. Fractions are truncated.
func positiveInt(v any) (int64, bool) {
	var f float64
	switch n := v.(type) {
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		if n > 0 {
			return n, true
		}
		return 0, false
	case uint:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case float32:
		f = float64(n)
	case float64:
		f = n
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, i > 0
		}
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || f < 1 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
