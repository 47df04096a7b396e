package prefs

import "github.com/bethropolis/codehints/internal/utils"

// Option configures New
type Option func(*builder)

type builder struct {
	logger utils.Logger
}

// WithLogger sets the logger used to report dropped pattern fragments
func WithLogger(logger utils.Logger) Option {
	return func(b *builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}
