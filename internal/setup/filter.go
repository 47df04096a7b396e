// Package setup provides initialization and configuration functions
package setup

import (
	"fmt"

	"github.com/bethropolis/codehints/internal/ignore"
	"github.com/bethropolis/codehints/internal/loader"
	"github.com/bethropolis/codehints/internal/utils"
	"github.com/spf13/afero"
)

// InfoLogger wraps the Info method for status updates
type InfoLogger func(format string, args ...interface{})

// FilterConfig holds all parameters needed to build an exclusion filter
type FilterConfig struct {
	Fs           afero.Fs
	RootDir      string
	PrefsFile    string
	Search       bool
	IgnoreHidden bool
	Logger       utils.Logger
}

// ConfigureFilter loads the project preferences and wraps them in an
// ignore matcher. It returns the directory the preferences were read from.
// A malformed preferences file is reported and replaced by defaults; only a
// failed parent-directory search is an error.
func ConfigureFilter(cfg FilterConfig, infoLog InfoLogger) (*ignore.IgnoreMatcher, string, error) {
	log := utils.OrNoop(cfg.Logger)
	opts := []loader.Option{
		loader.WithLogger(log),
		loader.WithFileName(cfg.PrefsFile),
	}

	dir := cfg.RootDir
	if cfg.Search {
		found, err := loader.Find(cfg.Fs, cfg.RootDir, opts...)
		if err != nil {
			return nil, "", fmt.Errorf("setup: %w", err)
		}
		dir = found
	}

	settings, err := loader.Load(cfg.Fs, dir, opts...)
	if err != nil {
		log.Warn("Using default preferences: %v", err)
	}
	infoLog("Preferences directory: %s", dir)

	if cfg.IgnoreHidden {
		infoLog("Excluding hidden files/directories (starting with '.').")
	}

	matcher := ignore.New(settings,
		ignore.WithLogger(log),
		ignore.WithHiddenIgnore(cfg.IgnoreHidden),
	)
	return matcher, dir, nil
}
