// Package loader reads .jscodehints preference files.
//
// The file may contain comments and trailing commas; they are stripped with
// github.com/tidwall/jsonc before decoding. All filesystem access goes
// through an afero.Fs so callers and tests can substitute an in-memory tree.
package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/bethropolis/codehints/internal/prefs"
	"github.com/bethropolis/codehints/internal/utils"
	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
)

// ErrNotFound is returned by Find when no preferences file exists in the
// start directory or any of its parents.
var ErrNotFound = errors.New("loader: preferences file not found")

// Option configures Load and Find
type Option func(*options)

type options struct {
	logger   utils.Logger
	fileName string
}

// WithLogger sets the logger for load diagnostics
func WithLogger(logger utils.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithFileName overrides the preferences file name (default prefs.FileName)
func WithFileName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.fileName = name
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger:   utils.NoopLogger{},
		fileName: prefs.FileName,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Parse decodes a .jscodehints document. Comments and trailing commas are
// allowed. Numbers are kept as json.Number so large sizes survive intact.
func Parse(data []byte) (*prefs.RawPreferences, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return &prefs.RawPreferences{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.UseNumber()

	var raw prefs.RawPreferences
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("loader: failed to parse preferences: %w", err)
	}
	return &raw, nil
}

// Load reads the preferences file in dir and builds Settings from it.
//
// A missing file yields default settings and a nil error. A file that cannot
// be read or parsed yields default settings together with the error, so the
// caller can report it and carry on.
func Load(fsys afero.Fs, dir string, opts ...Option) (*prefs.Settings, error) {
	o := newOptions(opts)
	path := filepath.Join(dir, o.fileName)

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			o.logger.Debug("loader: no %s in %s, using defaults", o.fileName, dir)
			return prefs.Defaults(), nil
		}
		o.logger.Warn("loader: cannot read %s: %v", path, err)
		return prefs.Defaults(), fmt.Errorf("loader: failed to read '%s': %w", path, err)
	}

	raw, err := Parse(data)
	if err != nil {
		o.logger.Warn("loader: %s is malformed, using defaults: %v", path, err)
		return prefs.Defaults(), fmt.Errorf("%w (file '%s')", err, path)
	}

	o.logger.Debug("loader: loaded %s", path)
	return prefs.New(raw, prefs.WithLogger(o.logger)), nil
}

// Find returns the nearest directory, starting at start and walking toward
// the filesystem root, that contains the preferences file.
func Find(fsys afero.Fs, start string, opts ...Option) (string, error) {
	o := newOptions(opts)

	dir := filepath.Clean(start)
	for {
		path := filepath.Join(dir, o.fileName)
		info, err := fsys.Stat(path)
		if err == nil && !info.IsDir() {
			o.logger.Debug("loader: found %s", path)
			return dir, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("loader: failed to stat '%s': %w", path, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w (searched from '%s')", ErrNotFound, start)
		}
		dir = parent
	}
}
