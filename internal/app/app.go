package app

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/bethropolis/codehints/internal/config"
	"github.com/bethropolis/codehints/internal/ignore"
	"github.com/bethropolis/codehints/internal/logger"
	"github.com/bethropolis/codehints/internal/printer"
	"github.com/bethropolis/codehints/internal/setup"
	"github.com/bethropolis/codehints/internal/summary"
	"github.com/spf13/afero"
)

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	fs     afero.Fs
	log    *logger.Logger
	Output io.Writer
}

// New creates a new App instance. Results go to out, log lines to errOut.
func New(cfg *config.Config, fs afero.Fs, out, errOut io.Writer) *App {
	log := logger.New(errOut, cfg.Verbose, cfg.UseColors)

	// Apply log level if specified (overrides verbose/quiet flags)
	if cfg.LogLevel != "" {
		log.SetLevel(cfg.LogLevel)
	} else if cfg.Quiet {
		log.WithLevel(logger.LevelWarn)
	}

	return &App{
		cfg:    cfg,
		fs:     fs,
		log:    log,
		Output: out,
	}
}

// Run executes the main application logic
func (a *App) Run() error {
	startTime := time.Now()

	if a.cfg.ShowVersion {
		fmt.Fprintf(a.Output, "codehints version %s\n", a.cfg.Version)
		return nil
	}

	a.log.Debug("Directory: %s", a.cfg.RootDir)
	a.log.Debug("Preferences file: %s (search parents: %v)", a.cfg.PrefsFile, a.cfg.Search)

	matcher, dir, err := setup.ConfigureFilter(setup.FilterConfig{
		Fs:           a.fs,
		RootDir:      a.cfg.RootDir,
		PrefsFile:    a.cfg.PrefsFile,
		Search:       a.cfg.Search,
		IgnoreHidden: a.cfg.IgnoreHidden,
		Logger:       a.log,
	}, a.log.Info)
	if err != nil {
		return err
	}

	p := printer.New()
	p.WithOutput(a.Output)
	p.WithColors(a.cfg.UseColors && !a.cfg.JSONOutput)
	p.WithJSON(a.cfg.JSONOutput)

	p.PrintSettings(dir, matcher.Settings())
	for _, path := range a.cfg.Paths {
		relativePath, isDir, reason := a.check(matcher, path)
		p.PrintVerdict(relativePath, isDir, reason)
	}

	if err := p.Finalize(); err != nil {
		return err
	}

	summary.DisplayResults(a.log, summary.Results{
		Checked:  p.GetCount(),
		Excluded: p.GetExcluded(),
		Admitted: matcher.Admitted(),
		Budget:   matcher.Settings().MaxFileCount(),
	}, time.Since(startTime), a.cfg.Quiet)

	return nil
}

// check evaluates one command-line path against the filter. Files that pass
// consume a slot of the file budget.
func (a *App) check(matcher *ignore.IgnoreMatcher, path string) (string, bool, ignore.Reason) {
	relativePath := filepath.ToSlash(filepath.Clean(path))
	isDir := strings.HasSuffix(path, "/")
	var size int64

	info, err := a.fs.Stat(filepath.Join(a.cfg.RootDir, path))
	if err != nil {
		a.log.Warn("Cannot stat '%s', checking by name only: %v", path, err)
	} else {
		isDir = info.IsDir()
		if !isDir {
			size = info.Size()
		}
	}

	reason := matcher.Check(relativePath, isDir, size)
	if reason == ignore.ReasonNone && !isDir && !matcher.Admit() {
		reason = ignore.ReasonFileLimit
	}
	return relativePath, isDir, reason
}
