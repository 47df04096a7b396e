// Package printer handles output formatting and display
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/bethropolis/codehints/internal/ignore"
	"github.com/bethropolis/codehints/internal/prefs"
	"github.com/fatih/color"
)

// Printer renders effective settings and per-path verdicts
type Printer struct {
	output     io.Writer
	count      atomic.Int64
	excluded   atomic.Int64
	useColors  bool
	jsonOutput bool

	mu     sync.Mutex
	report JSONReport
}

// New creates a new Printer with default settings
func New() *Printer {
	return &Printer{
		output:    os.Stdout,
		useColors: true,
	}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithColors enables or disables colored output
func (p *Printer) WithColors(enabled bool) *Printer {
	p.useColors = enabled
	return p
}

// WithJSON enables JSON output mode. The document is written by Finalize.
func (p *Printer) WithJSON(enabled bool) *Printer {
	p.jsonOutput = enabled
	return p
}

// JSONSettings is the JSON form of prefs.Settings
type JSONSettings struct {
	Dir                 string `json:"dir"`
	ExcludedDirectories string `json:"excluded_directories,omitempty"`
	ExcludedFiles       string `json:"excluded_files"`
	MaxFileCount        int    `json:"max_file_count"`
	MaxFileSize         int64  `json:"max_file_size"`
}

// JSONVerdict is the JSON form of one path check
type JSONVerdict struct {
	Path     string `json:"path"`
	IsDir    bool   `json:"is_dir"`
	Excluded bool   `json:"excluded"`
	Reason   string `json:"reason,omitempty"`
}

// JSONReport is the document written in JSON mode
type JSONReport struct {
	Settings JSONSettings  `json:"settings"`
	Paths    []JSONVerdict `json:"paths"`
}

// PrintSettings outputs the effective settings loaded from dir
func (p *Printer) PrintSettings(dir string, s *prefs.Settings) {
	js := JSONSettings{
		Dir:                 dir,
		ExcludedDirectories: s.ExcludedDirectories().String(),
		ExcludedFiles:       s.ExcludedFiles().String(),
		MaxFileCount:        s.MaxFileCount(),
		MaxFileSize:         s.MaxFileSize(),
	}

	if p.jsonOutput {
		p.mu.Lock()
		p.report.Settings = js
		p.mu.Unlock()
		return
	}

	dirs := js.ExcludedDirectories
	if dirs == "" {
		dirs = "(none)"
	}
	label := p.paint(color.New(color.Bold))
	fmt.Fprintf(p.output, "%s %s\n", label("Preferences:"), js.Dir)
	fmt.Fprintf(p.output, "  %-22s %s\n", "excluded-directories", dirs)
	fmt.Fprintf(p.output, "  %-22s %s\n", "excluded-files", js.ExcludedFiles)
	fmt.Fprintf(p.output, "  %-22s %d\n", "max-file-count", js.MaxFileCount)
	fmt.Fprintf(p.output, "  %-22s %d bytes\n", "max-file-size", js.MaxFileSize)
}

// PrintVerdict outputs the filter decision for one path
func (p *Printer) PrintVerdict(relativePath string, isDir bool, reason ignore.Reason) {
	p.count.Add(1)
	excluded := reason != ignore.ReasonNone
	if excluded {
		p.excluded.Add(1)
	}

	if p.jsonOutput {
		p.mu.Lock()
		p.report.Paths = append(p.report.Paths, JSONVerdict{
			Path:     relativePath,
			IsDir:    isDir,
			Excluded: excluded,
			Reason:   string(reason),
		})
		p.mu.Unlock()
		return
	}

	typeStr := "FILE"
	if isDir {
		typeStr = "DIR " // Add space for alignment
	}

	if excluded {
		fmt.Fprintf(p.output, "%s %s %s [%s]\n", p.paint(color.New(color.FgRed))("EXCLUDE"), typeStr, relativePath, reason)
	} else {
		fmt.Fprintf(p.output, "%s %s %s\n", p.paint(color.New(color.FgGreen))("INCLUDE"), typeStr, relativePath)
	}
}

// Finalize completes any pending operations (writes the JSON document)
func (p *Printer) Finalize() error {
	if !p.jsonOutput {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.report.Paths == nil {
		p.report.Paths = []JSONVerdict{}
	}

	enc := json.NewEncoder(p.output)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p.report); err != nil {
		return fmt.Errorf("printer: failed to encode report: %w", err)
	}
	return nil
}

// GetCount returns the number of verdicts printed
func (p *Printer) GetCount() int64 {
	return p.count.Load()
}

// GetExcluded returns the number of excluded verdicts printed
func (p *Printer) GetExcluded() int64 {
	return p.excluded.Load()
}

func (p *Printer) paint(c *color.Color) func(a ...interface{}) string {
	if p.useColors {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.SprintFunc()
}
