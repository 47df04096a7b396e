package config

import (
	"flag"
	"io"
	"os"

	"github.com/bethropolis/codehints/internal/prefs"
	"github.com/mattn/go-isatty"
)

// Version is the codehints release, overridden at link time
var Version = "1.0.0"

// Config holds all application configuration settings
type Config struct {
	// Project settings
	RootDir   string
	PrefsFile string
	Search    bool
	Paths     []string

	// Logging settings
	Verbose   bool
	Quiet     bool
	LogLevel  string
	NoColor   bool
	UseColors bool

	// Filtering settings
	IgnoreHidden bool

	// Output format
	JSONOutput bool

	// Version info
	ShowVersion bool
	Version     string
}

// Parse builds a Config from command-line arguments (without the program
// name). Usage and parse errors are written to errOut.
func Parse(args []string, errOut io.Writer) (*Config, error) {
	c := &Config{
		Version: Version,
	}

	fs := flag.NewFlagSet("codehints", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&c.RootDir, "dir", ".", "The project directory holding the preferences file")
	fs.StringVar(&c.PrefsFile, "prefs", prefs.FileName, "Name of the preferences file")
	fs.BoolVar(&c.Search, "search", false, "Search parent directories for the preferences file")
	fs.BoolVar(&c.Verbose, "verbose", false, "Enable verbose logging (DEBUG, WARN, ERROR)")
	fs.BoolVar(&c.Quiet, "quiet", false, "Suppress INFO messages (only show WARN, ERROR)")
	fs.StringVar(&c.LogLevel, "log-level", "", "Set the logging level (DEBUG, INFO, WARN, ERROR)")
	fs.BoolVar(&c.IgnoreHidden, "hidden", false, "Also exclude hidden files/directories (starting with '.')")
	fs.BoolVar(&c.NoColor, "no-color", false, "Disable color output")
	fs.BoolVar(&c.JSONOutput, "json", false, "Output results in JSON format")
	fs.BoolVar(&c.ShowVersion, "version", false, "Show version information")
	fs.Usage = func() {
		io.WriteString(errOut, "Usage: codehints [flags] [path ...]\n\n"+
			"Prints the effective .jscodehints settings for a project and,\n"+
			"for each path (relative to -dir), whether it would be excluded.\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	c.Paths = fs.Args()

	// Determine if colors should be used
	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd())

	return c, nil
}
