package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/bethropolis/codehints/internal/app"
	"github.com/bethropolis/codehints/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/afero"
)

func main() {
	// Load configuration from command-line flags
	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	// Configure color globally
	color.NoColor = !cfg.UseColors

	application := app.New(cfg, afero.NewOsFs(), os.Stdout, os.Stderr)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
