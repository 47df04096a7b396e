// Package summary handles display of check results and statistics
package summary

import (
	"time"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...interface{})
}

// Results are the counters of one codehints run
type Results struct {
	Checked  int64
	Excluded int64
	Admitted int
	Budget   int
}

// DisplayResults shows the end results of a check run
func DisplayResults(logger Logger, res Results, duration time.Duration, quiet bool) {
	if quiet {
		return
	}
	logger.Info("Checked %d paths, %d excluded.", res.Checked, res.Excluded)
	if res.Admitted > 0 {
		logger.Info("%d of %d file slots used.", res.Admitted, res.Budget)
	}
	logger.Info("Done in %v.", duration.Round(time.Millisecond))
}
