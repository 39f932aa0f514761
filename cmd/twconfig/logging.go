package main

import (
	"os"

	"github.com/charmbracelet/log"
)

// logger writes diagnostics to stderr; command output goes to stdout.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix:          "twconfig",
	ReportTimestamp: false,
	Level:           log.InfoLevel,
})

// setupLogger applies --verbose and --quiet to the logger.
func setupLogger() {
	switch {
	case getBoolWithFallback("quiet", "quiet", false):
		logger.SetLevel(log.ErrorLevel)
	case getBoolWithFallback("verbose", "verbose", false):
		logger.SetLevel(log.DebugLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
}
