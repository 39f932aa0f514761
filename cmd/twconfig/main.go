// Package main provides the twconfig CLI for validating and writing
// utility-CSS configuration documents.
package main

import (
	"errors"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Findings were already reported; only the exit code is left.
		if !errors.Is(err, errValidationFailed) {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}
}
