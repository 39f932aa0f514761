package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yacobolo/twconfig"
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-validate the config document on every change",
	Long: `Validate the document, then validate it again each time it is saved,
until interrupted. Load errors are logged and watching continues.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return runWatch(ctx, cmd, documentPath(args))
	},
}

func init() {
	addValidateFlags(watchCmd)
	watchCmd.Flags().Duration("debounce", twconfig.DefaultDebounce, "Quiet period after a change before re-validating")
}

func runWatch(ctx context.Context, cmd *cobra.Command, path string) error {
	opts := twconfig.WatchOptions{
		Validate: buildValidateOptions(),
		Debounce: getDurationWithFallback("debounce", "watch.debounce", twconfig.DefaultDebounce),
		Logger:   logger,
	}

	out := cmd.OutOrStdout()
	logger.Info("watching for changes", "file", path)

	err := twconfig.Watch(ctx, path, opts, func(_ *twconfig.Document, res *twconfig.Result, err error) {
		if err != nil {
			logger.Error("reload failed", "err", err)
			return
		}
		if err := writeResult(out, res); err != nil {
			logger.Error("writing result", "err", err)
		}
	})
	if err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	return nil
}
