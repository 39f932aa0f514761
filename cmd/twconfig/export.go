package main

import (
	"fmt"
	"io"

	"github.com/google/renameio/v2"
	"github.com/spf13/cobra"

	"github.com/yacobolo/twconfig"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Re-encode a config document",
	Long: `Load a config document and write it as YAML, JSON or a CommonJS module
(tailwind.config.js). Output is deterministic: names are sorted and keyframe
selectors are ordered by offset.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := documentPath(args)

		format, err := twconfig.ParseFormat(getStringWithFallback("format", "export.format", string(twconfig.FormatJS)))
		if err != nil {
			return err
		}

		doc, err := twconfig.Load(path)
		if err != nil {
			return err
		}

		output := getStringWithFallback("output", "export.output", "")
		if output == "" || output == "-" {
			return twconfig.Encode(cmd.OutOrStdout(), doc.Config, format)
		}

		logger.Debug("exporting config", "from", path, "to", output, "format", format)
		return writeAtomically(output, func(w io.Writer) error {
			return twconfig.Encode(w, doc.Config, format)
		})
	},
}

// writeAtomically replaces path with the output of write, leaving the old
// file in place if write fails.
func writeAtomically(path string, write func(w io.Writer) error) error {
	pf, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644), renameio.WithExistingPermissions())
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		_ = pf.Cleanup()
	}()

	if err := write(pf); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

func init() {
	exportCmd.Flags().String("format", "js", "Output format: yaml|json|js")
	exportCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
}
