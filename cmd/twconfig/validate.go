package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yacobolo/twconfig"
	"github.com/yacobolo/twconfig/internal/report"
)

// errValidationFailed signals a non-zero exit after findings were printed.
var errValidationFailed = errors.New("validation failed")

var validateCmd = &cobra.Command{
	Use:     "validate [file]",
	Aliases: []string{"lint"},
	Short:   "Validate a config document",
	Long: `Check the document's data contract: every animation has matching keyframes,
safelist entries are unique class names, content globs are valid, and keyframe
selectors and CSS values parse. Exits 1 on errors (on any issue with --strict).`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd.OutOrStdout(), documentPath(args))
	},
}

func init() {
	addValidateFlags(validateCmd)
}

// addValidateFlags registers the flags shared by validate, watch and the
// root command.
func addValidateFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json|markdown")
	f.Int("max-issues-per-linter", 0, "Max issues to show per rule (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show document lines with issues")
	f.Bool("print-linter-name", true, "Show (rule) suffix on issues")
	f.String("root", "", "Project root; when set, content patterns must match files under it")
	f.StringSlice("disable", nil, "Rules to skip (e.g. unused-keyframes,unknown-key)")
	registerRuleCompletion(cmd)
}

func runValidate(w io.Writer, path string) error {
	doc, err := twconfig.Load(path)
	if err != nil {
		return err
	}

	opts := buildValidateOptions()
	logger.Debug("validating config", "file", path, "root", opts.Root, "disabled", opts.Disable)

	result, err := twconfig.Validate(doc, opts)
	if err != nil {
		return fmt.Errorf("validating %s: %w", path, err)
	}

	if err := writeResult(w, result); err != nil {
		return err
	}
	return exitStatus(result)
}

func writeResult(w io.Writer, result *twconfig.Result) error {
	quiet := getBoolWithFallback("quiet", "quiet", false)
	if quiet {
		return nil
	}

	outputFormat := getStringWithFallback("output-format", "validate.output-format", "")
	format := report.DetermineOutputFormat(outputFormat, quiet)
	return report.WriteOutput(w, result, format, buildReportOptions())
}

// exitStatus applies the "soft gate": only errors fail unless --strict is
// set, in which case warnings fail too.
func exitStatus(result *twconfig.Result) error {
	if getBoolWithFallback("strict", "validate.strict", false) {
		if result.ErrorCount+result.WarningCount > 0 {
			return errValidationFailed
		}
		return nil
	}
	if result.HasErrors() {
		return errValidationFailed
	}
	return nil
}
