package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/google/renameio/v2"
	"github.com/spf13/cobra"

	"github.com/yacobolo/twconfig"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config document",
	Long: `Create a config document with the project defaults: templ sources under
internal/, the alert variants safelisted and a slide-in animation with its keyframes.
The file is written atomically.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		force := getBoolWithFallback("force", "init.force", false)

		format, err := twconfig.ParseFormat(getStringWithFallback("format", "init.format", string(twconfig.FormatYAML)))
		if err != nil {
			return err
		}

		path := getStringWithFallback("file", "file", defaultFileName(format))

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		var buf bytes.Buffer
		if format == twconfig.FormatYAML {
			buf.WriteString(documentHeader)
		}
		if err := twconfig.Encode(&buf, twconfig.Default(), format); err != nil {
			return err
		}

		if err := renameio.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		return nil
	},
}

const documentHeader = `# Utility-CSS generator configuration
# Validate with: twconfig validate
`

// defaultFileName names the document written by init for each format.
func defaultFileName(format twconfig.Format) string {
	switch format {
	case twconfig.FormatJSON:
		return "twconfig.json"
	case twconfig.FormatJS:
		return "tailwind.config.js"
	}
	return defaultDocumentFile
}

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
	initCmd.Flags().String("format", "yaml", "Document format: yaml|json|js")
}
