package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "twconfig",
	Short: "Validator and writer for utility-CSS configuration documents",
	Long: `Check a utility-CSS configuration document (content globs, safelist,
theme animations and keyframes) and write it in the formats the generator reads.
Without a subcommand, twconfig validates the document.`,
	// Default behavior: run validate when no subcommand is given.
	// We must call loadConfig here because PreRunE of validateCmd
	// is not triggered when delegating via rootCmd.RunE.
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runValidate(cmd.OutOrStdout(), documentPath(args))
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", defaultSettingsFile, "Settings file path")
	rootCmd.PersistentFlags().StringP("file", "f", defaultDocumentFile, "Config document path")

	addValidateFlags(rootCmd)

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(filesCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
