package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/twconfig"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the config document",
	Long: `Print a JSON Schema describing the config document, for editor
completion and validation of twconfig.yaml and twconfig.json.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := twconfig.SchemaJSON()
		if err != nil {
			return fmt.Errorf("generating schema: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}
