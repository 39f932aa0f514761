package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yacobolo/twconfig"
)

var filesCmd = &cobra.Command{
	Use:   "files [file]",
	Short: "List the files matched by the content patterns",
	Long: `Expand the document's content patterns under --root and print the files
the generator would scan. Negated patterns and .gitignore are honored.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := twconfig.Load(documentPath(args))
		if err != nil {
			return err
		}

		root := getStringWithFallback("root", "validate.root", ".")
		files, err := twconfig.MatchContent(root, doc.Config.Content)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, f := range files {
			if rel, err := filepath.Rel(root, f); err == nil {
				f = rel
			}
			fmt.Fprintln(out, filepath.ToSlash(f))
		}
		logger.Debug("matched content files", "count", len(files), "root", root)
		return nil
	},
}

func init() {
	filesCmd.Flags().String("root", ".", "Project root the content patterns are relative to")
}
