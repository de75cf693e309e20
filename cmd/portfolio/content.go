package main

import (
	"fmt"

	"github.com/renz/portfolio/internal/content"
	"github.com/renz/portfolio/internal/observability"
	"github.com/spf13/cobra"
)

var contentFile string

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Validate a portfolio content file and print a summary",
	Long: `Validate a content document against the portfolio schema, the same check
serve applies to CONTENT_PATH. Without --file the embedded content is checked.`,
	RunE: runContent,
}

func init() {
	contentCmd.Flags().StringVarP(&contentFile, "file", "f", "", "Path to content JSON")
	rootCmd.AddCommand(contentCmd)
}

func runContent(cmd *cobra.Command, _ []string) error {
	portfolio, err := content.Load(contentFile)
	if err != nil {
		return fmt.Errorf("content check failed: %w", err)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintPortfolio(portfolio)
	return nil
}
