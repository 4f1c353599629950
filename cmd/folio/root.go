package main

import (
	"github.com/spf13/cobra"

	"github.com/foliokit/folio/internal/api"
	"github.com/foliokit/folio/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Convert TXT and PDF documents to structured, annotated records",
	Long: `Folio converts plain-text and PDF documents into structured document
records with rich bibliographic metadata, and exports them as JSON,
Markdown or plain text.

The pipeline includes:
  - OCR artifact repair and punctuation normalization
  - Chapter detection with running-title and page-number filtering
  - Publication-type-specific metadata (books, articles, theses, reports)
  - Batch conversion with per-file failure isolation`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.folio/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "folio home directory (default: ~/.folio)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
}
