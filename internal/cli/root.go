package cli

import (
	"github.com/spf13/cobra"
)

var outDir string

var rootCmd = &cobra.Command{
	Use:   "asidata",
	Short: "asidata - OWASP Agentic Top 10 security dataset",
	Long: `asidata curates the OWASP Top 10 for Agentic Applications 2026 as a
machine-readable dataset and generates its JSON/YAML artifacts for
threat-modeling tools, compliance maps, and detection rules.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&outDir, "out", "", "Output directory for generated artifacts (default: data/, or $ASIDATA_OUT)")
}

func Execute() error {
	return rootCmd.Execute()
}
