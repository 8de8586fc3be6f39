package cli

import (
	"fmt"

	"github.com/gzhole/asidata/internal/dataset"
	"github.com/spf13/cobra"
)

var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print asidata version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("asidata %s (dataset edition %s)\n", Version, dataset.Version)
		fmt.Printf("  Commit: %s\n", GitCommit)
		fmt.Printf("  Built:  %s\n", BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
