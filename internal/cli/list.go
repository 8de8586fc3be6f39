package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/gzhole/asidata/internal/dataset"
	"github.com/gzhole/asidata/internal/validate"
	"github.com/gzhole/asidata/internal/view"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the ten ASI entries",
	RunE:  list,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func list(cmd *cobra.Command, args []string) error {
	ds, err := dataset.Build()
	if err != nil {
		return fmt.Errorf("building dataset: %w", err)
	}
	if err := validate.Check(ds); err != nil {
		return err
	}

	// Plain tab-separated output when piped, pretty table on a terminal.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		for _, e := range ds.Entries {
			fmt.Printf("%s\t%s\n", e.ID, e.Title)
		}
		return nil
	}

	fmt.Printf("OWASP Top 10 for Agentic Applications (%s)\n", ds.Metadata.Version)
	fmt.Println(strings.Repeat("─", 72))
	for _, e := range ds.Entries {
		fmt.Printf("  %s  %-42s\n", e.ID, e.Title)
		fmt.Printf("         %s\n", view.FirstSentence(e.Description))
	}
	fmt.Println(strings.Repeat("─", 72))
	fmt.Printf("Source: %s  License: %s\n", ds.Metadata.SourceURL, ds.Metadata.License)
	return nil
}
