package cli

import (
	"fmt"
	"strings"

	"github.com/gzhole/asidata/internal/dataset"
	"github.com/gzhole/asidata/internal/query"
	"github.com/gzhole/asidata/internal/validate"

	"github.com/spf13/cobra"
)

var incidentsASI string

var incidentsCmd = &cobra.Command{
	Use:   "incidents",
	Short: "List tracked real-world incidents",
	Long: `List the real-world exploit tracker, optionally filtered to incidents
related to one ASI entry.

Examples:
  asidata incidents
  asidata incidents --asi ASI01`,
	RunE: incidents,
}

func init() {
	incidentsCmd.Flags().StringVar(&incidentsASI, "asi", "", "Only incidents related to this entry id")
	rootCmd.AddCommand(incidentsCmd)
}

func incidents(cmd *cobra.Command, args []string) error {
	ds, err := dataset.Build()
	if err != nil {
		return fmt.Errorf("building dataset: %w", err)
	}
	if err := validate.Check(ds); err != nil {
		return err
	}

	tracked := ds.Incidents
	if incidentsASI != "" {
		if query.EntryByID(ds, incidentsASI) == nil {
			return fmt.Errorf("no entry matches %q (try 'asidata list')", incidentsASI)
		}
		tracked = query.IncidentsByASI(ds, incidentsASI)
	}

	if len(tracked) == 0 {
		fmt.Printf("No tracked incidents for %s.\n", strings.ToUpper(incidentsASI))
		return nil
	}

	for _, in := range tracked {
		fmt.Printf("%s — %s (%s)\n", in.Name, in.AffectedSystem, in.Date)
		fmt.Printf("  %s\n", in.Description)
		if len(in.RelatedASI) > 0 {
			fmt.Printf("  Related: %s\n", strings.Join(in.RelatedASI, ", "))
		}
		fmt.Printf("  Source: %s\n\n", in.Source)
	}
	return nil
}
