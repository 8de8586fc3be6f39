package cli

import (
	"fmt"
	"strings"

	"github.com/gzhole/asidata/internal/dataset"
	"github.com/gzhole/asidata/internal/query"
	"github.com/gzhole/asidata/internal/validate"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <asi-id-or-title>",
	Short: "Show the full detail of one entry",
	Long: `Show one ASI entry with all fields: description, related threats,
framework references, examples, attack scenarios, mitigations, and any
tracked real-world incidents.

Lookup is by id (asidata show ASI01) or by case-insensitive title
substring (asidata show "goal hijack").`,
	Args: cobra.ExactArgs(1),
	RunE: show,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func show(cmd *cobra.Command, args []string) error {
	ds, err := dataset.Build()
	if err != nil {
		return fmt.Errorf("building dataset: %w", err)
	}
	if err := validate.Check(ds); err != nil {
		return err
	}

	entry := query.EntryByID(ds, args[0])
	if entry == nil {
		entry = query.EntryByTitle(ds, args[0])
	}
	if entry == nil {
		return fmt.Errorf("no entry matches %q (try 'asidata list')", args[0])
	}

	fmt.Printf("%s: %s\n", entry.ID, entry.Title)
	fmt.Println(strings.Repeat("─", 72))
	fmt.Println(entry.Description)

	fmt.Printf("\nAIVSS core risk: %s\n", entry.AIVSSCoreRisk)

	printList("Related threats", entry.RelatedThreats)
	printList("Related LLM Top 10 entries", entry.RelatedLLMEntries)
	printList("Common examples", entry.CommonExamples)

	fmt.Println("\nAttack scenarios:")
	for _, s := range entry.AttackScenarios {
		fmt.Printf("  • %s\n    %s\n", s.Name, s.Description)
	}

	printList("Mitigations", entry.Mitigations)

	fmt.Println("\nReferences:")
	for _, r := range entry.References {
		fmt.Printf("  • %s\n    %s\n", r.Title, r.URL)
	}

	incidents := query.IncidentsByASI(ds, entry.ID)
	if len(incidents) > 0 {
		fmt.Println("\nTracked incidents:")
		for _, in := range incidents {
			fmt.Printf("  • %s (%s, %s)\n", in.Name, in.AffectedSystem, in.Date)
		}
	}

	return nil
}

func printList(header string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", header)
	for _, item := range items {
		fmt.Printf("  • %s\n", item)
	}
}
