package cli

import (
	"fmt"
	"strings"

	"github.com/gzhole/asidata/internal/dataset"
	"github.com/gzhole/asidata/internal/query"
	"github.com/gzhole/asidata/internal/validate"
	"github.com/gzhole/asidata/internal/view"

	"github.com/spf13/cobra"
)

var threatsCmd = &cobra.Command{
	Use:   "threats <component-type>",
	Short: "List the ASI entries relevant to an architecture component",
	Long: `Look up which Agentic Top 10 entries apply when threat-modeling a
specific component of an agentic system.

Component types:
  llm_agent, tool_integration, multi_agent, user_interface,
  identity_system, memory_store, code_executor, orchestrator,
  external_api, communication_layer, supply_chain, rag_system

Example:
  asidata threats llm_agent`,
	Args: cobra.ExactArgs(1),
	RunE: threats,
}

func init() {
	rootCmd.AddCommand(threatsCmd)
}

func threats(cmd *cobra.Command, args []string) error {
	ds, err := dataset.Build()
	if err != nil {
		return fmt.Errorf("building dataset: %w", err)
	}
	if err := validate.Check(ds); err != nil {
		return err
	}

	entries, err := query.ThreatsForComponent(ds, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Threats for component type %q:\n", strings.ToLower(args[0]))
	fmt.Println(strings.Repeat("─", 72))
	for _, e := range entries {
		fmt.Printf("  %s  %s\n", e.ID, e.Title)
		fmt.Printf("         %s\n", view.FirstSentence(e.Description))
	}
	return nil
}
