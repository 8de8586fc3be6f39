package cli

import (
	"bytes"
	"fmt"

	"github.com/gzhole/asidata/internal/dataset"
	"github.com/gzhole/asidata/internal/render"
	"github.com/gzhole/asidata/internal/validate"
	"github.com/gzhole/asidata/internal/view"

	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Self-test — verify the dataset and its renderings are consistent",
	Long: `Run a quick diagnostic of the whole pipeline: build the dataset,
validate every structural invariant, render each view in both encodings,
check the full JSON against the compatibility schema, and verify that
JSON and YAML renderings carry identical content. Nothing is written.

  asidata scan`,
	RunE: scan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func scan(cmd *cobra.Command, args []string) error {
	fmt.Println("═══════════════════════════════════════════════════════")
	fmt.Println("  asidata Self-Test")
	fmt.Println("═══════════════════════════════════════════════════════")
	fmt.Println()

	pass := 0
	fail := 0
	check := func(label string, err error) {
		if err != nil {
			fmt.Printf("  \xe2\x9d\x8c %-38s %v\n", label, err)
			fail++
			return
		}
		fmt.Printf("  \xe2\x9c\x85 %s\n", label)
		pass++
	}

	ds, err := dataset.Build()
	check("Dataset builds", err)
	if err != nil {
		return summarize(pass, fail)
	}

	check("Dataset validates", validate.Check(ds))

	var projector view.Projector
	var fullJSON []byte

	for _, name := range view.All {
		doc, err := projector.Project(ds, name)
		if err != nil {
			check(fmt.Sprintf("Project %s view", name), err)
			continue
		}

		jsonText, jsonErr := render.EncodeJSON(doc)
		check(fmt.Sprintf("Render %s as JSON", name), jsonErr)
		yamlText, yamlErr := render.EncodeYAML(doc)
		check(fmt.Sprintf("Render %s as YAML", name), yamlErr)
		if jsonErr != nil || yamlErr != nil {
			continue
		}

		if name == view.Full {
			fullJSON = jsonText
		}

		check(fmt.Sprintf("Round-trip %s JSON == YAML", name), equivalentErr(jsonText, yamlText))

		again, err := render.EncodeJSON(doc)
		if err == nil && !bytes.Equal(jsonText, again) {
			err = fmt.Errorf("two renders of the same view differ")
		}
		check(fmt.Sprintf("Deterministic %s rendering", name), err)
	}

	if fullJSON != nil {
		check("Full JSON matches compatibility schema", render.CheckSchema(fullJSON))
	}

	return summarize(pass, fail)
}

func equivalentErr(jsonText, yamlText []byte) error {
	equal, err := render.Equivalent(jsonText, yamlText)
	if err != nil {
		return err
	}
	if !equal {
		return fmt.Errorf("renderings are not structurally equal")
	}
	return nil
}

func summarize(pass, fail int) error {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════")
	if fail == 0 {
		fmt.Printf("  ✅ All %d checks passed — dataset pipeline is consistent\n", pass)
	} else {
		fmt.Printf("  ⚠  %d/%d checks passed, %d failed\n", pass, pass+fail, fail)
	}
	fmt.Println("═══════════════════════════════════════════════════════")
	fmt.Println()

	if fail > 0 {
		return fmt.Errorf("self-test failed %d check(s)", fail)
	}
	return nil
}
