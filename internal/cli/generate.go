package cli

import (
	"fmt"

	"github.com/gzhole/asidata/internal/config"
	"github.com/gzhole/asidata/internal/dataset"
	"github.com/gzhole/asidata/internal/output"
	"github.com/gzhole/asidata/internal/render"
	"github.com/gzhole/asidata/internal/validate"
	"github.com/gzhole/asidata/internal/view"

	"github.com/spf13/cobra"
)

var (
	generateViews   []string
	generateFormats []string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the JSON/YAML dataset artifacts",
	Long: `Build the dataset, validate it, and write the output artifacts.

With no flags this emits all eight files under the output directory:

  owasp_agentic_top10_full.{json,yaml}
  owasp_agentic_top10_entries.{json,yaml}
  owasp_agentic_top10_mappings.{json,yaml}
  owasp_agentic_top10_simplified.{json,yaml}

Validation failures are reported in full and nothing is written.

Examples:
  asidata generate
  asidata generate --out ./dist
  asidata generate --views simplified,entries --formats json`,
	RunE: generate,
}

func init() {
	generateCmd.Flags().StringSliceVar(&generateViews, "views", nil,
		"Subset of views to emit: full, entries, mappings, simplified (default: all)")
	generateCmd.Flags().StringSliceVar(&generateFormats, "formats", nil,
		"Subset of formats to emit: json, yaml (default: both)")
	rootCmd.AddCommand(generateCmd)
}

func generate(cmd *cobra.Command, args []string) error {
	views, err := selectViews(generateViews)
	if err != nil {
		return err
	}
	encodings, err := selectEncodings(generateFormats)
	if err != nil {
		return err
	}

	ds, err := dataset.Build()
	if err != nil {
		return fmt.Errorf("building dataset: %w", err)
	}

	if err := validate.Check(ds); err != nil {
		return err
	}

	// Render everything before touching the filesystem so a
	// serialization failure never leaves a partial artifact set
	// from this run.
	type artifact struct {
		view view.Name
		enc  render.Encoding
		data []byte
	}

	var projector view.Projector
	var artifacts []artifact
	for _, name := range views {
		doc, err := projector.Project(ds, name)
		if err != nil {
			return err
		}
		for _, enc := range encodings {
			data, err := render.Encode(doc, enc)
			if err != nil {
				return fmt.Errorf("rendering %s view: %w", name, err)
			}
			artifacts = append(artifacts, artifact{view: name, enc: enc, data: data})
		}
	}

	cfg := config.Load(outDir)
	writer := output.Writer{Dir: cfg.OutDir}
	written := 0
	for _, a := range artifacts {
		path, err := writer.Write(string(a.view), string(a.enc), a.data)
		if err != nil {
			if written > 0 {
				fmt.Printf("\n%d file(s) written before the failure are complete and valid.\n", written)
			}
			return err
		}
		written++
		fmt.Printf("  \xe2\x9c\x85 %s\n", path)
	}

	fmt.Printf("\nGenerated %d artifact(s) in %s\n", written, cfg.OutDir)
	return nil
}

func selectViews(requested []string) ([]view.Name, error) {
	if len(requested) == 0 {
		return view.All, nil
	}
	valid := make(map[view.Name]bool, len(view.All))
	for _, v := range view.All {
		valid[v] = true
	}
	var views []view.Name
	for _, r := range requested {
		name := view.Name(r)
		if !valid[name] {
			return nil, fmt.Errorf("unknown view %q, valid views: full, entries, mappings, simplified", r)
		}
		views = append(views, name)
	}
	return views, nil
}

func selectEncodings(requested []string) ([]render.Encoding, error) {
	if len(requested) == 0 {
		return render.All, nil
	}
	var encodings []render.Encoding
	for _, r := range requested {
		switch render.Encoding(r) {
		case render.JSON:
			encodings = append(encodings, render.JSON)
		case render.YAML:
			encodings = append(encodings, render.YAML)
		default:
			return nil, fmt.Errorf("unknown format %q, valid formats: json, yaml", r)
		}
	}
	return encodings, nil
}
