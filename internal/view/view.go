// Package view projects a validated dataset into the named output views.
// Projection is pure: the dataset is never mutated, fields are never
// reordered, and nothing beyond each view's definition is dropped.
package view

import (
	"fmt"
	"strings"

	"github.com/gzhole/asidata/internal/dataset"
)

// Name identifies an output view.
type Name string

const (
	Full       Name = "full"
	Entries    Name = "entries"
	Mappings   Name = "mappings"
	Simplified Name = "simplified"
)

// All lists the views in emission order.
var All = []Name{Full, Entries, Mappings, Simplified}

// FullDoc is the complete dataset under stable top-level keys.
type FullDoc struct {
	Metadata  dataset.Metadata   `json:"metadata" yaml:"metadata"`
	Entries   []dataset.Entry    `json:"entries" yaml:"entries"`
	Mappings  []dataset.Mapping  `json:"mappings" yaml:"mappings"`
	Incidents []dataset.Incident `json:"incidents" yaml:"incidents"`
}

// EntriesDoc holds only the entries list, field set identical to FullDoc.
type EntriesDoc struct {
	Entries []dataset.Entry `json:"entries" yaml:"entries"`
}

// MappingsDoc holds only the framework mappings.
type MappingsDoc struct {
	Mappings []dataset.Mapping `json:"mappings" yaml:"mappings"`
}

// SimplifiedEntry is the reduced per-entry shape of the simplified view.
type SimplifiedEntry struct {
	ID      string `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Summary string `json:"summary" yaml:"summary"`
}

// SimplifiedDoc is the simplified view document.
type SimplifiedDoc struct {
	Entries []SimplifiedEntry `json:"entries" yaml:"entries"`
}

// SummaryFunc derives a simplified-view summary from an entry description.
type SummaryFunc func(description string) string

// Projector turns a dataset into view documents. The zero value uses
// FirstSentence for summaries.
type Projector struct {
	Summarize SummaryFunc
}

// Project returns the document for the named view.
func (p Projector) Project(ds *dataset.Dataset, name Name) (any, error) {
	switch name {
	case Full:
		return FullDoc{
			Metadata:  ds.Metadata,
			Entries:   ds.Entries,
			Mappings:  ds.Mappings,
			Incidents: ds.Incidents,
		}, nil
	case Entries:
		return EntriesDoc{Entries: ds.Entries}, nil
	case Mappings:
		return MappingsDoc{Mappings: ds.Mappings}, nil
	case Simplified:
		summarize := p.Summarize
		if summarize == nil {
			summarize = FirstSentence
		}
		simplified := make([]SimplifiedEntry, 0, len(ds.Entries))
		for _, e := range ds.Entries {
			simplified = append(simplified, SimplifiedEntry{
				ID:      e.ID,
				Title:   e.Title,
				Summary: summarize(e.Description),
			})
		}
		return SimplifiedDoc{Entries: simplified}, nil
	default:
		return nil, fmt.Errorf("unknown view %q", name)
	}
}

// FirstSentence returns the text up to and including the first sentence
// terminator ('.', '!' or '?'), or the whole string if none is present.
func FirstSentence(s string) string {
	if i := strings.IndexAny(s, ".!?"); i >= 0 {
		return s[:i+1]
	}
	return s
}
