// Package query provides read-only lookups over a built dataset for
// the CLI commands. All functions treat the dataset as immutable.
package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gzhole/asidata/internal/dataset"
)

// EntryByID returns the entry with the given ASI id (case-insensitive),
// or nil if no such entry exists.
func EntryByID(ds *dataset.Dataset, id string) *dataset.Entry {
	id = strings.ToUpper(id)
	for i := range ds.Entries {
		if ds.Entries[i].ID == id {
			return &ds.Entries[i]
		}
	}
	return nil
}

// EntryByTitle returns the first entry whose title contains the given
// text, case-insensitive, or nil if none matches.
func EntryByTitle(ds *dataset.Dataset, title string) *dataset.Entry {
	title = strings.ToLower(title)
	for i := range ds.Entries {
		if strings.Contains(strings.ToLower(ds.Entries[i].Title), title) {
			return &ds.Entries[i]
		}
	}
	return nil
}

// Titles returns id → title for every entry.
func Titles(ds *dataset.Dataset) map[string]string {
	titles := make(map[string]string, len(ds.Entries))
	for _, e := range ds.Entries {
		titles[e.ID] = e.Title
	}
	return titles
}

// Mitigations returns the mitigation list for an entry id.
func Mitigations(ds *dataset.Dataset, id string) ([]string, error) {
	e := EntryByID(ds, id)
	if e == nil {
		return nil, fmt.Errorf("entry not found: %s", id)
	}
	return e.Mitigations, nil
}

// AttackScenarios returns the attack scenarios for an entry id.
func AttackScenarios(ds *dataset.Dataset, id string) ([]dataset.AttackScenario, error) {
	e := EntryByID(ds, id)
	if e == nil {
		return nil, fmt.Errorf("entry not found: %s", id)
	}
	return e.AttackScenarios, nil
}

// RelatedLLMEntries returns the OWASP LLM Top 10 references for an entry id.
func RelatedLLMEntries(ds *dataset.Dataset, id string) ([]string, error) {
	e := EntryByID(ds, id)
	if e == nil {
		return nil, fmt.Errorf("entry not found: %s", id)
	}
	return e.RelatedLLMEntries, nil
}

// ASIToLLMMapping returns entry id → related LLM Top 10 references for
// the whole dataset.
func ASIToLLMMapping(ds *dataset.Dataset) map[string][]string {
	m := make(map[string][]string, len(ds.Entries))
	for _, e := range ds.Entries {
		m[e.ID] = e.RelatedLLMEntries
	}
	return m
}

// ThreatsForComponent returns the entries relevant to an architecture
// component type, in entry rank order. Unknown component types produce
// an error listing the valid ones.
func ThreatsForComponent(ds *dataset.Dataset, componentType string) ([]dataset.Entry, error) {
	componentType = strings.ToLower(componentType)

	ids, ok := dataset.ComponentThreatMap[componentType]
	if !ok {
		valid := make([]string, 0, len(dataset.ComponentThreatMap))
		for k := range dataset.ComponentThreatMap {
			valid = append(valid, k)
		}
		sort.Strings(valid)
		return nil, fmt.Errorf("unknown component type %q, valid types: %s",
			componentType, strings.Join(valid, ", "))
	}

	relevant := make(map[string]bool, len(ids))
	for _, id := range ids {
		relevant[id] = true
	}

	var entries []dataset.Entry
	for _, e := range ds.Entries {
		if relevant[e.ID] {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// IncidentsByASI returns the incidents that reference the given entry id.
func IncidentsByASI(ds *dataset.Dataset, id string) []dataset.Incident {
	id = strings.ToUpper(id)
	var incidents []dataset.Incident
	for _, in := range ds.Incidents {
		for _, ref := range in.RelatedASI {
			if ref == id {
				incidents = append(incidents, in)
				break
			}
		}
	}
	return incidents
}
