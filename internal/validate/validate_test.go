package validate

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/gzhole/asidata/internal/dataset"
)

// minimalDataset returns ten structurally valid entries plus empty
// mapping and incident sets.
func minimalDataset() *dataset.Dataset {
	entries := make([]dataset.Entry, 0, 10)
	for i := 1; i <= 10; i++ {
		id := fmt.Sprintf("ASI%02d", i)
		entries = append(entries, dataset.Entry{
			ID:            id,
			Title:         "Entry " + id,
			Description:   "Description for " + id + ".",
			AIVSSCoreRisk: "risk",
			AttackScenarios: []dataset.AttackScenario{
				{Name: "S1", Description: "scenario"},
			},
			Mitigations: []string{"Do X"},
		})
	}
	return &dataset.Dataset{Entries: entries}
}

func TestCheck_ValidDatasetPasses(t *testing.T) {
	if err := Check(minimalDataset()); err != nil {
		t.Fatalf("valid dataset failed validation: %v", err)
	}
}

func TestCheck_BuiltDatasetPasses(t *testing.T) {
	ds, err := dataset.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if err := Check(ds); err != nil {
		t.Fatalf("built dataset failed validation: %v", err)
	}
}

func TestCheck_NineEntriesFails(t *testing.T) {
	ds := minimalDataset()
	ds.Entries = ds.Entries[:9]

	err := Check(ds)
	assertViolation(t, err, "expected exactly 10 entries, got 9")
	assertViolation(t, err, "missing required entry ASI10")
}

func TestCheck_ElevenEntriesFails(t *testing.T) {
	ds := minimalDataset()
	extra := ds.Entries[0]
	extra.ID = "ASI11"
	extra.Title = "Entry ASI11"
	ds.Entries = append(ds.Entries, extra)

	err := Check(ds)
	assertViolation(t, err, "expected exactly 10 entries, got 11")
}

func TestCheck_DuplicateIDFails(t *testing.T) {
	ds := minimalDataset()
	ds.Entries[9].ID = "ASI01"

	err := Check(ds)
	assertViolation(t, err, `duplicate entry id "ASI01"`)
	assertViolation(t, err, "missing required entry ASI10")
}

func TestCheck_BadIDFormatFails(t *testing.T) {
	ds := minimalDataset()
	ds.Entries[0].ID = "ASI1"

	err := Check(ds)
	assertViolation(t, err, `does not match ASI\d{2}`)
}

func TestCheck_MappingUnknownEntryFails(t *testing.T) {
	ds := minimalDataset()
	ds.Mappings = []dataset.Mapping{{EntryID: "ASI99"}}

	err := Check(ds)
	assertViolation(t, err, `references unknown entry "ASI99"`)
	assertViolation(t, err, "mapping ASI99")
}

func TestCheck_IncidentUnknownEntryFails(t *testing.T) {
	ds := minimalDataset()
	ds.Incidents = []dataset.Incident{{
		Name:           "Ghost",
		AffectedSystem: "X",
		Date:           "2025-01",
		Description:    "d",
		RelatedASI:     []string{"ASI42"},
	}}

	err := Check(ds)
	assertViolation(t, err, `references unknown entry "ASI42"`)
	assertViolation(t, err, "incident Ghost")
}

func TestCheck_UnclassifiedIncidentAllowed(t *testing.T) {
	ds := minimalDataset()
	ds.Incidents = []dataset.Incident{{
		Name:           "Unclassified",
		AffectedSystem: "X",
		Date:           "2025-01",
		Description:    "d",
	}}

	if err := Check(ds); err != nil {
		t.Fatalf("incident with empty related_asi should pass: %v", err)
	}
}

func TestCheck_ZeroMitigationsFails(t *testing.T) {
	ds := minimalDataset()
	ds.Entries[2].Mitigations = nil

	err := Check(ds)
	assertViolation(t, err, "entry ASI03")
	assertViolation(t, err, "at least one mitigation")
}

func TestCheck_ZeroScenariosFails(t *testing.T) {
	ds := minimalDataset()
	ds.Entries[4].AttackScenarios = nil

	err := Check(ds)
	assertViolation(t, err, "at least one attack scenario")
}

func TestCheck_DuplicateScenarioNamesFails(t *testing.T) {
	ds := minimalDataset()
	ds.Entries[0].AttackScenarios = []dataset.AttackScenario{
		{Name: "Same", Description: "a"},
		{Name: "Same", Description: "b"},
	}

	err := Check(ds)
	assertViolation(t, err, `duplicate scenario name "Same"`)
}

func TestCheck_SelfReferenceFails(t *testing.T) {
	ds := minimalDataset()
	ds.Entries[0].RelatedThreats = []string{"ASI01"}

	err := Check(ds)
	assertViolation(t, err, "entry references itself")
}

func TestCheck_AccumulatesAllViolations(t *testing.T) {
	ds := minimalDataset()
	ds.Entries[0].Mitigations = nil
	ds.Entries[1].AttackScenarios = nil
	ds.Mappings = []dataset.Mapping{{EntryID: "ASI99"}}

	err := Check(ds)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(verr.Violations) != 3 {
		t.Errorf("expected 3 violations, got %d: %v", len(verr.Violations), verr)
	}
}

func assertViolation(t *testing.T, err error, substr string) {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if !strings.Contains(verr.Error(), substr) {
		t.Errorf("violations do not mention %q:\n%s", substr, verr.Error())
	}
}
