package view

import (
	"reflect"
	"strings"
	"testing"

	"github.com/gzhole/asidata/internal/dataset"
)

func TestFirstSentence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"One sentence. Another follows.", "One sentence."},
		{"Really?! Yes.", "Really?"},
		{"Watch out! Danger.", "Watch out!"},
		{"No terminator at all", "No terminator at all"},
		{"", ""},
		{"Ends exactly here.", "Ends exactly here."},
	}

	for _, tc := range tests {
		if got := FirstSentence(tc.in); got != tc.want {
			t.Errorf("FirstSentence(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestProject_EntriesViewMatchesFull(t *testing.T) {
	ds, err := dataset.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var p Projector
	fullDoc, err := p.Project(ds, Full)
	if err != nil {
		t.Fatalf("Project(full) failed: %v", err)
	}
	entriesDoc, err := p.Project(ds, Entries)
	if err != nil {
		t.Fatalf("Project(entries) failed: %v", err)
	}

	full := fullDoc.(FullDoc)
	entries := entriesDoc.(EntriesDoc)

	if !reflect.DeepEqual(full.Entries, entries.Entries) {
		t.Error("entries view differs from the full view's entries")
	}
}

func TestProject_FullViewCarriesWholeDataset(t *testing.T) {
	ds, err := dataset.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var p Projector
	doc, err := p.Project(ds, Full)
	if err != nil {
		t.Fatalf("Project(full) failed: %v", err)
	}
	full := doc.(FullDoc)

	if !reflect.DeepEqual(full.Metadata, ds.Metadata) {
		t.Error("full view metadata differs from dataset")
	}
	if !reflect.DeepEqual(full.Mappings, ds.Mappings) {
		t.Error("full view mappings differ from dataset")
	}
	if !reflect.DeepEqual(full.Incidents, ds.Incidents) {
		t.Error("full view incidents differ from dataset")
	}
}

func TestProject_SimplifiedSummaries(t *testing.T) {
	ds, err := dataset.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var p Projector
	doc, err := p.Project(ds, Simplified)
	if err != nil {
		t.Fatalf("Project(simplified) failed: %v", err)
	}
	simplified := doc.(SimplifiedDoc)

	if len(simplified.Entries) != len(ds.Entries) {
		t.Fatalf("expected %d simplified entries, got %d", len(ds.Entries), len(simplified.Entries))
	}

	for i, se := range simplified.Entries {
		src := ds.Entries[i]
		if se.ID != src.ID {
			t.Errorf("simplified[%d].ID = %q, want %q", i, se.ID, src.ID)
		}
		if se.Title != src.Title {
			t.Errorf("simplified[%d].Title = %q, want %q", i, se.Title, src.Title)
		}
		if want := FirstSentence(src.Description); se.Summary != want {
			t.Errorf("simplified[%d].Summary = %q, want %q", i, se.Summary, want)
		}
		if !strings.HasPrefix(src.Description, se.Summary) {
			t.Errorf("simplified[%d].Summary is not a prefix of the description", i)
		}
	}
}

func TestProject_CustomSummaryFunc(t *testing.T) {
	ds, err := dataset.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	p := Projector{Summarize: func(string) string { return "fixed" }}
	doc, err := p.Project(ds, Simplified)
	if err != nil {
		t.Fatalf("Project(simplified) failed: %v", err)
	}

	for _, se := range doc.(SimplifiedDoc).Entries {
		if se.Summary != "fixed" {
			t.Fatalf("custom summary func not applied: %q", se.Summary)
		}
	}
}

func TestProject_DoesNotMutateDataset(t *testing.T) {
	ds, err := dataset.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	fresh, err := dataset.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var p Projector
	for _, name := range All {
		if _, err := p.Project(ds, name); err != nil {
			t.Fatalf("Project(%s) failed: %v", name, err)
		}
	}

	if !reflect.DeepEqual(ds, fresh) {
		t.Error("projection mutated the dataset")
	}
}

func TestProject_UnknownView(t *testing.T) {
	ds, err := dataset.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var p Projector
	if _, err := p.Project(ds, Name("bogus")); err == nil {
		t.Fatal("expected error for unknown view")
	}
}
