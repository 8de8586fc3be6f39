package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func runGenerate(t *testing.T, args ...string) error {
	t.Helper()
	// Flag variables persist across Execute calls in the same process.
	generateViews = nil
	generateFormats = nil
	rootCmd.SetArgs(append([]string{"generate"}, args...))
	return rootCmd.Execute()
}

func TestGenerate_EmitsAllEightArtifacts(t *testing.T) {
	dir := t.TempDir()

	if err := runGenerate(t, "--out", dir); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	want := []string{
		"owasp_agentic_top10_full.json",
		"owasp_agentic_top10_full.yaml",
		"owasp_agentic_top10_entries.json",
		"owasp_agentic_top10_entries.yaml",
		"owasp_agentic_top10_mappings.json",
		"owasp_agentic_top10_mappings.yaml",
		"owasp_agentic_top10_simplified.json",
		"owasp_agentic_top10_simplified.yaml",
	}
	for _, name := range want {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading output dir: %v", err)
	}
	if len(entries) != len(want) {
		t.Errorf("expected %d files, got %d", len(want), len(entries))
	}
}

func TestGenerate_FullJSONContent(t *testing.T) {
	dir := t.TempDir()

	if err := runGenerate(t, "--out", dir); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "owasp_agentic_top10_full.json"))
	if err != nil {
		t.Fatalf("reading full.json: %v", err)
	}

	var full struct {
		Entries []struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"entries"`
	}
	if err := json.Unmarshal(data, &full); err != nil {
		t.Fatalf("parsing full.json: %v", err)
	}

	if len(full.Entries) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(full.Entries))
	}
	if full.Entries[0].ID != "ASI01" {
		t.Errorf("entries[0].id = %q, want ASI01", full.Entries[0].ID)
	}
	if full.Entries[0].Title != "Agent Goal Hijack" {
		t.Errorf("entries[0].title = %q", full.Entries[0].Title)
	}
}

func TestGenerate_SimplifiedJSONContent(t *testing.T) {
	dir := t.TempDir()

	if err := runGenerate(t, "--out", dir); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "owasp_agentic_top10_simplified.json"))
	if err != nil {
		t.Fatalf("reading simplified.json: %v", err)
	}

	var simplified struct {
		Entries []struct {
			ID      string `json:"id"`
			Title   string `json:"title"`
			Summary string `json:"summary"`
		} `json:"entries"`
	}
	if err := json.Unmarshal(data, &simplified); err != nil {
		t.Fatalf("parsing simplified.json: %v", err)
	}

	first := simplified.Entries[0]
	if first.ID != "ASI01" || first.Title != "Agent Goal Hijack" {
		t.Errorf("first simplified entry = %+v", first)
	}
	if first.Summary == "" {
		t.Error("first simplified entry has empty summary")
	}
}

func TestGenerate_SubsetSelection(t *testing.T) {
	dir := t.TempDir()

	if err := runGenerate(t, "--out", dir, "--views", "simplified,entries", "--formats", "json"); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading output dir: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}

	for _, name := range []string{
		"owasp_agentic_top10_simplified.json",
		"owasp_agentic_top10_entries.json",
	} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing artifact %s", name)
		}
	}
}

func TestGenerate_RejectsUnknownView(t *testing.T) {
	if err := runGenerate(t, "--out", t.TempDir(), "--views", "bogus"); err == nil {
		t.Fatal("expected error for unknown view")
	}
}

func TestGenerate_RejectsUnknownFormat(t *testing.T) {
	if err := runGenerate(t, "--out", t.TempDir(), "--formats", "toml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestGenerate_IsIdempotent(t *testing.T) {
	dir := t.TempDir()

	if err := runGenerate(t, "--out", dir); err != nil {
		t.Fatalf("first generate failed: %v", err)
	}
	first, err := os.ReadFile(filepath.Join(dir, "owasp_agentic_top10_full.yaml"))
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}

	if err := runGenerate(t, "--out", dir); err != nil {
		t.Fatalf("second generate failed: %v", err)
	}
	second, err := os.ReadFile(filepath.Join(dir, "owasp_agentic_top10_full.yaml"))
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}

	if string(first) != string(second) {
		t.Error("two runs produced different bytes for the same artifact")
	}
}
