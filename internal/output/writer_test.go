package output

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWrite_CreatesNamedArtifact(t *testing.T) {
	dir := t.TempDir()
	w := Writer{Dir: dir}

	path, err := w.Write("full", "json", []byte(`{"entries": []}`+"\n"))
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	want := filepath.Join(dir, "owasp_agentic_top10_full.json")
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}
	if string(data) != `{"entries": []}`+"\n" {
		t.Errorf("artifact content mismatch: %q", data)
	}
}

func TestWrite_CreatesOutputDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	w := Writer{Dir: dir}

	if _, err := w.Write("entries", "yaml", []byte("entries: []\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "owasp_agentic_top10_entries.yaml")); err != nil {
		t.Errorf("artifact not created: %v", err)
	}
}

func TestWrite_OverwritesUnconditionally(t *testing.T) {
	dir := t.TempDir()
	w := Writer{Dir: dir}

	if _, err := w.Write("simplified", "json", []byte("old\n")); err != nil {
		t.Fatalf("first Write failed: %v", err)
	}
	path, err := w.Write("simplified", "json", []byte("new\n"))
	if err != nil {
		t.Fatalf("second Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}
	if string(data) != "new\n" {
		t.Errorf("overwrite failed, content = %q", data)
	}
}

func TestWrite_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	w := Writer{Dir: dir}

	if _, err := w.Write("mappings", "yaml", []byte("mappings: []\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
	if len(entries) != 1 {
		t.Errorf("expected exactly 1 file, got %d", len(entries))
	}
}

func TestWrite_UnwritableTarget(t *testing.T) {
	// A regular file in the directory path makes MkdirAll fail on any
	// platform, regardless of the user's privileges.
	base := t.TempDir()
	blocker := filepath.Join(base, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("creating blocker file: %v", err)
	}

	w := Writer{Dir: filepath.Join(blocker, "out")}
	_, err := w.Write("full", "json", []byte("{}\n"))

	var werr *IOWriteError
	if !errors.As(err, &werr) {
		t.Fatalf("expected IOWriteError, got %v", err)
	}
}

func TestFilename(t *testing.T) {
	if got := Filename("full", "json"); got != "owasp_agentic_top10_full.json" {
		t.Errorf("Filename = %q", got)
	}
	if got := Filename("simplified", "yaml"); got != "owasp_agentic_top10_simplified.yaml" {
		t.Errorf("Filename = %q", got)
	}
}
