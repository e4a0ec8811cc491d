package internal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTranscriptDirCandidates(t *testing.T) {
	candidates := TranscriptDirCandidates()
	if len(candidates) == 0 {
		t.Fatal("TranscriptDirCandidates() returned no candidates")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	for _, dir := range candidates {
		if !filepath.IsAbs(dir) {
			t.Errorf("candidate %q is not absolute", dir)
		}
		if rel, err := filepath.Rel(home, dir); err != nil || rel == ".." {
			t.Errorf("candidate %q is not under home %q", dir, home)
		}
	}
}

func TestDefaultTranscriptDir(t *testing.T) {
	dir := DefaultTranscriptDir()
	if dir == "" {
		t.Error("DefaultTranscriptDir() returned empty string")
	}
}

func TestCountTranscripts(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"a.jsonl": "{}",
		"b.jsonl": "{}",
		"c.txt":   "not a transcript",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.jsonl"), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if got := CountTranscripts(dir); got != 2 {
		t.Errorf("CountTranscripts() = %d, want 2", got)
	}
}

func TestCountTranscripts_MissingDir(t *testing.T) {
	if got := CountTranscripts(filepath.Join(t.TempDir(), "nope")); got != 0 {
		t.Errorf("CountTranscripts(missing) = %d, want 0", got)
	}
}
