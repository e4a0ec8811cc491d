package internal

import (
	"os"
	"path/filepath"
	"runtime"
)

// TranscriptDirCandidates returns the places agent CLIs are known to write
// transcript files, most likely first. Only candidates for the current OS
// are returned; callers decide what to do when none exist.
func TranscriptDirCandidates() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	candidates := []string{
		filepath.Join(home, ".claude", "projects"),
		filepath.Join(home, ".config", "agent", "transcripts"),
	}

	if runtime.GOOS == "darwin" {
		candidates = append(candidates,
			filepath.Join(home, "Library", "Application Support", "agent", "transcripts"))
	}

	return candidates
}

// DefaultTranscriptDir returns the first candidate directory that exists,
// or the first candidate as a plain default when none do.
func DefaultTranscriptDir() string {
	candidates := TranscriptDirCandidates()
	if len(candidates) == 0 {
		return "transcripts"
	}

	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return candidates[0]
}

// CountTranscripts reports how many .jsonl files a directory currently
// holds. Used by healthcheck; a missing directory counts as zero.
func CountTranscripts(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}

	count := 0
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".jsonl" {
			count++
		}
	}
	return count
}
