package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TranscriptLine builds one Claude-style transcript record as a JSON line
func TranscriptLine(t *testing.T, id, sessionID, role, content string) string {
	t.Helper()

	record := map[string]interface{}{
		"uuid": id,
		"type": role,
		"message": map[string]interface{}{
			"role":    role,
			"content": content,
		},
	}
	if sessionID != "" {
		record["sessionId"] = sessionID
	}

	data, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("Failed to marshal transcript line: %v", err)
	}
	return string(data)
}

// WriteTranscript writes a .jsonl transcript file into dir and returns its
// path
func WriteTranscript(t *testing.T, dir, name string, lines []string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write transcript %s: %v", path, err)
	}
	return path
}
