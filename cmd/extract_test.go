package cmd

import (
	"bytes"
	"testing"

	"github.com/iksnae/taskwatch/testutil"
)

func TestExtractCommand_ArgumentText(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "task phrase",
			args: []string{"extract", "remember to buy milk"},
		},
		{
			name: "no task",
			args: []string{"extract", "the weather is nice today"},
		},
		{
			name: "json output",
			args: []string{"extract", "--json", "urgent: fix the build!!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd.SetArgs(tt.args)
			rootCmd.SetOut(&bytes.Buffer{})
			rootCmd.SetErr(&bytes.Buffer{})

			if err := rootCmd.Execute(); err != nil {
				t.Errorf("extract returned error: %v", err)
			}
		})
	}
}

func TestExtractCommand_FromTranscript(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteTranscript(t, dir, "session.jsonl", []string{
		testutil.TranscriptLine(t, "m1", "session-a", "user", "remember to buy milk"),
		testutil.TranscriptLine(t, "m2", "session-a", "user", "just chatting"),
	})

	rootCmd.SetArgs([]string{"extract", "-f", path})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	if err := rootCmd.Execute(); err != nil {
		t.Errorf("extract -f returned error: %v", err)
	}
}

func TestExtractCommand_MissingFile(t *testing.T) {
	rootCmd.SetArgs([]string{"extract", "-f", "/no/such/transcript.jsonl"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	if err := rootCmd.Execute(); err == nil {
		t.Error("extract -f with missing file should return error")
	}
}
