package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iksnae/taskwatch/internal"
)

func TestMarkdownExporter_Export(t *testing.T) {
	tests := []struct {
		name    string
		todos   []internal.Todo
		want    []string
		notWant []string
	}{
		{
			name: "grouped by priority",
			todos: []internal.Todo{
				{ID: "a", Text: "call the bank", Priority: internal.PriorityMedium},
				{ID: "b", Text: "fix the outage", Priority: internal.PriorityHigh},
				{ID: "c", Text: "clean the garage", Priority: internal.PriorityLow},
			},
			want: []string{
				"# Tasks",
				"**Total:** 3",
				"## High",
				"- [ ] fix the outage",
				"## Medium",
				"- [ ] call the bank",
				"## Low",
				"- [ ] clean the garage",
			},
		},
		{
			name: "done todo is checked",
			todos: []internal.Todo{
				{ID: "a", Text: "submit the expense report", Priority: internal.PriorityMedium, Done: true},
			},
			want: []string{
				"- [x] submit the expense report",
			},
		},
		{
			name: "tag and source annotations",
			todos: []internal.Todo{
				{ID: "a", Text: "rotate the keys", Priority: internal.PriorityHigh, Tag: "ops", Source: "taskwatch:transcripts"},
			},
			want: []string{
				"- [ ] rotate the keys `#ops` _(taskwatch:transcripts)_",
			},
		},
		{
			name:  "empty list skips priority sections",
			todos: nil,
			want: []string{
				"# Tasks",
				"**Total:** 0",
			},
			notWant: []string{
				"## High",
				"## Medium",
				"## Low",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			exporter := &MarkdownExporter{}

			if err := exporter.Export(tt.todos, &buf); err != nil {
				t.Fatalf("MarkdownExporter.Export() error = %v", err)
			}

			output := buf.String()
			for _, wantStr := range tt.want {
				if !strings.Contains(output, wantStr) {
					t.Errorf("Output should contain %q, got:\n%s", wantStr, output)
				}
			}
			for _, notWantStr := range tt.notWant {
				if strings.Contains(output, notWantStr) {
					t.Errorf("Output should not contain %q, got:\n%s", notWantStr, output)
				}
			}
		})
	}
}

func TestMarkdownExporter_Extension(t *testing.T) {
	exporter := &MarkdownExporter{}
	if got := exporter.Extension(); got != "md" {
		t.Errorf("MarkdownExporter.Extension() = %v, want md", got)
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"high", "High"},
		{"medium", "Medium"},
		{"", ""},
		{"x", "X"},
	}

	for _, tt := range tests {
		if got := titleCase(tt.input); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
