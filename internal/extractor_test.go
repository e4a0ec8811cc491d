package internal

import (
	"strings"
	"testing"
)

func TestExtractTask(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantPhrase string
		wantFound  bool
	}{
		{
			name:      "no task in plain statement",
			text:      "the weather is nice today",
			wantFound: false,
		},
		{
			name:      "empty text",
			text:      "",
			wantFound: false,
		},
		{
			name:      "whitespace only",
			text:      "   \n\t  ",
			wantFound: false,
		},
		{
			name:       "remember to phrasing",
			text:       "Oh and remember to buy milk.",
			wantPhrase: "buy milk",
			wantFound:  true,
		},
		{
			name:       "remember to strips trailing punctuation",
			text:       "remember to water the plants!",
			wantPhrase: "water the plants",
			wantFound:  true,
		},
		{
			name:       "explicit todo label",
			text:       "todo: rotate the API keys",
			wantPhrase: "rotate the API keys",
			wantFound:  true,
		},
		{
			name:       "explicit task label mid-message",
			text:       "Before I forget, task: update the changelog",
			wantPhrase: "update the changelog",
			wantFound:  true,
		},
		{
			name:       "imperative add a task",
			text:       "Can you add a task to review the pull request?",
			wantPhrase: "review the pull request",
			wantFound:  true,
		},
		{
			name:       "imperative create a todo",
			text:       "please create a todo for the quarterly report",
			wantPhrase: "the quarterly report",
			wantFound:  true,
		},
		{
			name:       "first person need to",
			text:       "I need to call the bank",
			wantPhrase: "call the bank",
			wantFound:  true,
		},
		{
			name:       "first person need to stops at sentence end",
			text:       "I need to call the bank. The weather is nice.",
			wantPhrase: "call the bank",
			wantFound:  true,
		},
		{
			name:       "first person should",
			text:       "I should schedule the dentist appointment",
			wantPhrase: "schedule the dentist appointment",
			wantFound:  true,
		},
		{
			name:       "dont forget phrasing",
			text:       "don't forget to submit the expense report",
			wantPhrase: "submit the expense report",
			wantFound:  true,
		},
		{
			name:       "numbered list item",
			text:       "Here's the plan:\n1. migrate the database\nthen we're done",
			wantPhrase: "migrate the database",
			wantFound:  true,
		},
		{
			name:       "label wins over intention phrasing",
			text:       "I need to relax. todo: fix the flaky test",
			wantPhrase: "fix the flaky test",
			wantFound:  true,
		},
		{
			name:      "phrase below minimum length rejected",
			text:      "I need to go",
			wantFound: false,
		},
		{
			name:      "phrase above maximum length rejected",
			text:      "remember to " + strings.Repeat("reorganize the warehouse ", 20),
			wantFound: false,
		},
		{
			name:       "whitespace collapsed in phrase",
			text:       "remember to   clean   the\tgarage",
			wantPhrase: "clean the garage",
			wantFound:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phrase, found := ExtractTask(tt.text)

			if found != tt.wantFound {
				t.Errorf("ExtractTask(%q) found = %v, want %v", tt.text, found, tt.wantFound)
			}
			if found && phrase != tt.wantPhrase {
				t.Errorf("ExtractTask(%q) = %q, want %q", tt.text, phrase, tt.wantPhrase)
			}
			if !found && phrase != "" {
				t.Errorf("ExtractTask(%q) returned phrase %q with found=false", tt.text, phrase)
			}
		})
	}
}

func TestNormalizePhrase(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{"trims and strips punctuation", "  buy milk.  ", "buy milk", true},
		{"strips stacked punctuation", "ship the release!!!", "ship the release", true},
		{"too short", "go", "", false},
		{"empty", "", "", false},
		{"too long", strings.Repeat("x", maxPhraseLen+1), "", false},
		{"exactly max length kept", strings.Repeat("x", maxPhraseLen), strings.Repeat("x", maxPhraseLen), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := normalizePhrase(tt.raw)
			if ok != tt.wantOK {
				t.Errorf("normalizePhrase(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("normalizePhrase(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
