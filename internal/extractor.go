package internal

import (
	"regexp"
	"strings"
)

// Phrase length bounds applied after normalization. Anything shorter is a
// spurious match ("it", "go"); anything longer is a runaway multi-sentence
// capture rather than a task.
const (
	minPhraseLen = 4
	maxPhraseLen = 200
)

// recognizer pairs a name (for debug logging) with its pattern. The pattern
// must have exactly one capture group holding the candidate phrase.
type recognizer struct {
	name    string
	pattern *regexp.Regexp
}

// taskRecognizers is evaluated in order; the first match wins. Ordered from
// the most explicit syntactic markers down to general intention phrasing.
var taskRecognizers = []recognizer{
	{"label", regexp.MustCompile(`(?im)(?:^|\s)(?:todo|task)\s*:\s*([^\n]+)`)},
	{"imperative", regexp.MustCompile(`(?i)\b(?:add|create|make)\s+a\s+(?:task|todo)(?:\s+item)?\s+(?:to|for)\s+([^.!?\n]+)`)},
	{"numbered-item", regexp.MustCompile(`(?m)^\s*\d+[.)]\s+([^\n]+)$`)},
	{"remember", regexp.MustCompile(`(?i)\bremember\s+to\s+([^.!?\n]+)`)},
	{"dont-forget", regexp.MustCompile(`(?i)\bdon'?t\s+forget\s+to\s+([^.!?\n]+)`)},
	{"need-to", regexp.MustCompile(`(?i)\bI\s+(?:need|have|want)\s+to\s+([^.!?\n]+)`)},
	{"should", regexp.MustCompile(`(?i)\bI\s+(?:should|must)\s+([^.!?\n]+)`)},
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// ExtractTask scans a block of conversational text for a task-like
// statement. It returns the normalized task phrase and true on a match, or
// "" and false when no recognizer matches or the match fails normalization.
func ExtractTask(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}

	for _, r := range taskRecognizers {
		m := r.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		phrase, ok := normalizePhrase(m[1])
		if !ok {
			LogDebug("recognizer %s matched but phrase failed normalization: %q", r.name, m[1])
			continue
		}

		LogDebug("recognizer %s extracted phrase: %q", r.name, phrase)
		return phrase, true
	}

	return "", false
}

// normalizePhrase cleans a captured phrase: collapse whitespace, strip
// trailing sentence punctuation, and enforce the length bounds.
func normalizePhrase(raw string) (string, bool) {
	phrase := whitespaceRun.ReplaceAllString(strings.TrimSpace(raw), " ")
	phrase = strings.TrimRight(phrase, ".!?;:, ")

	if len(phrase) < minPhraseLen || len(phrase) > maxPhraseLen {
		return "", false
	}
	return phrase, true
}
