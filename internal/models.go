package internal

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Priority is the urgency level assigned to an extracted task
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority parses a priority string, accepting any casing
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow, nil
	case "medium", "med":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	default:
		return "", fmt.Errorf("invalid priority: %q (expected low, medium, or high)", s)
	}
}

// Message is a single conversation message observed by a source.
// Immutable once observed.
type Message struct {
	ID         string `json:"id"`
	SessionKey string `json:"session_key"`
	Content    string `json:"content"`
}

// Key returns the canonical dedup identity for the message: the message id
// scoped by its session key, so ids from different sessions never collide.
func (m Message) Key() string {
	return m.SessionKey + "/" + m.ID
}

// ExtractedTask is the transient result of running a message through the
// extractor and classifier. It is handed to the store client and discarded.
type ExtractedTask struct {
	Text        string    `json:"text"`
	Priority    Priority  `json:"priority"`
	SessionKey  string    `json:"session_key"`
	MessageID   string    `json:"message_id"`
	ExtractedAt time.Time `json:"extracted_at"`
}

// TranscriptRecord is one newline-delimited JSON line from a transcript
// file. Different agent CLIs disagree on field names, so ids and content are
// accepted from several locations.
type TranscriptRecord struct {
	UUID      string          `json:"uuid,omitempty"`
	ID        string          `json:"id,omitempty"`
	SessionID string          `json:"sessionId,omitempty"`
	Type      string          `json:"type,omitempty"`
	Text      string          `json:"text,omitempty"`
	Content   json.RawMessage `json:"content,omitempty"`
	Message   *RecordMessage  `json:"message,omitempty"`
}

// RecordMessage is the nested message object used by Claude-style
// transcripts: {"message": {"role": ..., "content": ...}}.
type RecordMessage struct {
	Role    string          `json:"role,omitempty"`
	Content json.RawMessage `json:"content,omitempty"`
}

// contentBlock is one element of an array-style content field
type contentBlock struct {
	Type string `json:"type,omitempty"`
	Text string `json:"text,omitempty"`
}

// MessageID returns the record's message identifier, trying uuid then id
func (r *TranscriptRecord) MessageID() string {
	if r.UUID != "" {
		return r.UUID
	}
	return r.ID
}

// TextContent flattens the record's content into plain text. Content may be
// a bare string, an array of typed blocks, or a top-level text field; text
// blocks are joined with newlines and non-text blocks are ignored.
func (r *TranscriptRecord) TextContent() string {
	var raw json.RawMessage
	if r.Message != nil && len(r.Message.Content) > 0 {
		raw = r.Message.Content
	} else if len(r.Content) > 0 {
		raw = r.Content
	} else {
		return r.Text
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var blocks []contentBlock
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return r.Text
	}

	var parts []string
	for _, b := range blocks {
		if b.Type == "text" || b.Type == "" {
			if b.Text != "" {
				parts = append(parts, b.Text)
			}
		}
	}
	return strings.Join(parts, "\n")
}
