package internal

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Scanner line buffer cap; transcript lines carrying tool output can be
// large, but anything past this is not conversational text.
const maxRecordBytes = 1024 * 1024

// TranscriptSource scans a directory of newline-delimited JSON transcript
// files. Every poll rescans the whole directory; the seen cache, not a file
// offset, keeps messages from being processed twice. That keeps the source
// stateless and immune to files being rewritten or rotated between polls.
type TranscriptSource struct {
	dir string
}

// NewTranscriptSource creates a source over the given transcript directory
func NewTranscriptSource(dir string) *TranscriptSource {
	return &TranscriptSource{dir: dir}
}

// Name identifies the strategy
func (s *TranscriptSource) Name() string {
	return "transcripts"
}

// Poll reads every .jsonl file in the directory and returns one Message per
// parseable record that carries an id and text content. Files or lines that
// cannot be read are skipped with a log line; only a missing or unreadable
// directory is a poll-level error.
func (s *TranscriptSource) Poll(ctx context.Context) ([]Message, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, &SourceError{Source: s.Name(), Op: "list", Err: err}
	}

	var messages []Message
	for _, entry := range entries {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".jsonl") {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		fileMessages, err := ScanTranscriptFile(path)
		if err != nil {
			LogWarn("skipping transcript %s: %v", path, err)
			continue
		}
		messages = append(messages, fileMessages...)
	}

	return messages, nil
}

// ScanTranscriptFile parses one transcript file line by line. Malformed
// lines are skipped; record order within the file is preserved.
func ScanTranscriptFile(path string) ([]Message, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Source: SourceTranscripts, Op: "open", Err: err}
	}
	defer f.Close()

	// Session key falls back to the file name stem when records carry no
	// session id of their own.
	fileKey := strings.TrimSuffix(filepath.Base(path), ".jsonl")

	var messages []Message
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var record TranscriptRecord
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			LogDebug("%v", &ParseError{Path: path, Line: lineNo, Err: err})
			continue
		}

		id := record.MessageID()
		content := record.TextContent()
		if id == "" || content == "" {
			continue
		}

		sessionKey := record.SessionID
		if sessionKey == "" {
			sessionKey = fileKey
		}

		messages = append(messages, Message{
			ID:         id,
			SessionKey: sessionKey,
			Content:    content,
		})
	}

	// A scan error (typically a line past maxRecordBytes) ends the file
	// early. The records parsed before it are still delivered; losing the
	// remainder of one file must not cost the rest of the poll.
	if err := scanner.Err(); err != nil {
		LogWarn("%v", &ParseError{Path: path, Line: lineNo + 1, Err: err})
	}

	return messages, nil
}
