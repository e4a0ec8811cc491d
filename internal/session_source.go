package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// sessionRecord is one entry from the session-listing endpoint
type sessionRecord struct {
	SessionKey string `json:"sessionKey"`
	Kind       string `json:"kind,omitempty"`
}

// sessionMessage is one entry from the session-history endpoint
type sessionMessage struct {
	MessageID string `json:"messageId"`
	Content   string `json:"content"`
}

// sessionHistory is the session-history response body
type sessionHistory struct {
	Messages []sessionMessage `json:"messages"`
}

// SessionAPISource polls a remote session API: list active sessions matching
// the configured kinds, then fetch the recent history of each. A per-session
// cursor holds the last message id already delivered; the cursor only moves
// forward, and a failed fetch leaves it untouched so no progress is lost.
type SessionAPISource struct {
	baseURL      string
	kinds        []string
	historyLimit int
	client       *http.Client

	lastSeen map[string]string // session key -> last delivered message id
}

// NewSessionAPISource creates a remote-session source. historyLimit bounds
// how many trailing messages are fetched per session per poll.
func NewSessionAPISource(baseURL string, kinds []string, historyLimit int, timeout time.Duration) *SessionAPISource {
	if historyLimit <= 0 {
		historyLimit = 20
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SessionAPISource{
		baseURL:      baseURL,
		kinds:        kinds,
		historyLimit: historyLimit,
		client:       &http.Client{Timeout: timeout},
		lastSeen:     make(map[string]string),
	}
}

// Name identifies the strategy
func (s *SessionAPISource) Name() string {
	return "sessions"
}

// Poll lists active sessions and emits, per changed session, the trailing
// messages not yet delivered, oldest first. Sessions whose history fetch
// fails are skipped for this poll; the listing call failing fails the poll.
func (s *SessionAPISource) Poll(ctx context.Context) ([]Message, error) {
	sessions, err := s.listSessions(ctx)
	if err != nil {
		return nil, &SourceError{Source: s.Name(), Op: "list", Err: err}
	}

	var messages []Message
	for _, session := range sessions {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if session.SessionKey == "" {
			continue
		}

		history, err := s.fetchHistory(ctx, session.SessionKey)
		if err != nil {
			LogWarn("skipping session %s: %v", session.SessionKey, err)
			continue
		}
		if len(history) == 0 {
			continue
		}

		newest := history[len(history)-1].MessageID
		cursor := s.lastSeen[session.SessionKey]
		if newest == cursor {
			continue // session unchanged since last poll
		}

		for _, m := range trailingSince(history, cursor) {
			messages = append(messages, Message{
				ID:         m.MessageID,
				SessionKey: session.SessionKey,
				Content:    m.Content,
			})
		}
		s.lastSeen[session.SessionKey] = newest
	}

	return messages, nil
}

// trailingSince returns the messages after the cursor id, or the whole
// batch when the cursor is empty or has already scrolled out of the window.
func trailingSince(history []sessionMessage, cursor string) []sessionMessage {
	if cursor == "" {
		return history
	}
	for i, m := range history {
		if m.MessageID == cursor {
			return history[i+1:]
		}
	}
	return history
}

func (s *SessionAPISource) listSessions(ctx context.Context) ([]sessionRecord, error) {
	q := url.Values{}
	for _, kind := range s.kinds {
		q.Add("kind", kind)
	}
	q.Set("limit", "50")

	var sessions []sessionRecord
	if err := s.getJSON(ctx, s.baseURL+"/sessions?"+q.Encode(), &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *SessionAPISource) fetchHistory(ctx context.Context, sessionKey string) ([]sessionMessage, error) {
	endpoint := fmt.Sprintf("%s/sessions/%s/messages?limit=%d",
		s.baseURL, url.PathEscape(sessionKey), s.historyLimit)

	var history sessionHistory
	if err := s.getJSON(ctx, endpoint, &history); err != nil {
		return nil, err
	}
	return history.Messages, nil
}

func (s *SessionAPISource) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", endpoint, err)
	}
	return nil
}
