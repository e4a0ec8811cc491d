package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Todo is a task record as the task store returns it
type Todo struct {
	ID        string                 `json:"id"`
	Text      string                 `json:"text"`
	Priority  Priority               `json:"priority"`
	Source    string                 `json:"source,omitempty"`
	Tag       string                 `json:"tag,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Done      bool                   `json:"done"`
	CreatedAt time.Time              `json:"created_at,omitempty"`
}

// CreateTodoRequest is the POST /todos payload
type CreateTodoRequest struct {
	Text     string                 `json:"text"`
	Priority Priority               `json:"priority"`
	Source   string                 `json:"source"`
	Tag      string                 `json:"tag,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// storeEnvelope is the task store's uniform response wrapper
type storeEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// StoreClient is a thin HTTP wrapper around the task store API. Every call
// carries the client timeout so a stalled store cannot stall the sync loop.
type StoreClient struct {
	baseURL string
	client  *http.Client
}

// NewStoreClient creates a client for the task store at baseURL
func NewStoreClient(baseURL string, timeout time.Duration) *StoreClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &StoreClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the configured store endpoint
func (c *StoreClient) BaseURL() string {
	return c.baseURL
}

// Ping probes the store with GET /todos. Any non-2xx response or transport
// error means the store is unavailable.
func (c *StoreClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/todos", nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("task store unreachable: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StoreError{Status: resp.StatusCode}
	}
	return nil
}

// ListTodos fetches the full todo list
func (c *StoreClient) ListTodos(ctx context.Context) ([]Todo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/todos", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("task store unreachable: %w", err)
	}
	defer resp.Body.Close()

	envelope, err := decodeEnvelope(resp)
	if err != nil {
		return nil, err
	}

	var todos []Todo
	if len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, &todos); err != nil {
			return nil, fmt.Errorf("failed to decode todo list: %w", err)
		}
	}
	return todos, nil
}

// CreateTodo posts a new task and returns the created record
func (c *StoreClient) CreateTodo(ctx context.Context, create CreateTodoRequest) (*Todo, error) {
	body, err := json.Marshal(create)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/todos", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("task store unreachable: %w", err)
	}
	defer resp.Body.Close()

	envelope, err := decodeEnvelope(resp)
	if err != nil {
		return nil, err
	}

	var todo Todo
	if err := json.Unmarshal(envelope.Data, &todo); err != nil {
		return nil, fmt.Errorf("failed to decode created todo: %w", err)
	}
	return &todo, nil
}

// DispatchTask converts an extracted task into a create request and posts
// it, stamping provenance into source and metadata.
func (c *StoreClient) DispatchTask(ctx context.Context, task ExtractedTask, source string) (*Todo, error) {
	return c.CreateTodo(ctx, CreateTodoRequest{
		Text:     task.Text,
		Priority: task.Priority,
		Source:   source,
		Metadata: map[string]interface{}{
			"session_key":  task.SessionKey,
			"message_id":   task.MessageID,
			"extracted_at": task.ExtractedAt.UTC().Format(time.RFC3339),
		},
	})
}

// decodeEnvelope reads a response body and unwraps the success envelope.
// A non-2xx status or success:false both surface as a StoreError.
func decodeEnvelope(resp *http.Response) (*storeEnvelope, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var envelope storeEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, &StoreError{Status: resp.StatusCode}
		}
		return nil, fmt.Errorf("failed to decode store response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !envelope.Success {
		return nil, &StoreError{Status: resp.StatusCode, Message: envelope.Error}
	}
	return &envelope, nil
}
