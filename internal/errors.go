package internal

import "fmt"

// SourceError represents errors polling a message source
type SourceError struct {
	Source string // source name, e.g. "transcripts", "sessions"
	Op     string // "list", "open", "fetch"
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source error [%s] %s: %v", e.Source, e.Op, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// ParseError represents errors parsing a transcript record
type ParseError struct {
	Path string // file path or session key
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error %s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DispatchError represents errors delivering a task to the task store
type DispatchError struct {
	SessionKey string
	MessageID  string
	Err        error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch error [%s/%s]: %v", e.SessionKey, e.MessageID, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// StoreError represents an error response from the task store API
type StoreError struct {
	Status  int    // HTTP status, 0 if the request never completed
	Message string // error field from the response envelope, if any
}

func (e *StoreError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("task store error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("task store error (status %d)", e.Status)
}
