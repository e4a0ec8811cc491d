// Package testutil provides shared test helpers: a fake task-store server
// honoring the {success, data, error} envelope and transcript file fixtures.
// It deliberately avoids importing the internal package so tests inside
// internal can use it too.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// FakeTaskStore is an in-memory task store served over httptest. It records
// every create payload it accepts so tests can assert on dispatches.
type FakeTaskStore struct {
	mu      sync.Mutex
	created []map[string]interface{}
	nextID  int

	// FailCreates makes POST /todos return success:false with status 500
	FailCreates bool
	// Unavailable makes every endpoint return 503 with no envelope
	Unavailable bool

	server *httptest.Server
}

// NewFakeTaskStore starts a fake store server. Callers must Close it.
func NewFakeTaskStore(t *testing.T) *FakeTaskStore {
	t.Helper()

	s := &FakeTaskStore{}
	mux := http.NewServeMux()
	mux.HandleFunc("/todos", s.handleTodos)
	s.server = httptest.NewServer(mux)
	t.Cleanup(s.server.Close)
	return s
}

// URL returns the store's base URL
func (s *FakeTaskStore) URL() string {
	return s.server.URL
}

// Created returns a copy of every accepted create payload, in order
func (s *FakeTaskStore) Created() []map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]interface{}, len(s.created))
	copy(out, s.created)
	return out
}

func (s *FakeTaskStore) handleTodos(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Unavailable {
		http.Error(w, "store down", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	switch r.Method {
	case http.MethodGet:
		todos := make([]map[string]interface{}, len(s.created))
		copy(todos, s.created)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    todos,
		})
	case http.MethodPost:
		if s.FailCreates {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"error":   "create failed",
			})
			return
		}

		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"error":   "invalid body",
			})
			return
		}

		s.nextID++
		payload["id"] = fmt.Sprintf("todo-%d", s.nextID)
		s.created = append(s.created, payload)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    payload,
		})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "method not allowed",
		})
	}
}
