// Package server implements the minimal task-list web service the sync
// agent dispatches into. Handlers are stateless request/response plumbing
// over an interchangeable TodoStore backend; every response uses the
// {success, data, error} envelope the agent's client expects.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/iksnae/taskwatch/internal"
)

// envelope is the uniform response wrapper
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Server serves the todo API over a TodoStore
type Server struct {
	store TodoStore
}

// NewHandler builds the HTTP handler for the todo API
func NewHandler(store TodoStore) http.Handler {
	s := &Server{store: store}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/todos", s.handleTodos)
	mux.HandleFunc("/todos/", s.handleTodoByID)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleTodos routes GET (list) and POST (create) on /todos
func (s *Server) handleTodos(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listTodos(w, r)
	case http.MethodPost:
		s.createTodo(w, r)
	default:
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleTodoByID routes GET, PUT, DELETE on /todos/{id}
func (s *Server) handleTodoByID(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Path[len("/todos/"):]
	if id == "" {
		respondError(w, http.StatusBadRequest, "missing todo id")
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.getTodo(w, id)
	case http.MethodPut:
		s.updateTodo(w, r, id)
	case http.MethodDelete:
		s.deleteTodo(w, id)
	default:
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) listTodos(w http.ResponseWriter, _ *http.Request) {
	todos, err := s.store.List()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if todos == nil {
		todos = []Todo{}
	}
	respond(w, http.StatusOK, todos)
}

// createTodoRequest is the POST /todos body
type createTodoRequest struct {
	Text     string                 `json:"text"`
	Priority string                 `json:"priority,omitempty"`
	Source   string                 `json:"source,omitempty"`
	Tag      string                 `json:"tag,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

func (s *Server) createTodo(w http.ResponseWriter, r *http.Request) {
	var req createTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if req.Text == "" {
		respondError(w, http.StatusBadRequest, "text is required")
		return
	}

	priority := internal.PriorityMedium
	if req.Priority != "" {
		parsed, err := internal.ParsePriority(req.Priority)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		priority = parsed
	}

	todo, err := s.store.Create(Todo{
		Text:     req.Text,
		Priority: priority,
		Source:   req.Source,
		Tag:      req.Tag,
		Metadata: req.Metadata,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respond(w, http.StatusCreated, todo)
}

func (s *Server) getTodo(w http.ResponseWriter, id string) {
	todo, err := s.store.Get(id)
	if err == ErrNotFound {
		respondError(w, http.StatusNotFound, "todo not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respond(w, http.StatusOK, todo)
}

// updateTodoRequest is the PUT /todos/{id} body; nil fields keep their
// current value
type updateTodoRequest struct {
	Text     *string                `json:"text,omitempty"`
	Priority *string                `json:"priority,omitempty"`
	Tag      *string                `json:"tag,omitempty"`
	Done     *bool                  `json:"done,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

func (s *Server) updateTodo(w http.ResponseWriter, r *http.Request, id string) {
	todo, err := s.store.Get(id)
	if err == ErrNotFound {
		respondError(w, http.StatusNotFound, "todo not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var req updateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	if req.Text != nil {
		if *req.Text == "" {
			respondError(w, http.StatusBadRequest, "text must not be empty")
			return
		}
		todo.Text = *req.Text
	}
	if req.Priority != nil {
		parsed, err := internal.ParsePriority(*req.Priority)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		todo.Priority = parsed
	}
	if req.Tag != nil {
		todo.Tag = *req.Tag
	}
	if req.Done != nil {
		todo.Done = *req.Done
	}
	if req.Metadata != nil {
		todo.Metadata = req.Metadata
	}

	updated, err := s.store.Update(todo)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respond(w, http.StatusOK, updated)
}

func (s *Server) deleteTodo(w http.ResponseWriter, id string) {
	err := s.store.Delete(id)
	if err == ErrNotFound {
		respondError(w, http.StatusNotFound, "todo not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respond(w, http.StatusOK, map[string]string{"id": id})
}

func respond(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Success: true, Data: data}); err != nil {
		internal.LogWarn("failed to write response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Success: false, Error: message}); err != nil {
		internal.LogWarn("failed to write error response: %v", err)
	}
}
