package server

import (
	"crypto/rand"
	"encoding/hex"
	"sort"
	"sync"
	"time"
)

// MemoryStore is the default in-memory TodoStore. Contents are lost on
// restart; use the sqlite backend when persistence matters.
type MemoryStore struct {
	mu    sync.RWMutex
	todos map[string]Todo
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		todos: make(map[string]Todo),
	}
}

// List returns all todos ordered by creation time, oldest first
func (s *MemoryStore) List() ([]Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	todos := make([]Todo, 0, len(s.todos))
	for _, todo := range s.todos {
		todos = append(todos, todo)
	}
	sort.Slice(todos, func(i, j int) bool {
		if todos[i].CreatedAt.Equal(todos[j].CreatedAt) {
			return todos[i].ID < todos[j].ID
		}
		return todos[i].CreatedAt.Before(todos[j].CreatedAt)
	})
	return todos, nil
}

// Get returns the todo with the given id
func (s *MemoryStore) Get(id string) (Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	todo, ok := s.todos[id]
	if !ok {
		return Todo{}, ErrNotFound
	}
	return todo, nil
}

// Create stores a new todo, assigning an id and creation time
func (s *MemoryStore) Create(todo Todo) (Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo.ID = newID()
	todo.CreatedAt = time.Now().UTC()
	s.todos[todo.ID] = todo
	return todo, nil
}

// Update replaces an existing todo
func (s *MemoryStore) Update(todo Todo) (Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.todos[todo.ID]
	if !ok {
		return Todo{}, ErrNotFound
	}
	todo.CreatedAt = existing.CreatedAt
	s.todos[todo.ID] = todo
	return todo, nil
}

// Delete removes a todo by id
func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.todos[id]; !ok {
		return ErrNotFound
	}
	delete(s.todos, id)
	return nil
}

// Close is a no-op for the in-memory store
func (s *MemoryStore) Close() error {
	return nil
}

// newID returns a random 16-hex-char identifier
func newID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		return hex.EncodeToString([]byte(time.Now().String()))[:16]
	}
	return hex.EncodeToString(b)
}
