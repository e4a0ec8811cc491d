package server

import (
	"errors"
	"time"

	"github.com/iksnae/taskwatch/internal"
)

// ErrNotFound is returned by stores when no todo has the requested id
var ErrNotFound = errors.New("todo not found")

// Todo is a stored task record
type Todo struct {
	ID        string                 `json:"id"`
	Text      string                 `json:"text"`
	Priority  internal.Priority      `json:"priority"`
	Source    string                 `json:"source,omitempty"`
	Tag       string                 `json:"tag,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Done      bool                   `json:"done"`
	CreatedAt time.Time              `json:"created_at"`
}

// TodoStore is the interchangeable storage backend behind the web service
type TodoStore interface {
	List() ([]Todo, error)
	Get(id string) (Todo, error)
	Create(todo Todo) (Todo, error)
	Update(todo Todo) (Todo, error)
	Delete(id string) error
	Close() error
}
