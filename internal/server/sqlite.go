package server

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/iksnae/taskwatch/internal"
	_ "modernc.org/sqlite"
)

const todosSchema = `
CREATE TABLE IF NOT EXISTS todos (
	id         TEXT PRIMARY KEY,
	text       TEXT NOT NULL,
	priority   TEXT NOT NULL DEFAULT 'medium',
	source     TEXT NOT NULL DEFAULT '',
	tag        TEXT NOT NULL DEFAULT '',
	metadata   TEXT NOT NULL DEFAULT '{}',
	done       INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);
`

// SQLiteStore is a TodoStore persisted to a SQLite database file
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (creating if needed) the database at path and
// ensures the schema exists
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if _, err := db.Exec(todosSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// List returns all todos ordered by creation time, oldest first
func (s *SQLiteStore) List() ([]Todo, error) {
	rows, err := s.db.Query(`SELECT id, text, priority, source, tag, metadata, done, created_at
		FROM todos ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var todos []Todo
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return todos, nil
}

// Get returns the todo with the given id
func (s *SQLiteStore) Get(id string) (Todo, error) {
	row := s.db.QueryRow(`SELECT id, text, priority, source, tag, metadata, done, created_at
		FROM todos WHERE id = ?`, id)

	todo, err := scanTodo(row)
	if err == sql.ErrNoRows {
		return Todo{}, ErrNotFound
	}
	return todo, err
}

// Create stores a new todo, assigning an id and creation time
func (s *SQLiteStore) Create(todo Todo) (Todo, error) {
	todo.ID = newID()
	todo.CreatedAt = time.Now().UTC()

	metadata, err := marshalMetadata(todo.Metadata)
	if err != nil {
		return Todo{}, err
	}

	_, err = s.db.Exec(`INSERT INTO todos (id, text, priority, source, tag, metadata, done, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		todo.ID, todo.Text, string(todo.Priority), todo.Source, todo.Tag,
		metadata, boolToInt(todo.Done), todo.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return Todo{}, fmt.Errorf("insert failed: %w", err)
	}
	return todo, nil
}

// Update replaces an existing todo
func (s *SQLiteStore) Update(todo Todo) (Todo, error) {
	existing, err := s.Get(todo.ID)
	if err != nil {
		return Todo{}, err
	}
	todo.CreatedAt = existing.CreatedAt

	metadata, err := marshalMetadata(todo.Metadata)
	if err != nil {
		return Todo{}, err
	}

	_, err = s.db.Exec(`UPDATE todos SET text = ?, priority = ?, source = ?, tag = ?, metadata = ?, done = ?
		WHERE id = ?`,
		todo.Text, string(todo.Priority), todo.Source, todo.Tag,
		metadata, boolToInt(todo.Done), todo.ID)
	if err != nil {
		return Todo{}, fmt.Errorf("update failed: %w", err)
	}
	return todo, nil
}

// Delete removes a todo by id
func (s *SQLiteStore) Delete(id string) error {
	result, err := s.db.Exec(`DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Close closes the underlying database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTodo(row rowScanner) (Todo, error) {
	var todo Todo
	var priority, metadata, createdAt string
	var done int

	err := row.Scan(&todo.ID, &todo.Text, &priority, &todo.Source, &todo.Tag, &metadata, &done, &createdAt)
	if err != nil {
		return Todo{}, err
	}

	todo.Priority = internal.Priority(priority)
	todo.Done = done != 0

	if metadata != "" && metadata != "{}" {
		if err := json.Unmarshal([]byte(metadata), &todo.Metadata); err != nil {
			return Todo{}, fmt.Errorf("failed to decode metadata for todo %s: %w", todo.ID, err)
		}
	}

	if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		todo.CreatedAt = ts
	}
	return todo, nil
}

func marshalMetadata(metadata map[string]interface{}) (string, error) {
	if len(metadata) == 0 {
		return "{}", nil
	}
	data, err := json.Marshal(metadata)
	if err != nil {
		return "", fmt.Errorf("failed to encode metadata: %w", err)
	}
	return string(data), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
