package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/taskwatch/internal"
)

// JSONLExporter exports todos in JSONL format (one todo per line)
type JSONLExporter struct{}

// Export exports todos to JSONL format
func (e *JSONLExporter) Export(todos []internal.Todo, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, todo := range todos {
		if err := enc.Encode(todo); err != nil {
			return fmt.Errorf("failed to encode todo %s: %w", todo.ID, err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
