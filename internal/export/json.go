package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/taskwatch/internal"
)

// JSONExporter exports todos in JSON format (pretty-printed)
type JSONExporter struct{}

// Export exports todos to JSON format
func (e *JSONExporter) Export(todos []internal.Todo, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(todos)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
