package export

import (
	"io"

	"github.com/iksnae/taskwatch/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports todos in YAML format
type YAMLExporter struct{}

// Export exports todos to YAML format
func (e *YAMLExporter) Export(todos []internal.Todo, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(todos)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
