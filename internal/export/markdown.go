package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/taskwatch/internal"
)

// MarkdownExporter exports todos as a Markdown checklist grouped by priority
type MarkdownExporter struct{}

// Export exports todos to Markdown format
func (e *MarkdownExporter) Export(todos []internal.Todo, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# Tasks\n\n")
	_, _ = fmt.Fprintf(w, "**Total:** %d\n\n", len(todos))

	for _, priority := range []internal.Priority{internal.PriorityHigh, internal.PriorityMedium, internal.PriorityLow} {
		group := filterByPriority(todos, priority)
		if len(group) == 0 {
			continue
		}

		_, _ = fmt.Fprintf(w, "## %s\n\n", titleCase(string(priority)))
		for _, todo := range group {
			check := " "
			if todo.Done {
				check = "x"
			}

			line := fmt.Sprintf("- [%s] %s", check, todo.Text)
			if todo.Tag != "" {
				line += fmt.Sprintf(" `#%s`", todo.Tag)
			}
			if todo.Source != "" {
				line += fmt.Sprintf(" _(%s)_", todo.Source)
			}
			_, _ = fmt.Fprintln(w, line)
		}
		_, _ = fmt.Fprintln(w)
	}

	return nil
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func filterByPriority(todos []internal.Todo, priority internal.Priority) []internal.Todo {
	var out []internal.Todo
	for _, todo := range todos {
		if todo.Priority == priority {
			out = append(out, todo)
		}
	}
	return out
}
