package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/taskwatch/internal"
	"github.com/iksnae/taskwatch/internal/export"
	"github.com/spf13/cobra"
)

var (
	listFormat string
	listOutput string
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	highStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	mediumStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	lowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	sourceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135")).
			Italic(true)
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List todos from the task store",
	Long: `List all todos currently in the task store.

By default prints a styled table. Pass --format to export instead:
  taskwatch list --format md             # Markdown checklist to stdout
  taskwatch list --format yaml -o t.yaml # YAML to a file`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		client := internal.NewStoreClient(cfg.APIURL, cfg.RequestTimeout())
		todos, err := client.ListTodos(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch todos: %w", err)
		}

		if listFormat != "" {
			return exportTodos(todos, listFormat, listOutput)
		}

		if len(todos) == 0 {
			fmt.Println("No todos found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			headerStyle.Render("ID"),
			headerStyle.Render("PRIORITY"),
			headerStyle.Render("STATUS"),
			headerStyle.Render("TEXT"),
			headerStyle.Render("SOURCE"))

		for _, todo := range todos {
			status := "open"
			if todo.Done {
				status = doneStyle.Render("done")
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				idStyle.Render(todo.ID),
				renderPriority(todo.Priority),
				status,
				todo.Text,
				sourceStyle.Render(todo.Source))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Printf("\n%d todo(s)\n", len(todos))
		return nil
	},
}

func renderPriority(p internal.Priority) string {
	switch p {
	case internal.PriorityHigh:
		return highStyle.Render(string(p))
	case internal.PriorityLow:
		return lowStyle.Render(string(p))
	default:
		return mediumStyle.Render(string(p))
	}
}

// exportTodos writes todos in the requested format to the output path or
// stdout when no path is given
func exportTodos(todos []internal.Todo, format, output string) error {
	exporter, err := export.NewExporter(format)
	if err != nil {
		return err
	}

	out := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := exporter.Export(todos, out); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	if output != "" {
		internal.LogInfo("exported %d todo(s) to %s", len(todos), output)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listFormat, "format", "", "Export format: json, jsonl, yaml, md")
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "", "Output file (default: stdout)")
}
