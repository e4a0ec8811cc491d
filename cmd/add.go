package cmd

import (
	"fmt"
	"strings"

	"github.com/iksnae/taskwatch/internal"
	"github.com/spf13/cobra"
)

var (
	addPriority string
	addTag      string
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a todo by hand",
	Long: `File a task into the task store through the same client the agent uses.

Priority defaults to whatever the classifier infers from the text; pass
--priority to override it.

Examples:
  taskwatch add "call the bank"
  taskwatch add "rotate the TLS certs asap"      # classified high
  taskwatch add --priority low "tidy the docs"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		text := strings.TrimSpace(strings.Join(args, " "))
		if text == "" {
			return fmt.Errorf("todo text must not be empty")
		}

		priority := internal.ClassifyPriority(text, "")
		if addPriority != "" {
			priority, err = internal.ParsePriority(addPriority)
			if err != nil {
				return err
			}
		}

		client := internal.NewStoreClient(cfg.APIURL, cfg.RequestTimeout())
		todo, err := client.CreateTodo(cmd.Context(), internal.CreateTodoRequest{
			Text:     text,
			Priority: priority,
			Source:   "taskwatch:cli",
			Tag:      addTag,
		})
		if err != nil {
			return fmt.Errorf("failed to create todo: %w", err)
		}

		fmt.Printf("Created todo %s [%s] %q\n", todo.ID, todo.Priority, todo.Text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "Priority: low, medium, or high (default: inferred)")
	addCmd.Flags().StringVarP(&addTag, "tag", "t", "", "Optional tag")
}
