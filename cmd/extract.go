package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/taskwatch/internal"
	"github.com/spf13/cobra"
)

var (
	extractFile string
	extractJSON bool
)

var (
	phraseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	noTaskStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true)
)

// extractedLine is the --json output shape
type extractedLine struct {
	MessageID string            `json:"message_id,omitempty"`
	Text      string            `json:"text"`
	Priority  internal.Priority `json:"priority"`
}

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract [text]",
	Short: "Run task extraction over text or a transcript file",
	Long: `One-shot extraction: run the same recognizer patterns and priority
classifier the agent uses, without touching the task store.

Input is, in order of precedence: the argument text, a transcript file
passed with -f (one JSON record per line), or stdin read as plain text.

Examples:
  taskwatch extract "remember to buy milk"
  taskwatch extract -f ~/.claude/projects/session.jsonl
  echo "I need to call the bank" | taskwatch extract`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if extractFile != "" {
			return extractFromTranscript(extractFile)
		}

		var text string
		if len(args) > 0 {
			text = strings.Join(args, " ")
		} else {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			text = string(data)
		}

		printExtraction("", text)
		return nil
	},
}

// extractFromTranscript scans one transcript file and reports every record
// that yields a task phrase
func extractFromTranscript(path string) error {
	messages, err := internal.ScanTranscriptFile(path)
	if err != nil {
		return err
	}

	found := 0
	for _, msg := range messages {
		if phrase, ok := internal.ExtractTask(msg.Content); ok {
			found++
			emit(extractedLine{
				MessageID: msg.ID,
				Text:      phrase,
				Priority:  internal.ClassifyPriority(phrase, msg.Content),
			})
		}
	}

	if !extractJSON {
		fmt.Printf("\n%d task(s) found in %d message(s)\n", found, len(messages))
	}
	return nil
}

func printExtraction(messageID, text string) {
	phrase, ok := internal.ExtractTask(text)
	if !ok {
		if extractJSON {
			fmt.Println("[]")
		} else {
			fmt.Println(noTaskStyle.Render("no task found"))
		}
		return
	}

	emit(extractedLine{
		MessageID: messageID,
		Text:      phrase,
		Priority:  internal.ClassifyPriority(phrase, text),
	})
}

func emit(line extractedLine) {
	if extractJSON {
		data, _ := json.Marshal(line)
		fmt.Println(string(data))
		return
	}
	fmt.Printf("%s %s\n", renderPriority(line.Priority), phraseStyle.Render(line.Text))
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&extractFile, "file", "f", "", "Transcript file (.jsonl) to scan")
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "Emit one JSON object per extracted task")
}
