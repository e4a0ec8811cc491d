package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/taskwatch/internal"
	"github.com/spf13/cobra"
)

var (
	healthcheckVerbose bool
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check if taskwatch can reach its store and sources",
	Long: `Check the health of taskwatch by verifying:
  • Configuration resolves and validates
  • Task store connectivity (GET /todos)
  • Transcript directory presence and file count (transcripts source)
  • Known transcript path candidates

This command is useful for debugging setup issues, especially in CI/CD environments.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(sectionStyle.Render("🔍 taskwatch Health Check"))
		fmt.Println()

		// Step 1: Resolve configuration
		fmt.Println(infoStyle.Render("Step 1: Resolving configuration..."))
		cfg, err := loadConfig()
		if err != nil {
			fmt.Println(errorStyle.Render("❌ Configuration invalid:"), err)
			os.Exit(1)
		}
		fmt.Println(successStyle.Render("✅ Configuration OK"))
		if healthcheckVerbose {
			fmt.Printf("   Task store:     %s\n", cfg.APIURL)
			fmt.Printf("   Source:         %s\n", cfg.Source)
			fmt.Printf("   Poll interval:  %s\n", cfg.PollInterval())
			fmt.Printf("   Transcript dir: %s\n", cfg.TranscriptDir)
		}
		fmt.Println()

		// Step 2: Probe the task store
		fmt.Println(infoStyle.Render("Step 2: Probing task store..."))
		client := internal.NewStoreClient(cfg.APIURL, cfg.RequestTimeout())
		storeOK := true
		if err := client.Ping(cmd.Context()); err != nil {
			storeOK = false
			fmt.Println(warningStyle.Render("⚠️  Task store unreachable:"), err)
		} else {
			fmt.Println(successStyle.Render("✅ Task store reachable"))
		}
		fmt.Println()

		// Step 3: Check the message source
		fmt.Println(infoStyle.Render("Step 3: Checking message source..."))
		sourceOK := true
		switch cfg.Source {
		case internal.SourceTranscripts:
			info, err := os.Stat(cfg.TranscriptDir)
			if err != nil || !info.IsDir() {
				sourceOK = false
				fmt.Println(warningStyle.Render("⚠️  Transcript directory not found:"), cfg.TranscriptDir)
				fmt.Println(infoStyle.Render("   Known candidates:"))
				for _, dir := range internal.TranscriptDirCandidates() {
					marker := "✗"
					if s, err := os.Stat(dir); err == nil && s.IsDir() {
						marker = "✓"
					}
					fmt.Printf("     %s %s\n", marker, dir)
				}
			} else {
				count := internal.CountTranscripts(cfg.TranscriptDir)
				fmt.Println(successStyle.Render(fmt.Sprintf("✅ Transcript directory found (%d .jsonl file(s))", count)))
			}
		case internal.SourceSessions:
			fmt.Printf("   Session API: %s (kinds: %v, max history: %d)\n",
				cfg.SessionAPIURL, cfg.SessionKinds, cfg.MaxHistory)
			fmt.Println(infoStyle.Render("   ℹ️  Session API reachability is checked at watch startup"))
		}
		fmt.Println()

		// Summary
		fmt.Println(sectionStyle.Render("📊 Summary"))
		if storeOK && sourceOK {
			fmt.Println(successStyle.Render("✅ taskwatch is ready"))
			return nil
		}
		if !storeOK {
			fmt.Println(errorStyle.Render("❌ The agent will exit at startup until the task store is reachable"))
		}
		if !sourceOK {
			fmt.Println(warningStyle.Render("⚠️  The agent will start but every poll will fail until the source exists"))
		}
		os.Exit(1)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)

	healthcheckCmd.Flags().BoolVar(&healthcheckVerbose, "details", false, "Show resolved configuration values")
}
