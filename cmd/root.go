package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/taskwatch/internal"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	apiURL     string
	version    string = "dev"
	commit     string = "unknown"
	date       string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "taskwatch",
	Short: "Watch assistant transcripts and file tasks into a todo list",
	Long: `taskwatch runs a companion agent alongside a conversational assistant.

It watches session transcripts, extracts actionable task statements from
free text, classifies their urgency, and pushes them into a task-list API
without re-adding tasks it has already seen. It also ships the minimal
task-list web service the agent talks to.

Features:
  • Continuous transcript monitoring with a fixed poll interval
  • Pattern-based task extraction ("remember to ...", "I need to ...", "todo: ...")
  • Urgency classification (high/medium/low)
  • Bounded in-memory dedup so each message is evaluated once
  • Two polling strategies: transcript directory scan or remote session API

Quick Start:
  taskwatch serve                   # Run the todo API
  taskwatch watch                   # Run the sync agent
  taskwatch list                    # Show the current todo list
  taskwatch extract -f chat.jsonl   # One-shot extraction from a transcript

For detailed usage, see: https://github.com/iksnae/taskwatch`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Task store base URL (overrides config and TASKWATCH_API_URL)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// loadConfig resolves the effective configuration for a command run,
// applying the persistent --api-url flag on top of file and environment.
func loadConfig() (internal.Config, error) {
	cfg, err := internal.LoadConfig(configPath)
	if err != nil {
		return cfg, err
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}
	// --verbose wins over the configured log_level
	if !verbose {
		cfg.ApplyLogLevel()
	}
	return cfg, nil
}
