package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iksnae/taskwatch/internal"
	"github.com/spf13/cobra"
)

var (
	watchInterval      int
	watchSource        string
	watchTranscriptDir string
	watchMaxHistory    int
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the sync agent",
	Long: `Run the transcript-monitoring agent until interrupted.

On a fixed interval the agent polls its message source, extracts task-like
statements from any messages it has not seen before, classifies their
urgency, and files them into the task store. Message ids are remembered in
a bounded in-memory cache, so each message is evaluated exactly once per
process lifetime; delivery is best-effort and a failed dispatch is logged
and dropped.

The agent exits immediately with a non-zero status if the task store cannot
be reached at startup. After that, source and store failures only cost the
current cycle; the next tick retries.

Sources:
  transcripts   scan a directory of .jsonl transcript files (default)
  sessions      poll a remote session API for active sessions`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if watchInterval > 0 {
			cfg.PollIntervalMS = watchInterval
		}
		if watchSource != "" {
			cfg.Source = watchSource
		}
		if watchTranscriptDir != "" {
			cfg.TranscriptDir = watchTranscriptDir
		}
		if watchMaxHistory > 0 {
			cfg.MaxHistory = watchMaxHistory
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		source, err := cfg.NewMessageSource()
		if err != nil {
			return err
		}

		store := internal.NewStoreClient(cfg.APIURL, cfg.RequestTimeout())
		cache := internal.NewSeenCache(cfg.MaxHistory, cfg.CacheWindowMultiple)
		loop := internal.NewSyncLoop(source, store, cache, cfg.PollInterval())

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := loop.Run(ctx); err != nil {
			return fmt.Errorf("agent failed to start: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().IntVar(&watchInterval, "interval", 0, "Poll interval in milliseconds")
	watchCmd.Flags().StringVar(&watchSource, "source", "", "Message source: transcripts or sessions")
	watchCmd.Flags().StringVar(&watchTranscriptDir, "transcripts", "", "Transcript directory to scan")
	watchCmd.Flags().IntVar(&watchMaxHistory, "max-history", 0, "Messages fetched per session per poll")
}
