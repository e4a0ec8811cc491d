package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iksnae/taskwatch/internal"
	"github.com/iksnae/taskwatch/internal/server"
	"github.com/spf13/cobra"
)

var (
	serveAddr   string
	serveDBPath string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the task-list web service",
	Long: `Run the minimal todo API the sync agent dispatches into.

Endpoints:
  GET    /health        liveness probe
  GET    /todos         list all todos
  POST   /todos         create a todo {text, priority, source, tag?, metadata?}
  GET    /todos/{id}    fetch one todo
  PUT    /todos/{id}    update text/priority/tag/done/metadata
  DELETE /todos/{id}    remove a todo

All responses use the {success, data, error} envelope.

Storage is in-memory by default; pass --db to persist todos to a SQLite
database file instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var store server.TodoStore
		if serveDBPath != "" {
			sqliteStore, err := server.OpenSQLiteStore(serveDBPath)
			if err != nil {
				return fmt.Errorf("failed to open todo database: %w", err)
			}
			store = sqliteStore
			internal.LogInfo("using sqlite store at %s", serveDBPath)
		} else {
			store = server.NewMemoryStore()
			internal.LogInfo("using in-memory store (todos are lost on restart)")
		}
		defer store.Close()

		srv := &http.Server{
			Addr:              serveAddr,
			Handler:           server.NewHandler(store),
			ReadHeaderTimeout: 5 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			internal.LogInfo("todo API listening on %s", serveAddr)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
		case <-ctx.Done():
			internal.LogInfo("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":3000", "Listen address")
	serveCmd.Flags().StringVar(&serveDBPath, "db", "", "SQLite database file (default: in-memory)")
}
