package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/ease/internal/logger"
	"github.com/roach88/ease/internal/store"
)

// LogsOptions holds flags for the logs command.
type LogsOptions struct {
	*RootOptions
	Database  string
	RequestID string
}

// NewLogsCommand creates the logs command.
func NewLogsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LogsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "List archived log entries",
		Long: `List log entries archived by the sqlite sink, ordered by sequence number.

Exit codes:
  0 - Entries listed (possibly none)
  2 - Command error (database not found, etc.)

Examples:
  ease logs --db ./ease.db
  ease logs --db ./ease.db --request 0192...
  ease logs --db ./ease.db --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogs(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite archive (defaults to the configured sink path)")
	cmd.Flags().StringVar(&opts.RequestID, "request", "", "only entries of this request")

	return cmd
}

func runLogs(opts *LogsOptions, cmd *cobra.Command) error {
	ctx := context.Background()

	db := opts.Database
	if db == "" {
		db = opts.Config.Sink.Path
	}
	if db == "" {
		return NewExitError(ExitCommandError, "no archive: pass --db or configure a sqlite sink")
	}
	if _, err := os.Stat(db); err != nil {
		return WrapExitError(ExitCommandError, "database not found", err)
	}

	st, err := store.Open(db)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	entries, err := st.Entries(ctx, opts.RequestID)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read entries", err)
	}

	if opts.Format == "json" {
		return formatter(opts.RootOptions, cmd).Success(entries)
	}
	return writeEntries(cmd, entries)
}

func writeEntries(cmd *cobra.Command, entries []logger.Entry) error {
	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No entries found.")
		return nil
	}
	request := ""
	for _, e := range entries {
		if e.RequestID != request {
			request = e.RequestID
			fmt.Fprintf(out, "== request %s\n", request)
		}
		fmt.Fprintf(out, "#%d %s%s", e.Seq, e.Level, e.String())
	}
	return nil
}
