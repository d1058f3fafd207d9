package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/ease/internal/env"
	"github.com/roach88/ease/internal/logger"
)

// LogOptions holds flags for the log command.
type LogOptions struct {
	*RootOptions
	Repeat     int
	StackIndex int
	SkipOnAjax bool
	Ajax       bool
	Debug      bool
	Requests   int
}

// LogResult summarizes a log run.
type LogResult struct {
	RequestIDs []string `json:"request_ids"`
	Attempts   int      `json:"attempts"`
}

// NewLogCommand creates the log command with debug and error subcommands.
func NewLogCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LogOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Write a message through the deduplicating logger",
		Long: `Write a message through the deduplicating logger configured by --config.

A message is written once per request; repeats are dropped unless CI is
set. Debug messages are written only in debug mode (EASE_DEBUG, the config
file, or --debug). Entries go to stderr or the configured sink.

Examples:
  ease log debug 'cache miss' --debug --repeat 3     # written once
  CI=1 ease log debug 'cache miss' --debug --repeat 3 # written three times
  ease log error 'bad state' --requests 2            # once per request`,
	}

	cmd.PersistentFlags().IntVar(&opts.Repeat, "repeat", 1, "write the message this many times per request")
	cmd.PersistentFlags().IntVar(&opts.Requests, "requests", 1, "number of requests to simulate")
	cmd.PersistentFlags().IntVar(&opts.StackIndex, "stack-index", 0, "stack frame to attribute the entry to")
	cmd.PersistentFlags().BoolVar(&opts.SkipOnAjax, "skip-on-ajax", false, "drop the message during AJAX requests")
	cmd.PersistentFlags().BoolVar(&opts.Ajax, "ajax", false, "treat the requests as AJAX requests")
	cmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "enable debug mode")

	cmd.AddCommand(newLogLevelCommand(opts, logger.LevelDebug))
	cmd.AddCommand(newLogLevelCommand(opts, logger.LevelError))

	return cmd
}

func newLogLevelCommand(opts *LogOptions, level logger.Level) *cobra.Command {
	return &cobra.Command{
		Use:           string(level) + " <message>",
		Short:         "Write a " + string(level) + " message",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(opts, level, args[0], cmd)
		},
	}
}

func runLog(opts *LogOptions, level logger.Level, message string, cmd *cobra.Command) error {
	if opts.Repeat < 0 || opts.Requests < 1 {
		return NewExitError(ExitCommandError, "--repeat must be >= 0 and --requests >= 1")
	}

	var envOpts []env.Option
	if cmd.Flags().Changed("ajax") {
		ajax := opts.Ajax
		envOpts = append(envOpts, env.WithAjax(func() bool { return ajax }))
	}
	environment := newEnvironment(opts.Config, envOpts...)
	if opts.Debug {
		environment.Set(env.KeyDebug, true)
	}

	l, closeLog, err := newLogger(opts.Config, environment, cmd.ErrOrStderr())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to create logger", err)
	}
	defer closeQuietly(closeLog)

	callOpts := []logger.CallOption{logger.WithStackIndex(opts.StackIndex)}
	if opts.SkipOnAjax {
		callOpts = append(callOpts, logger.SkipOnAjax())
	}

	result := LogResult{RequestIDs: []string{l.RequestID()}}
	for r := 0; r < opts.Requests; r++ {
		if r > 0 {
			result.RequestIDs = append(result.RequestIDs, l.BeginRequest())
		}
		for i := 0; i < opts.Repeat; i++ {
			result.Attempts++
			if level == logger.LevelError {
				l.Error(message, callOpts...)
			} else {
				l.Debug(message, callOpts...)
			}
		}
	}

	f := formatter(opts.RootOptions, cmd)
	f.VerboseLog("requests=%v attempts=%d", result.RequestIDs, result.Attempts)
	if opts.Format == "json" {
		return f.Success(result)
	}
	return nil
}
