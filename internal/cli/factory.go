package cli

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/roach88/ease/internal/config"
	"github.com/roach88/ease/internal/env"
	"github.com/roach88/ease/internal/logger"
	"github.com/roach88/ease/internal/paths"
	"github.com/roach88/ease/internal/sink"
	"github.com/roach88/ease/internal/store"
)

// newSink builds the sink named by cfg. Text goes to w. The returned close
// function releases any archive; it is never nil.
func newSink(cfg config.SinkConfig, w io.Writer) (logger.Sink, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Kind {
	case config.SinkStderr, "":
		return logger.NewWriterSink(w), noop, nil
	case config.SinkConsole:
		return sink.NewConsole(w, sink.ColorMode(cfg.Color), uint(cfg.Wrap)), noop, nil
	case config.SinkSlog:
		// Debug entries pass whatever level --verbose gives slog.Default.
		handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
		return sink.NewSlog(slog.New(handler)), noop, nil
	case config.SinkSQLite:
		dir := filepath.Dir(cfg.Path)
		ok, err := paths.EnsureDir(dir)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			return nil, nil, fmt.Errorf("archive directory %s is not a directory", dir)
		}
		st, err := store.Open(cfg.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open archive: %w", err)
		}
		slog.Debug("archiving log entries", "path", cfg.Path)
		return sink.Multi{logger.NewWriterSink(w), st.Sink()}, st.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown sink kind %q", cfg.Kind)
	}
}

// newLogger builds a logger from the loaded config. Environment variables
// still override the config's debug default at call time.
func newLogger(cfg config.Config, environment logger.Environment, w io.Writer) (*logger.Logger, func() error, error) {
	s, closeFn, err := newSink(cfg.Sink, w)
	if err != nil {
		return nil, nil, err
	}
	l := logger.New(environment, s,
		logger.WithLogOnAjax(cfg.LogOnAjax),
		logger.WithWarner(func(msg string) { slog.Warn(msg) }),
	)
	return l, closeFn, nil
}

// newEnvironment builds the viper-backed environment for cfg.
func newEnvironment(cfg config.Config, opts ...env.Option) *env.Viper {
	return env.New(env.Defaults{Debug: cfg.Debug}, opts...)
}

// closeQuietly runs closeFn and reports a failure, such as a failed WAL
// checkpoint on the archive, through slog.
func closeQuietly(closeFn func() error) {
	if err := closeFn(); err != nil {
		slog.Warn("close log sink", "error", err)
	}
}
