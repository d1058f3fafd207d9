package sink

import (
	"context"
	"log/slog"

	"github.com/roach88/ease/internal/logger"
)

// Slog forwards entries to a structured logger. Debug entries log at
// slog.LevelDebug and error entries at slog.LevelError.
type Slog struct {
	Logger *slog.Logger
}

// NewSlog creates a sink forwarding to l, or to slog.Default() when l is nil.
func NewSlog(l *slog.Logger) *Slog {
	if l == nil {
		l = slog.Default()
	}
	return &Slog{Logger: l}
}

// Write implements logger.Sink.
func (s *Slog) Write(e logger.Entry) {
	level := slog.LevelDebug
	if e.Level == logger.LevelError {
		level = slog.LevelError
	}

	s.Logger.LogAttrs(context.Background(), level, e.Message,
		slog.String("file", e.Site.File),
		slog.Int("line", e.Site.Line),
		slog.String("function", e.Site.Function),
		slog.String("type", e.Site.Type),
		slog.String("checksum", e.Checksum),
		slog.String("request_id", e.RequestID),
		slog.Int64("seq", e.Seq),
	)
}
