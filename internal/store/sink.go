package store

import (
	"context"
	"log/slog"

	"github.com/roach88/ease/internal/logger"
)

// Sink adapts the store to logger.Sink. Append failures are reported
// through slog and otherwise dropped; a log write never fails the caller.
func (s *Store) Sink() logger.Sink {
	return logger.SinkFunc(func(e logger.Entry) {
		if err := s.Append(context.Background(), e); err != nil {
			slog.Error("archive log entry", "error", err, "request_id", e.RequestID, "seq", e.Seq)
		}
	})
}
