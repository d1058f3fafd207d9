package store

import (
	"context"
	"fmt"

	"github.com/roach88/ease/internal/logger"
)

// Append archives one entry.
// Idempotent: an entry with the same (request_id, seq) is ignored.
func (s *Store) Append(ctx context.Context, e logger.Entry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO log_entries (request_id, seq, level, checksum, file, line, function, type, message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(request_id, seq) DO NOTHING
	`,
		e.RequestID,
		e.Seq,
		string(e.Level),
		e.Checksum,
		e.Site.File,
		e.Site.Line,
		e.Site.Function,
		e.Site.Type,
		e.Message,
	)
	if err != nil {
		return fmt.Errorf("append entry %s/%d: %w", e.RequestID, e.Seq, err)
	}
	return nil
}
