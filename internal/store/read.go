package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/ease/internal/logger"
)

// Entries returns archived entries for a request ordered by seq.
// An empty requestID returns every entry in insertion order.
// Returns an empty slice (not nil) when nothing matches.
func (s *Store) Entries(ctx context.Context, requestID string) ([]logger.Entry, error) {
	const cols = `seq, request_id, level, checksum, file, line, function, type, message`

	var (
		rows *sql.Rows
		err  error
	)
	if requestID == "" {
		rows, err = s.db.QueryContext(ctx, `SELECT `+cols+` FROM log_entries ORDER BY id ASC`)
	} else {
		rows, err = s.db.QueryContext(ctx, `
			SELECT `+cols+` FROM log_entries
			WHERE request_id = ?
			ORDER BY seq ASC, id ASC
		`, requestID)
	}
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	entries := []logger.Entry{}
	for rows.Next() {
		var (
			e     logger.Entry
			level string
		)
		if err := rows.Scan(
			&e.Seq,
			&e.RequestID,
			&level,
			&e.Checksum,
			&e.Site.File,
			&e.Site.Line,
			&e.Site.Function,
			&e.Site.Type,
			&e.Message,
		); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.Level = logger.Level(level)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

// Checksums returns the distinct checksums archived for a request,
// in order of first appearance.
func (s *Store) Checksums(ctx context.Context, requestID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT checksum FROM log_entries
		WHERE request_id = ?
		GROUP BY checksum
		ORDER BY MIN(seq) ASC
	`, requestID)
	if err != nil {
		return nil, fmt.Errorf("query checksums: %w", err)
	}
	defer rows.Close()

	sums := []string{}
	for rows.Next() {
		var sum string
		if err := rows.Scan(&sum); err != nil {
			return nil, fmt.Errorf("scan checksum: %w", err)
		}
		sums = append(sums, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checksums: %w", err)
	}
	return sums, nil
}

// RequestIDs returns each archived request ID once, oldest first.
func (s *Store) RequestIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT request_id FROM log_entries
		GROUP BY request_id
		ORDER BY MIN(id) ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query request ids: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan request id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate request ids: %w", err)
	}
	return ids, nil
}
