// Package sink provides logger.Sink implementations beyond the plain
// writer sink: a terminal console, a log/slog bridge and a fan-out.
// The SQLite archive sink lives in the store package.
package sink
