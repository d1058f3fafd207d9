// Package store archives log entries in SQLite.
//
// The archive is append-only. Each entry is keyed by its request ID and
// the seq stamped by the logger's clock, so writing the same entry twice
// is a no-op. Queries order by seq, never by wall time.
//
// The archive records what was written; it does not feed deduplication.
// A new process starts with an empty message history regardless of what
// the archive holds.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
package store
