package testutil

import (
	"sync"

	"github.com/roach88/ease/internal/logger"
)

// RecordingSink keeps every written entry in memory.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type RecordingSink struct {
	mu      sync.Mutex
	entries []logger.Entry
}

// NewRecordingSink creates an empty sink.
func NewRecordingSink() *RecordingSink {
	return &RecordingSink{}
}

// Write records e.
func (s *RecordingSink) Write(e logger.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
}

// Entries returns a copy of the recorded entries in write order.
func (s *RecordingSink) Entries() []logger.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]logger.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Messages returns the message of every recorded entry.
func (s *RecordingSink) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Message
	}
	return out
}

// Len returns the number of recorded entries.
func (s *RecordingSink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Reset drops all recorded entries.
func (s *RecordingSink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}
