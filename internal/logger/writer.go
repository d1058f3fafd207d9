package logger

import (
	"io"
	"sync"
)

// WriterSink writes rendered entries to an io.Writer, the error_log
// analogue. Write errors are dropped.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink creates a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Write renders e and writes it in a single call.
func (s *WriterSink) Write(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(s.w, e.String())
}
