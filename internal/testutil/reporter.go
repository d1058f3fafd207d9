package testutil

import "sync"

// Misuse is one recorded misuse report.
type Misuse struct {
	Function string
	Message  string
}

// RecordingReporter records misuse reports instead of logging them.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type RecordingReporter struct {
	mu      sync.Mutex
	reports []Misuse
}

// Misuse records the report.
func (r *RecordingReporter) Misuse(function, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, Misuse{Function: function, Message: message})
}

// Reports returns a copy of the recorded reports.
func (r *RecordingReporter) Reports() []Misuse {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Misuse, len(r.reports))
	copy(out, r.reports)
	return out
}
