package logger

import "sync"

// History is the set of checksums of messages already written.
//
// Thread-safety: History is safe for concurrent use via internal mutex.
type History struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{seen: make(map[string]struct{})}
}

// Record adds sum to the history and reports whether it was new.
func (h *History) Record(sum string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.seen[sum]; ok {
		return false
	}
	h.seen[sum] = struct{}{}
	return true
}

// Len returns the number of recorded checksums.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.seen)
}

// Reset forgets every recorded checksum.
func (h *History) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	clear(h.seen)
}
