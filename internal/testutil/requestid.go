package testutil

import (
	"fmt"
	"sync"
)

// DefaultRequestID is returned by a FixedRequestIDGenerator created with
// an empty ID.
const DefaultRequestID = "test-request-default"

// FixedRequestIDGenerator returns the same request ID every time, so
// every entry of a scenario carries one known ID.
//
// Thread-safety: FixedRequestIDGenerator is stateless and safe for concurrent use.
type FixedRequestIDGenerator struct {
	id string
}

// NewFixedRequestIDGenerator creates a generator returning id.
func NewFixedRequestIDGenerator(id string) *FixedRequestIDGenerator {
	if id == "" {
		id = DefaultRequestID
	}
	return &FixedRequestIDGenerator{id: id}
}

// Generate returns the fixed request ID.
func (g *FixedRequestIDGenerator) Generate() string {
	return g.id
}

// SequenceRequestIDGenerator returns predetermined request IDs in order,
// one per BeginRequest.
//
//	gen := NewSequenceRequestIDGenerator("req-1", "req-2")
//	gen.Generate() // "req-1"
//	gen.Generate() // "req-2"
//	gen.Generate() // panic: all request IDs exhausted
//
// Thread-safety: SequenceRequestIDGenerator is safe for concurrent use via internal mutex.
type SequenceRequestIDGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewSequenceRequestIDGenerator creates a generator that returns ids in order.
func NewSequenceRequestIDGenerator(ids ...string) *SequenceRequestIDGenerator {
	return &SequenceRequestIDGenerator{ids: ids}
}

// Generate returns the next predetermined ID.
//
// Panics if all IDs have been consumed, which means a test began more
// requests than it configured.
func (g *SequenceRequestIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.ids) {
		panic(fmt.Sprintf("SequenceRequestIDGenerator: all %d request IDs exhausted", len(g.ids)))
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}
