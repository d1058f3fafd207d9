package store

import (
	"context"
	"testing"

	"github.com/roach88/ease/internal/logger"
)

func TestAppend_Basic(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	e := createTestEntry("req-1", 1, logger.LevelError, "sum-a", "[ERROR]: boom")
	if err := s.Append(ctx, e); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}

	got, err := s.Entries(ctx, "req-1")
	if err != nil {
		t.Fatalf("Entries() failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(Entries()) = %d, want 1", len(got))
	}
	if got[0] != e {
		t.Errorf("Entries()[0] = %+v, want %+v", got[0], e)
	}
}

func TestAppend_Idempotent(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	e := createTestEntry("req-1", 1, logger.LevelDebug, "sum-a", "first")
	for i := 0; i < 3; i++ {
		if err := s.Append(ctx, e); err != nil {
			t.Fatalf("Append() iteration %d failed: %v", i, err)
		}
	}

	// Same key, different body: the first write wins.
	dup := createTestEntry("req-1", 1, logger.LevelDebug, "sum-b", "second")
	if err := s.Append(ctx, dup); err != nil {
		t.Fatalf("Append(dup) failed: %v", err)
	}

	got, err := s.Entries(ctx, "req-1")
	if err != nil {
		t.Fatalf("Entries() failed: %v", err)
	}
	if len(got) != 1 || got[0].Message != "first" {
		t.Errorf("Entries() = %+v, want single %q entry", got, "first")
	}
}

func TestAppend_SameSeqDifferentRequests(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	if err := s.Append(ctx, createTestEntry("req-1", 1, logger.LevelDebug, "sum-a", "a")); err != nil {
		t.Fatal(err)
	}
	if err := s.Append(ctx, createTestEntry("req-2", 1, logger.LevelDebug, "sum-a", "a")); err != nil {
		t.Fatal(err)
	}

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("Count() = %d, want 2", n)
	}
}

func TestAppend_RejectsUnknownLevel(t *testing.T) {
	s := createTestStore(t)

	err := s.Append(context.Background(), createTestEntry("req-1", 1, logger.Level("warn"), "sum", "x"))
	if err == nil {
		t.Error("expected CHECK constraint error for unknown level")
	}
}

func TestAppend_CanceledContext(t *testing.T) {
	s := createTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Append(ctx, createTestEntry("req-1", 1, logger.LevelDebug, "sum", "x")); err == nil {
		t.Error("expected error for canceled context")
	}
}
