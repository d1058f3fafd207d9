package stablesort

import (
	"slices"

	"github.com/roach88/ease/internal/ordered"
)

// OrderIndex maps an element or key to its original position.
type OrderIndex[K comparable] map[K]int

// NewOrderIndex records the position of every key.
func NewOrderIndex[K comparable](keys []K) OrderIndex[K] {
	idx := make(OrderIndex[K], len(keys))
	for i, k := range keys {
		if _, seen := idx[k]; !seen {
			idx[k] = i
		}
	}
	return idx
}

// Compare returns the difference of the original positions of a and b, or
// 0 when either is unknown.
func (idx OrderIndex[K]) Compare(a, b K) int {
	ia, okA := idx[a]
	ib, okB := idx[b]
	if !okA || !okB {
		return 0
	}
	return ia - ib
}

// Usort sorts s in place by cmp, keeping equal elements in their original
// order, and returns s.
func Usort[T any](s []T, cmp func(a, b T) int) []T {
	type positioned struct {
		value T
		pos   int
	}

	pairs := make([]positioned, len(s))
	for i, v := range s {
		pairs[i] = positioned{value: v, pos: i}
	}

	slices.SortFunc(pairs, func(a, b positioned) int {
		if r := cmp(a.value, b.value); r != 0 {
			return r
		}
		return a.pos - b.pos
	})

	for i, p := range pairs {
		s[i] = p.value
	}
	return s
}

// Uasort reorders m by value, keeping equal values in their original order
// and every value under its key. It returns m.
func Uasort[K comparable, V any](m *ordered.Map[K, V], cmp func(a, b V) int) *ordered.Map[K, V] {
	if m.Len() < 2 {
		return m
	}

	keys := m.Keys()
	idx := NewOrderIndex(keys)

	slices.SortFunc(keys, func(a, b K) int {
		va, _ := m.Get(a)
		vb, _ := m.Get(b)
		if r := cmp(va, vb); r != 0 {
			return r
		}
		return idx.Compare(a, b)
	})

	m.Reorder(keys)
	return m
}

// Uksort reorders m by key, keeping keys cmp calls equal in their original
// order. It returns m.
func Uksort[K comparable, V any](m *ordered.Map[K, V], cmp func(a, b K) int) *ordered.Map[K, V] {
	if m.Len() < 2 {
		return m
	}

	keys := m.Keys()
	idx := NewOrderIndex(keys)

	slices.SortFunc(keys, func(a, b K) int {
		if r := cmp(a, b); r != 0 {
			return r
		}
		return idx.Compare(a, b)
	})

	m.Reorder(keys)
	return m
}
