package ordered

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"slices"

	"gopkg.in/yaml.v3"
)

// Pair is one key/value entry of a Map.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a mapping that remembers insertion order.
// The zero value is not usable; construct with New or FromPairs.
//
// Thread-safety: Map is not safe for concurrent mutation.
type Map[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// New creates an empty Map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{values: make(map[K]V)}
}

// FromPairs creates a Map holding pairs in the given order.
// A repeated key keeps its first position and its last value.
func FromPairs[K comparable, V any](pairs ...Pair[K, V]) *Map[K, V] {
	m := &Map[K, V]{
		keys:   make([]K, 0, len(pairs)),
		values: make(map[K]V, len(pairs)),
	}
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// Set stores value under key. New keys are appended; existing keys keep their position.
func (m *Map[K, V]) Set(key K, value V) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.values[key]
	return ok
}

// Delete removes key. Missing keys are ignored.
func (m *Map[K, V]) Delete(key K) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	if i := slices.Index(m.keys, key); i >= 0 {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns a copy of the keys in iteration order.
func (m *Map[K, V]) Keys() []K {
	return slices.Clone(m.keys)
}

// Values returns the values in iteration order.
func (m *Map[K, V]) Values() []V {
	vals := make([]V, len(m.keys))
	for i, k := range m.keys {
		vals[i] = m.values[k]
	}
	return vals
}

// Pairs returns the entries in iteration order.
func (m *Map[K, V]) Pairs() []Pair[K, V] {
	pairs := make([]Pair[K, V], len(m.keys))
	for i, k := range m.keys {
		pairs[i] = Pair[K, V]{Key: k, Value: m.values[k]}
	}
	return pairs
}

// All iterates entries in order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy.
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := &Map[K, V]{
		keys:   slices.Clone(m.keys),
		values: make(map[K]V, len(m.values)),
	}
	for k, v := range m.values {
		c.values[k] = v
	}
	return c
}

// Reorder rewrites iteration order. Keys listed come first in the given order;
// unknown or repeated keys are ignored, and keys not listed keep their relative
// order after the listed ones.
func (m *Map[K, V]) Reorder(keys []K) {
	next := make([]K, 0, len(m.keys))
	placed := make(map[K]bool, len(m.keys))
	for _, k := range keys {
		if _, ok := m.values[k]; !ok || placed[k] {
			continue
		}
		placed[k] = true
		next = append(next, k)
	}
	for _, k := range m.keys {
		if !placed[k] {
			next = append(next, k)
		}
	}
	m.keys = next
}

// MarshalJSON encodes the map as a JSON object in insertion order.
// Non-string keys are rendered with fmt.Sprint.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(fmt.Sprint(k))
		if err != nil {
			return nil, fmt.Errorf("key %v: %w", k, err)
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')

		valJSON, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, fmt.Errorf("value for key %v: %w", k, err)
		}
		buf.Write(valJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the map as a YAML mapping in insertion order.
func (m *Map[K, V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range m.keys {
		var keyNode, valNode yaml.Node
		if err := keyNode.Encode(fmt.Sprint(k)); err != nil {
			return nil, fmt.Errorf("key %v: %w", k, err)
		}
		if err := valNode.Encode(m.values[k]); err != nil {
			return nil, fmt.Errorf("value for key %v: %w", k, err)
		}
		node.Content = append(node.Content, &keyNode, &valNode)
	}
	return node, nil
}
