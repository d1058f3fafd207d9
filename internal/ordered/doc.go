// Package ordered provides an insertion-ordered map.
//
// Go maps iterate in random order, but key-preserving sorts and decoded
// documents need a stable, observable order. Map keeps keys in a slice next
// to the value index so iteration, JSON and YAML encoding all follow
// insertion order (or the order last applied with Reorder).
package ordered
