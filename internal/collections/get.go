package collections

import (
	"strconv"

	"github.com/roach88/ease/internal/ordered"
)

// Get returns the value at address, or def when any segment is missing or
// the value found is nil.
//
//	Get(doc, "a.b.[0]", "")
//	Get(doc, []string{"a", "b"}, nil)
func Get(doc any, address any, def any) any {
	value := doc
	for _, key := range Segments(address) {
		v, ok := child(value, key)
		if !ok || v == nil {
			return def
		}
		value = v
	}
	return value
}

// Set stores value at path and returns the new root. Containers are
// modified in place; missing or scalar nodes along the path are replaced by
// a new sequence when the next segment is "[n]" and a new *ordered.Map
// otherwise. Sequences grow with nil elements to reach an index.
//
// An empty path replaces the root.
func Set(doc any, path any, value any) any {
	return set(doc, Segments(path), value)
}

func set(node any, keys []string, value any) any {
	if len(keys) == 0 {
		return value
	}
	key, rest := keys[0], keys[1:]

	switch n := node.(type) {
	case Object:
		if n != nil {
			prev, _ := n.Get(mapKey(key))
			n.Set(mapKey(key), set(prev, rest, value))
			return n
		}
	case map[string]any:
		if n != nil {
			n[mapKey(key)] = set(n[mapKey(key)], rest, value)
			return n
		}
	case []any:
		if i, ok := index(key); ok {
			for len(n) <= i {
				n = append(n, nil)
			}
			n[i] = set(n[i], rest, value)
			return n
		}
		obj, _ := ToObject(n)
		obj.Set(key, set(nil, rest, value))
		return obj
	}

	if isIndexSegment(key) {
		return set([]any{}, keys, value)
	}
	obj := ordered.New[string, any]()
	obj.Set(key, set(nil, rest, value))
	return obj
}

// Update merges value into the container at path (see Merge) and returns
// the new root.
func Update(doc any, path any, value any) any {
	current := Get(doc, path, nil)
	return Set(doc, path, Merge(current, value))
}

// Merge combines two containers the way array_merge does. Two sequences
// are concatenated. Mapping keys of b overwrite those of a, new keys are
// appended, and sequence elements of b are appended to a mapping under the
// next free integer key. If a is not a container the result is b; if b
// is not a container the result is a.
func Merge(a, b any) any {
	if !IsContainer(a) {
		return b
	}

	if sa, ok := a.([]any); ok {
		if sb, ok := b.([]any); ok {
			out := make([]any, 0, len(sa)+len(sb))
			out = append(out, sa...)
			return append(out, sb...)
		}
	}

	pairs, ok := Entries(b)
	if !ok {
		return a
	}

	base, _ := ToObject(a)
	out := base.Clone()
	next := nextIndex(out)
	_, bIsSequence := b.([]any)
	for _, p := range pairs {
		if _, numeric := index(p.Key); numeric || bIsSequence {
			out.Set(strconv.Itoa(next), p.Value)
			next++
			continue
		}
		out.Set(p.Key, p.Value)
	}
	return out
}

// nextIndex returns one past the largest integer key of o.
func nextIndex(o Object) int {
	next := 0
	for _, k := range o.Keys() {
		if n, ok := index(k); ok && !isIndexSegment(k) && n >= next {
			next = n + 1
		}
	}
	return next
}
