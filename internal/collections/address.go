package collections

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/roach88/ease/internal/ordered"
)

// Object is the ordered mapping type used for documents.
type Object = *ordered.Map[string, any]

// Segments splits an address into its keys. address is a dot-notation
// string or a []string used as is; anything else yields no segments.
func Segments(address any) []string {
	switch a := address.(type) {
	case string:
		if a == "" {
			return nil
		}
		return strings.Split(a, ".")
	case []string:
		return a
	case []any:
		out := make([]string, len(a))
		for i, s := range a {
			out[i] = Text(s)
		}
		return out
	default:
		return nil
	}
}

// index parses a sequence index. Both "[3]" and "3" are accepted.
func index(key string) (int, bool) {
	if strings.HasPrefix(key, "[") && strings.HasSuffix(key, "]") {
		key = key[1 : len(key)-1]
	}
	n, err := strconv.Atoi(key)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// isIndexSegment reports whether key is written as "[n]".
func isIndexSegment(key string) bool {
	if !strings.HasPrefix(key, "[") || !strings.HasSuffix(key, "]") {
		return false
	}
	_, ok := index(key)
	return ok
}

// mapKey is the mapping key addressed by key: "[3]" addresses "3".
func mapKey(key string) string {
	if isIndexSegment(key) {
		return key[1 : len(key)-1]
	}
	return key
}

// child returns the value stored under key in node.
func child(node any, key string) (any, bool) {
	switch n := node.(type) {
	case Object:
		if n == nil {
			return nil, false
		}
		return n.Get(mapKey(key))
	case map[string]any:
		v, ok := n[mapKey(key)]
		return v, ok
	case []any:
		i, ok := index(key)
		if !ok || i >= len(n) {
			return nil, false
		}
		return n[i], true
	default:
		return nil, false
	}
}

// Entries lists the key/value pairs of a container in iteration order:
// insertion order for *ordered.Map, sorted keys for map[string]any and
// decimal indexes for []any. ok is false for scalars.
func Entries(node any) (pairs []ordered.Pair[string, any], ok bool) {
	switch n := node.(type) {
	case Object:
		if n == nil {
			return nil, true
		}
		return n.Pairs(), true
	case map[string]any:
		for _, k := range slices.Sorted(maps.Keys(n)) {
			pairs = append(pairs, ordered.Pair[string, any]{Key: k, Value: n[k]})
		}
		return pairs, true
	case []any:
		for i, v := range n {
			pairs = append(pairs, ordered.Pair[string, any]{Key: strconv.Itoa(i), Value: v})
		}
		return pairs, true
	default:
		return nil, false
	}
}

// IsContainer reports whether v is a mapping or a sequence.
func IsContainer(v any) bool {
	_, ok := Entries(v)
	return ok
}

// ToObject converts a mapping to an *ordered.Map. Plain maps are copied in
// sorted key order; sequences become mappings keyed by index.
func ToObject(v any) (Object, bool) {
	if o, ok := v.(Object); ok && o != nil {
		return o, true
	}
	pairs, ok := Entries(v)
	if !ok {
		return nil, false
	}
	return ordered.FromPairs(pairs...), true
}
