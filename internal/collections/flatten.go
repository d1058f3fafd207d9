package collections

import (
	"html"

	"github.com/roach88/ease/internal/ordered"
)

// Flatten collects the leaves of doc into one mapping keyed by each leaf's
// own key. A later leaf overwrites an earlier one with the same key; the
// key keeps the position where it first appeared.
//
//	{"a": 1, "b": {"c": 2, "a": 3}} -> {"a": 3, "c": 2}
func Flatten(doc any) Object {
	out := ordered.New[string, any]()
	flatten(doc, out)
	return out
}

func flatten(node any, out Object) {
	pairs, _ := Entries(node)
	for _, p := range pairs {
		if IsContainer(p.Value) {
			flatten(p.Value, out)
			continue
		}
		out.Set(p.Key, p.Value)
	}
}

// Escape applies fn to every key and leaf of doc and returns the escaped
// copy. Leaves become strings. A nil fn escapes HTML.
func Escape(doc any, fn func(string) string) any {
	if fn == nil {
		fn = html.EscapeString
	}

	switch n := doc.(type) {
	case []any:
		out := make([]any, len(n))
		for i, v := range n {
			out[i] = Escape(v, fn)
		}
		return out
	default:
		pairs, ok := Entries(doc)
		if !ok {
			return fn(Text(doc))
		}
		out := ordered.New[string, any]()
		for _, p := range pairs {
			out.Set(fn(p.Key), Escape(p.Value, fn))
		}
		return out
	}
}
