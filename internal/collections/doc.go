// Package collections reads and rewrites decoded documents.
//
// A document is any tree of *ordered.Map[string, any], map[string]any,
// []any and scalars, as produced by the value package. Addresses use dot
// notation; a segment written as "[n]" indexes a sequence:
//
//	Get(doc, "plugins.[0].name", "")
//
// Mappings keep insertion order when they are *ordered.Map; plain Go maps
// are visited in sorted key order so results stay deterministic.
//
// Emptiness follows host truthiness: nil, false, zero numbers, "", "0" and
// empty containers are empty.
package collections
