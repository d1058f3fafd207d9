// Package stablesort makes user-defined sorts stable.
//
// slices.SortFunc is not stable: elements the comparator calls equal may
// end up in any order. Each variant here wraps the comparator so that a
// tie is broken by original position:
//
//	r := cmp(a, b)
//	if r != 0 {
//		return r
//	}
//	return position(a) - position(b)
//
// Usort sorts a slice by value, Uasort sorts a mapping by value keeping
// key associations, and Uksort sorts a mapping by key. Positions live in
// closure-captured locals of one call, so concurrent sorts share nothing.
//
// Sort dispatches on a primitive name for callers that pick the variant at
// runtime. A name it does not know is reported through a MisuseReporter and
// the input is returned unchanged.
package stablesort
