// Package value decodes JSON and YAML documents into order-preserving trees.
//
// Decoded trees use three container shapes only:
//   - Object (*ordered.Map[string, any]) for objects and mappings
//   - []any for arrays and sequences
//   - scalars: string, bool, int64, float64, nil
//
// Key order is part of the data: sorting helpers and the CLI print documents
// back in the order they were read (or sorted into).
package value
