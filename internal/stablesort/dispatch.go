package stablesort

import (
	"fmt"
	"strings"

	"github.com/roach88/ease/internal/collections"
	"github.com/roach88/ease/internal/logger"
)

// Primitive names a sort variant for Sort.
type Primitive string

const (
	PrimitiveUsort  Primitive = "usort"
	PrimitiveUasort Primitive = "uasort"
	PrimitiveUksort Primitive = "uksort"
)

// Primitives lists the supported variants.
var Primitives = []Primitive{PrimitiveUsort, PrimitiveUasort, PrimitiveUksort}

// MisuseReporter receives programmer-misuse diagnostics. *logger.Logger
// implements it.
type MisuseReporter interface {
	Misuse(function, message string)
}

type options struct {
	reporter MisuseReporter
}

// Option configures Sort.
type Option func(*options)

// WithReporter sends misuse reports to r instead of the default logger.
func WithReporter(r MisuseReporter) Option {
	return func(o *options) { o.reporter = r }
}

func (o options) misuseReporter() MisuseReporter {
	if o.reporter != nil {
		return o.reporter
	}
	return logger.Default()
}

// Sort stably sorts a decoded document with the named primitive.
//
//   - usort takes a sequence or mapping and func(a, b any) int; it returns
//     the sorted values as a []any.
//   - uasort takes a mapping or sequence and func(a, b any) int; it returns
//     an ordered mapping.
//   - uksort takes a mapping or sequence and func(a, b string) int; it
//     returns an ordered mapping.
//
// An unknown primitive, or data or a comparator of the wrong shape, is
// reported as misuse and data is returned unchanged.
func Sort(data any, primitive Primitive, cmp any, opts ...Option) any {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	sorted, problem := dispatch(data, primitive, cmp)
	if problem != "" {
		o.misuseReporter().Misuse("Sort", problem)
		return data
	}
	return sorted
}

func dispatch(data any, primitive Primitive, cmp any) (any, string) {
	switch primitive {
	case PrimitiveUsort, PrimitiveUasort:
		byValue, ok := cmp.(func(a, b any) int)
		if !ok {
			return nil, fmt.Sprintf("Comparator for %s must be func(a, b any) int, got %T.", primitive, cmp)
		}
		if primitive == PrimitiveUsort {
			return usortDocument(data, byValue)
		}
		obj, ok := collections.ToObject(data)
		if !ok {
			return nil, fmt.Sprintf("%s cannot sort %T.", primitive, data)
		}
		return Uasort(obj, byValue), ""

	case PrimitiveUksort:
		byKey, ok := cmp.(func(a, b string) int)
		if !ok {
			return nil, fmt.Sprintf("Comparator for %s must be func(a, b string) int, got %T.", primitive, cmp)
		}
		obj, ok := collections.ToObject(data)
		if !ok {
			return nil, fmt.Sprintf("%s cannot sort %T.", primitive, data)
		}
		return Uksort(obj, byKey), ""

	default:
		return nil, fmt.Sprintf("Only custom sorting functions can be used, got %q.", string(primitive))
	}
}

// usortDocument sorts the values of a sequence or mapping, dropping keys.
func usortDocument(data any, cmp func(a, b any) int) (any, string) {
	if s, ok := data.([]any); ok {
		return Usort(s, cmp), ""
	}
	pairs, ok := collections.Entries(data)
	if !ok {
		return nil, fmt.Sprintf("%s cannot sort %T.", PrimitiveUsort, data)
	}
	values := make([]any, len(pairs))
	for i, p := range pairs {
		values[i] = p.Value
	}
	return Usort(values, cmp), ""
}

// SortBy orders records by the string found at a dot-notation path,
// comparing byte-wise. Associative mappings keep their keys; sequences and
// index-keyed mappings come back as a sequence. Records without a value at
// path sort as the empty string. Scalars and an empty path return items
// unchanged.
func SortBy(items any, path string) any {
	if path == "" || !collections.IsContainer(items) {
		return items
	}

	cmp := func(a, b any) int {
		return strings.Compare(
			collections.Text(collections.Get(a, path, "")),
			collections.Text(collections.Get(b, path, "")),
		)
	}

	if collections.IsAssoc(items) {
		obj, _ := collections.ToObject(items)
		return Uasort(obj, cmp)
	}
	sorted, _ := usortDocument(items, cmp)
	return sorted
}
