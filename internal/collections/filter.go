package collections

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"

	"github.com/roach88/ease/internal/checksum"
	"github.com/roach88/ease/internal/ordered"
)

// Pick keeps the items of items that have a non-empty value under key.
// Mappings keep their keys; sequences are reindexed.
func Pick(items any, key string) any {
	return filter(items, func(item any) bool {
		v, ok := child(item, key)
		return ok && !Empty(v)
	})
}

// PickValue keeps the items of items whose value under key equals value.
func PickValue(items any, key string, value any) any {
	return filter(items, func(item any) bool {
		v, ok := child(item, key)
		return ok && v != nil && Equal(v, value)
	})
}

func filter(items any, keep func(any) bool) any {
	switch n := items.(type) {
	case []any:
		out := []any{}
		for _, item := range n {
			if keep(item) {
				out = append(out, item)
			}
		}
		return out
	default:
		pairs, ok := Entries(items)
		if !ok {
			return []any{}
		}
		out := ordered.New[string, any]()
		for _, p := range pairs {
			if keep(p.Value) {
				out.Set(p.Key, p.Value)
			}
		}
		return out
	}
}

// All reports whether every value of items is non-empty or, when pred is
// given, satisfies pred. Scalars and empty containers yield true.
func All(items any, pred func(any) bool) bool {
	if pred == nil {
		pred = func(v any) bool { return !Empty(v) }
	}
	pairs, _ := Entries(items)
	for _, p := range pairs {
		if !pred(p.Value) {
			return false
		}
	}
	return true
}

// Includes reports whether haystack contains needle: a substring for
// strings and an element for sequences and mappings. Mapping keys are not
// searched.
func Includes(haystack, needle any) bool {
	switch h := haystack.(type) {
	case string:
		return strings.Contains(h, Text(needle))
	case []any:
		for _, v := range h {
			if Equal(v, needle) {
				return true
			}
		}
		return false
	case []string:
		for _, v := range h {
			if Equal(v, needle) {
				return true
			}
		}
		return false
	default:
		pairs, ok := Entries(haystack)
		if !ok {
			return false
		}
		for _, p := range pairs {
			if Equal(p.Value, needle) {
				return true
			}
		}
		return false
	}
}

// IsAssoc reports whether doc is a mapping with at least one key that is
// not an integer. Sequences and index-keyed mappings are not associative.
func IsAssoc(doc any) bool {
	if _, ok := doc.([]any); ok {
		return false
	}
	pairs, ok := Entries(doc)
	if !ok {
		return false
	}
	for _, p := range pairs {
		if _, err := strconv.Atoi(p.Key); err != nil {
			return true
		}
	}
	return false
}

// Empty reports whether v is empty: nil, false, zero, "", "0" or an empty
// container.
func Empty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case bool:
		return !val
	case string:
		return val == "" || val == "0"
	case json.Number:
		f, err := val.Float64()
		return err == nil && f == 0
	case Object:
		return val.Len() == 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return rv.IsZero()
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// Equal reports whether a and b hold the same value. Integers and floats
// compare by numeric value; mappings compare entries in order.
func Equal(a, b any) bool {
	if fa, ok := number(a); ok {
		fb, ok := number(b)
		return ok && fa == fb
	}
	if oa, ok := a.(Object); ok {
		ob, ok := b.(Object)
		if !ok || oa.Len() != ob.Len() {
			return false
		}
		if oa.Len() == 0 {
			return true
		}
		pa, pb := oa.Pairs(), ob.Pairs()
		for i := range pa {
			if pa[i].Key != pb[i].Key || !Equal(pa[i].Value, pb[i].Value) {
				return false
			}
		}
		return true
	}
	if sa, ok := a.([]any); ok {
		sb, ok := b.([]any)
		if !ok || len(sa) != len(sb) {
			return false
		}
		for i := range sa {
			if !Equal(sa[i], sb[i]) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}

func number(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// Text renders a scalar as a string; containers render as YAML.
func Text(v any) string {
	return checksum.Describe(v)
}
