package collections

import (
	"math"
	"reflect"
)

// Same reports whether a and b are the same value under Go's native equality.
//
// Comparable values of identical dynamic type compare with ==. Slices, maps,
// channels, functions and pointers compare by identity: two slices are the
// same when they share a backing array start and a length. Values of
// different dynamic types are never the same, so int(1) and int64(1) differ.
//
// A comparable struct that holds an incomparable value in an interface field
// panics, as == would.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Map, reflect.Func:
		return va.Pointer() == vb.Pointer()
	default:
		return false
	}
}

// Truthy reports whether v would count as true in a boolean context of a
// dynamically typed language: false, zero numbers, NaN, the empty string and
// nil (including nil slices, maps, pointers and funcs) are falsy; everything
// else, including empty but non-nil slices and maps, is truthy.
//
// It is the predicate [Every] and [Some] fall back to when none is given.
func Truthy[V any](v V) bool {
	return truthy(any(v))
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case float64:
		return x != 0 && !math.IsNaN(x)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() != 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	default:
		return true
	}
}
