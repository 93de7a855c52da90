package arr

import (
	"fmt"
	"reflect"
	"time"

	"github.com/hasbyte1/go-underbar/collections"
)

// Invoke calls fn on every element, forwarding args unchanged to each call,
// and returns the results in order.
//
//	arr.Invoke(words, func(s string, args ...any) string {
//	    return strings.Repeat(s, args[0].(int))
//	}, 2)
func Invoke[T, R any](items []T, fn func(T, ...any) R, args ...any) []R {
	return collections.Map(collections.Sequence[T](items), func(item T, _ int) R {
		return fn(item, args...)
	})
}

// InvokeMethod calls the exported method name on every element with args and
// returns each call's first result (nil for methods without results).
//
// Only methods in the element's method set are found: pointer-receiver
// methods require pointer elements. An element without the method panics
// with an error wrapping [collections.ErrNoSuchMethod].
func InvokeMethod[T any](items []T, name string, args ...any) []any {
	return collections.Map(collections.Sequence[T](items), func(item T, _ int) any {
		return callMethod(item, name, args)
	})
}

func callMethod(item any, name string, args []any) any {
	if item == nil {
		panic(fmt.Errorf("%w: %q on nil", collections.ErrNoSuchMethod, name))
	}
	m := reflect.ValueOf(item).MethodByName(name)
	if !m.IsValid() {
		panic(fmt.Errorf("%w: %q on %T", collections.ErrNoSuchMethod, name, item))
	}

	mt := m.Type()
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		if a != nil {
			in[i] = reflect.ValueOf(a)
			continue
		}
		// untyped nil needs the parameter type
		if mt.IsVariadic() && i >= mt.NumIn()-1 {
			in[i] = reflect.Zero(mt.In(mt.NumIn() - 1).Elem())
		} else {
			in[i] = reflect.Zero(mt.In(i))
		}
	}

	out := m.Call(in)
	if len(out) == 0 {
		return nil
	}
	return out[0].Interface()
}

// lessCriteria orders two sort criteria produced by a property lookup.
// nil sorts after everything else.
func lessCriteria(a, b any) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}

	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return x < y
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Before(y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			return !x && y
		}
	}

	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case isInt(av) && isInt(bv):
		return av.Int() < bv.Int()
	case isUint(av) && isUint(bv):
		return av.Uint() < bv.Uint()
	case isNumber(av) && isNumber(bv):
		return toFloat(av) < toFloat(bv)
	case av.Kind() == reflect.String && bv.Kind() == reflect.String:
		return av.String() < bv.String()
	}
	panic(fmt.Errorf("%w: %T and %T", collections.ErrIncomparable, a, b))
}

func isInt(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isNumber(v reflect.Value) bool {
	return isInt(v) || isUint(v) || v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isInt(v):
		return float64(v.Int())
	case isUint(v):
		return float64(v.Uint())
	}
	return v.Float()
}
