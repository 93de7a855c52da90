package collections

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Property returns a projection that reads the field called name from an
// element. It is the field-name shorthand used by [Pluck] and
// arr.SortByProperty.
//
// Supported element shapes:
//
//   - map[string]any: the literal key first, then a dot-separated path
//     through nested map[string]any values ("user.address.city").
//   - *Mapping[string, V]: the key.
//   - any other Go map with a string-kinded key type: the key.
//   - structs and pointers to structs: the exported field of that name.
//   - slices, arrays and Sequences: name parsed as a decimal index.
//   - []byte and json.RawMessage holding JSON: a gjson path.
//
// A missing field (or an unsupported element) yields nil.
func Property(name string) func(any) any {
	return func(item any) any {
		v, _ := lookupProperty(item, name)
		return v
	}
}

type propertyHolder interface {
	propertyOf(name string) (any, bool)
}

func lookupProperty(item any, name string) (any, bool) {
	switch v := item.(type) {
	case nil:
		return nil, false
	case map[string]any:
		if val, ok := v[name]; ok {
			return val, true
		}
		return lookupPath(v, strings.Split(name, "."))
	case propertyHolder:
		return v.propertyOf(name)
	case json.RawMessage:
		return lookupJSON(v, name)
	case []byte:
		return lookupJSON(v, name)
	}
	return lookupReflect(reflect.ValueOf(item), name)
}

// lookupPath walks nested map[string]any values one segment at a time.
func lookupPath(m map[string]any, segments []string) (any, bool) {
	current := m
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return val, true
		}
		nested, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = nested
	}
	return nil, false
}

func lookupJSON(doc []byte, path string) (any, bool) {
	res := gjson.GetBytes(doc, path)
	if !res.Exists() {
		return nil, false
	}
	return res.Value(), true
}

func lookupReflect(rv reflect.Value, name string) (any, bool) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		f, ok := rv.Type().FieldByName(name)
		if !ok || !f.IsExported() {
			return nil, false
		}
		return rv.FieldByIndex(f.Index).Interface(), true
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			return nil, false
		}
		val := rv.MapIndex(reflect.ValueOf(name).Convert(kt))
		if !val.IsValid() {
			return nil, false
		}
		return val.Interface(), true
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(name)
		if err != nil || i < 0 || i >= rv.Len() {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	default:
		return nil, false
	}
}
