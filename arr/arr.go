package arr

import (
	"math/rand"
	"reflect"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/hasbyte1/go-underbar/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Positional selection
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element.
// Returns the zero value and false when items is empty.
func First[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// FirstN returns a copy of the first n elements, or fewer when items is
// shorter. n <= 0 yields an empty slice.
func FirstN[T any](items []T, n int) []T {
	n = clamp(n, len(items))
	return append(make([]T, 0, n), items[:n]...)
}

// Last returns the last element.
// Returns the zero value and false when items is empty.
func Last[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// LastN returns a copy of the last n elements. When n exceeds len(items) the
// whole slice is returned; n <= 0 yields an empty slice.
func LastN[T any](items []T, n int) []T {
	n = clamp(n, len(items))
	return append(make([]T, 0, n), items[len(items)-n:]...)
}

func clamp(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}

// IndexOf returns the index of the first element that is [collections.Same]
// as target, or -1.
func IndexOf[T any](items []T, target T) int {
	result := -1
	collections.Each(collections.Sequence[T](items), func(item T, i int, _ collections.Collection[int, T]) {
		if result == -1 && collections.Same(item, target) {
			result = i
		}
	})
	return result
}

// Uniq returns items with duplicates removed, keeping the first occurrence
// of each and the original order. Two elements are duplicates when
// by[0] (identity when omitted) maps them to [collections.Same] values.
//
// isSorted is accepted for call-site compatibility with sorted-input
// variants; the comparison strategy is the same either way.
//
//	arr.Uniq([]int{1, 2, 1, 3, 2}, false)                        // [1 2 3]
//	arr.Uniq(words, false, func(s string) any { return len(s) }) // one word per length
func Uniq[T any](items []T, isSorted bool, by ...func(T) any) []T {
	project := func(item T) any { return item }
	if len(by) > 0 && by[0] != nil {
		project = by[0]
	}
	seen := make(collections.Sequence[any], 0, len(items))
	out := make([]T, 0, len(items))
	collections.Each(collections.Sequence[T](items), func(item T, _ int, _ collections.Collection[int, T]) {
		key := project(item)
		if !collections.Contains(seen, key) {
			seen = append(seen, key)
			out = append(out, item)
		}
	})
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Intersection returns the elements of first that are contained in every one
// of rest, in first's order. Duplicates in first are kept. With no rest the
// result is a copy of first.
func Intersection[T any](first []T, rest ...[]T) []T {
	others := collections.Sequence[[]T](rest)
	return collections.Filter(collections.Sequence[T](first), func(item T) bool {
		return collections.Every(others, func(other []T) bool {
			return collections.Contains(collections.Sequence[T](other), item)
		})
	})
}

// Difference returns the elements of first that are contained in none of
// rest, in first's order.
func Difference[T any](first []T, rest ...[]T) []T {
	others := collections.Sequence[[]T](rest)
	return collections.Reject(collections.Sequence[T](first), func(item T) bool {
		return collections.Some(others, func(other []T) bool {
			return collections.Contains(collections.Sequence[T](other), item)
		})
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Zip groups the elements of first with the elements at the same index in
// each of rest. The result has len(first) rows; a shorter slice contributes
// the zero value of T.
//
//	arr.Zip([]any{"a", "b", "c", "d"}, []any{1, 2, 3})
//	// → [[a 1] [b 2] [c 3] [d <nil>]]
func Zip[T any](first []T, rest ...[]T) [][]T {
	return collections.Map(collections.Sequence[T](first), func(item T, i int) []T {
		row := make([]T, 1, 1+len(rest))
		row[0] = item
		for _, other := range rest {
			var v T
			if i < len(other) {
				v = other[i]
			}
			row = append(row, v)
		}
		return row
	})
}

// Flatten recursively flattens nested slices and arrays of any element type
// into a single []any, whatever the depth. Strings and byte slices are
// treated as scalars. A non-slice argument yields a one-element result.
//
//	arr.Flatten([]any{1, []any{2}, []any{3, []any{[]int{4}}}}) // [1 2 3 4]
func Flatten(nested any) []any {
	return flattenInto(make([]any, 0), nested)
}

func flattenInto(acc []any, v any) []any {
	items, ok := asSequence(v)
	if !ok {
		return append(acc, v)
	}
	return collections.Reduce(items, func(acc []any, item any, _ int) []any {
		return flattenInto(acc, item)
	}, acc)
}

func asSequence(v any) (collections.Sequence[any], bool) {
	switch val := v.(type) {
	case []any:
		return val, true
	case collections.Sequence[any]:
		return val, true
	case nil, string, []byte:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
	default:
		return nil, false
	}
	out := make(collections.Sequence[any], rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting & Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// SortBy returns a copy of items sorted in ascending order of criteria.
// The sort is stable: elements with equal criteria keep their input order.
// criteria is called once per element.
//
//	byAge := arr.SortBy(people, func(p Person) int { return p.Age })
func SortBy[T any, C constraints.Ordered](items []T, criteria func(T) C) []T {
	keyed := collections.Map(collections.Sequence[T](items), func(item T, _ int) collections.Pair[T, C] {
		return collections.Pair[T, C]{First: item, Second: criteria(item)}
	})
	slices.SortStableFunc(keyed, func(a, b collections.Pair[T, C]) bool {
		return a.Second < b.Second
	})
	return unkey(keyed)
}

// SortByProperty is [SortBy] with the field-name shorthand: each element is
// ranked by [collections.Property](field). Numbers compare numerically,
// strings lexically, and elements whose field is missing (nil) sort last.
// Criteria that cannot be ordered against each other panic with
// [collections.ErrIncomparable].
//
//	byName := arr.SortByProperty(people, "Name")
func SortByProperty[T any](items []T, field string) []T {
	prop := collections.Property(field)
	keyed := collections.Map(collections.Sequence[T](items), func(item T, _ int) collections.Pair[T, any] {
		return collections.Pair[T, any]{First: item, Second: prop(item)}
	})
	slices.SortStableFunc(keyed, func(a, b collections.Pair[T, any]) bool {
		return lessCriteria(a.Second, b.Second)
	})
	return unkey(keyed)
}

func unkey[T, C any](keyed []collections.Pair[T, C]) []T {
	out := make([]T, len(keyed))
	for i, p := range keyed {
		out[i] = p.First
	}
	return out
}

// Shuffle returns a randomly shuffled copy of items.
func Shuffle[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// ShuffleWith is [Shuffle] drawing from r, for reproducible permutations.
func ShuffleWith[T any](items []T, r *rand.Rand) []T {
	out := make([]T, len(items))
	copy(out, items)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
