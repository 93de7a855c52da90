package collections

// This file contains the shape-agnostic operations. Each is the only place
// that walks a Collection; everything else is written in terms of Each or
// Reduce, so a new Collection variant needs nothing but an All method:
//
//	total := collections.Reduce(
//	    collections.Filter(c, func(n int) bool { return n%2 == 0 }),
//	    func(acc, n, _ int) int { return acc + n },
//	    0,
//	)

// ─────────────────────────────────────────────────────────────────────────────
// Traversal & reduction
// ─────────────────────────────────────────────────────────────────────────────

// Each calls visit(value, key, c) for every element of c, in index order for
// a [Sequence] and insertion order for a [Mapping]. Mutating c from inside
// visit is undefined.
func Each[K comparable, V any](c Collection[K, V], visit Visitor[K, V]) {
	for k, v := range c.All() {
		visit(v, k, c)
	}
}

// Reduce folds c into seed by calling fn(acc, value, key) for every element
// in traversal order.
//
//	sum := collections.Reduce(collections.Seq(1, 2, 3),
//	    func(acc, n, _ int) int { return acc + n }, 0) // 6
func Reduce[K comparable, V, A any](c Collection[K, V], fn func(A, V, K) A, seed A) A {
	acc := seed
	Each(c, func(item V, key K, _ Collection[K, V]) {
		acc = fn(acc, item, key)
	})
	return acc
}

// ReduceFirst folds c without a seed: the first element in traversal order
// becomes the accumulator and is never passed to fn, folding continues from
// the second element with its original key.
//
// The second result is false when c is empty; the accumulator is then the
// zero value and must not be used.
//
//	v, _ := collections.ReduceFirst(collections.Seq(5),
//	    func(acc, n, _ int) int { return acc + n*n }) // 5, fn never called
func ReduceFirst[K comparable, V any](c Collection[K, V], fn func(V, V, K) V) (V, bool) {
	var acc V
	seeded := false
	Each(c, func(item V, key K, _ Collection[K, V]) {
		if !seeded {
			acc, seeded = item, true
			return
		}
		acc = fn(acc, item, key)
	})
	return acc, seeded
}

// ─────────────────────────────────────────────────────────────────────────────
// Selection
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns the values for which fn returns true, in traversal order.
func Filter[K comparable, V any](c Collection[K, V], fn func(V) bool) Sequence[V] {
	out := make(Sequence[V], 0, c.Count())
	Each(c, func(item V, _ K, _ Collection[K, V]) {
		if fn(item) {
			out = append(out, item)
		}
	})
	return out
}

// Reject returns the values for which fn returns false.
// It is the complement of [Filter].
func Reject[K comparable, V any](c Collection[K, V], fn func(V) bool) Sequence[V] {
	return Filter(c, func(item V) bool { return !fn(item) })
}

// Contains reports whether any value of c is [Same] as target. It folds over
// every element rather than stopping at the first match.
func Contains[K comparable, V any](c Collection[K, V], target V) bool {
	return Reduce(c, func(found bool, item V, _ K) bool {
		if found {
			return true
		}
		return Same(item, target)
	}, false)
}

// Every reports whether fns[0] holds for all values of c, or when fns is
// empty, whether every value is [Truthy]. An empty collection yields true.
func Every[K comparable, V any](c Collection[K, V], fns ...func(V) bool) bool {
	fn := predicateOrTruthy(fns)
	return Reduce(c, func(all bool, item V, _ K) bool {
		if !fn(item) {
			return false
		}
		return all
	}, true)
}

// Some reports whether fns[0] (or [Truthy]) holds for at least one value.
// An empty collection yields false.
func Some[K comparable, V any](c Collection[K, V], fns ...func(V) bool) bool {
	fn := predicateOrTruthy(fns)
	return !Every(c, func(item V) bool { return !fn(item) })
}

func predicateOrTruthy[V any](fns []func(V) bool) func(V) bool {
	if len(fns) > 0 && fns[0] != nil {
		return fns[0]
	}
	return Truthy[V]
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(value, key) to every element and returns the results in
// traversal order. The result always has c.Count() items and never aliases c.
//
//	labels := collections.Map(collections.Seq(1, 2, 3),
//	    func(n, _ int) string { return strconv.Itoa(n * 2) })
func Map[K comparable, V, U any](c Collection[K, V], fn func(V, K) U) Sequence[U] {
	out := make(Sequence[U], 0, c.Count())
	Each(c, func(item V, key K, _ Collection[K, V]) {
		out = append(out, fn(item, key))
	})
	return out
}

// Pluck extracts the field called key from every element, as resolved by
// [Property].
//
//	names := collections.Pluck(people, "Name")
func Pluck[K comparable, V any](c Collection[K, V], key string) Sequence[any] {
	prop := Property(key)
	return Map(c, func(item V, _ K) any { return prop(item) })
}
