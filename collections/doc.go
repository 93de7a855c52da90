// Package collections provides generic traversal, reduction, selection and
// transformation over two container shapes: ordered sequences and keyed
// mappings.
//
// # Overview
//
// A [Collection] is either a [Sequence] (a named slice, keyed by index) or a
// [*Mapping] (an insertion-ordered key/value table). Both expose an ordered
// (key, value) enumeration and a [Kind] tag, and every operation in this
// package accepts the interface, so the same call works on either shape:
//
//	evens := collections.Filter(collections.Seq(1, 2, 3, 4),
//	    func(n int) bool { return n%2 == 0 }) // [2 4]
//
//	m := collections.MappingOf(
//	    collections.Pair[string, int]{First: "a", Second: 1},
//	    collections.Pair[string, int]{First: "b", Second: 2},
//	)
//	sum := collections.Reduce(m, func(acc, n int, _ string) int { return acc + n }, 0) // 3
//
// # Primitives
//
// [Each] is the single traversal primitive and [Reduce] / [ReduceFirst] the
// folds built on it. [Filter], [Reject], [Contains], [Every], [Some], [Map]
// and [Pluck] are all expressed through those two.
//
// # Immutability
//
// Operations return fresh Sequences and never modify their input. The only
// mutating helpers are [Mapping.Set], [Extend] and [Defaults], which write
// into the target mapping they are given.
//
// # Equality and truthiness
//
// [Same] is the identity/value equality used by [Contains] and by the set
// helpers in package arr. [Truthy] is the default predicate of [Every] and
// [Some].
//
// # Field-name shorthand
//
// [Property] turns a field name into a projection over maps, Mappings,
// structs, slices and raw JSON documents; [Pluck] is [Map] with a Property.
//
// # Portability
//
// The API mirrors the map/filter/reduce vocabulary of underscore-style
// libraries:
//
//   - JavaScript: _.each / _.reduce / _.filter on arrays and objects
//   - Python: functools.reduce, comprehensions over lists and dicts
//   - Rust: Iterator adapters over Vec and IndexMap
package collections
