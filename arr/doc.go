// Package arr provides positional, set and restructuring helpers for plain Go
// slices, built on the traversal and reduction primitives of the collections
// package.
//
// # Slice helpers
//
// Every helper is generic and operates on plain []T values. Inputs are never
// mutated; results are fresh slices:
//
//	arr.Uniq([]int{1, 2, 1, 3, 2}, false)              // → [1 2 3]
//	arr.Intersection([]int{1, 2, 3}, []int{2, 3, 4})   // → [2 3]
//	arr.Difference([]int{1, 2, 3}, []int{2, 3})        // → [1]
//	arr.Zip([]any{"a", "b"}, []any{1})                 // → [[a 1] [b <nil>]]
//	arr.Flatten([]any{1, []any{2, []any{3}}})          // → [1 2 3]
//	arr.SortBy(people, func(p Person) int { return p.Age })
//
// Element equality follows collections.Same: comparable values compare with
// ==, slices, maps and functions by identity.
//
// # Plain map merges
//
// Extend and Defaults merge ordinary Go maps in place. Use
// collections.Extend and collections.Defaults when insertion order matters.
package arr
