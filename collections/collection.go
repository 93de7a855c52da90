package collections

import (
	"encoding/json"
	"fmt"
	"iter"
)

// Sequence is an ordered, index-addressable list of values.
//
// It is a plain named slice, so a Sequence converts freely to and from []V:
//
//	s := collections.Seq(1, 2, 3)
//	var raw []int = s
//	back := collections.Sequence[int](raw)
//
// Every operation in this package that produces a Sequence returns a fresh
// backing array; inputs are never modified.
type Sequence[V any] []V

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Seq creates a Sequence from a variadic list of items (copied).
func Seq[V any](items ...V) Sequence[V] {
	return FromSlice(items)
}

// FromSlice creates a Sequence from a slice (the slice is copied).
func FromSlice[V any](items []V) Sequence[V] {
	dst := make(Sequence[V], len(items))
	copy(dst, items)
	return dst
}

// Identity returns v unchanged. It is the default projection wherever one is
// optional.
func Identity[V any](v V) V { return v }

// ─────────────────────────────────────────────────────────────────────────────
// Collection implementation
// ─────────────────────────────────────────────────────────────────────────────

// Kind returns [KindSequence].
func (s Sequence[V]) Kind() Kind { return KindSequence }

// Count returns the number of items.
func (s Sequence[V]) Count() int { return len(s) }

// All enumerates (index, value) pairs in ascending index order.
func (s Sequence[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i := 0; i < len(s); i++ {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}

// ToJSON serialises the sequence to a JSON array.
func (s Sequence[V]) ToJSON() ([]byte, error) {
	return json.Marshal([]V(s))
}

// String returns a JSON representation of the sequence.
// It implements [fmt.Stringer].
func (s Sequence[V]) String() string {
	b, err := s.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", []V(s))
	}
	return string(b)
}
