package collections

import "iter"

// Kind tags the concrete shape behind a [Collection].
type Kind uint8

const (
	// KindSequence marks an ordered, index-addressable [Sequence].
	KindSequence Kind = iota + 1
	// KindMapping marks a key/value [Mapping].
	KindMapping
)

// String returns "sequence", "mapping" or "unknown".
func (k Kind) String() string {
	switch k {
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Collection is the interface satisfied by [Sequence] and [*Mapping].
//
// A Sequence is a Collection[int, V] whose keys are the element indices; a
// Mapping is a Collection[K, V] whose keys are its own keys. Accept a
// Collection in your own helpers to stay shape-agnostic, exactly as the
// polymorphic operations of this package do.
//
// Portability note: this maps to the Iterable protocol in Python or
// TypeScript with entries() yielding [key, value] pairs.
type Collection[K comparable, V any] interface {
	// Kind reports which variant the value is.
	Kind() Kind

	// Count returns the number of elements.
	Count() int

	// All enumerates (key, value) pairs in index order for a Sequence and
	// insertion order for a Mapping.
	All() iter.Seq2[K, V]
}

// Visitor is called once per element by [Each].
type Visitor[K comparable, V any] func(value V, key K, c Collection[K, V])
