package collections

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
)

// Mapping is a key/value table with unique keys that remembers insertion
// order.
//
// Go maps do not define an iteration order, yet reduction without a seed and
// the merge helpers need a stable "first key". Mapping keeps the key order
// alongside a native map. The zero value is an empty, ready-to-use Mapping.
//
// There is no Delete: [Mapping.Set], [Extend] and [Defaults] are the only
// ways to change the key set.
type Mapping[K comparable, V any] struct {
	keys []K
	vals map[K]V
}

// NewMapping creates an empty Mapping.
func NewMapping[K comparable, V any]() *Mapping[K, V] {
	return &Mapping[K, V]{vals: make(map[K]V)}
}

// MappingOf creates a Mapping from pairs in the given order. A repeated key
// keeps its first position and its last value.
//
//	m := collections.MappingOf(
//	    collections.Pair[string, int]{"a", 1},
//	    collections.Pair[string, int]{"b", 2},
//	)
func MappingOf[K comparable, V any](pairs ...Pair[K, V]) *Mapping[K, V] {
	m := &Mapping[K, V]{
		keys: make([]K, 0, len(pairs)),
		vals: make(map[K]V, len(pairs)),
	}
	for _, p := range pairs {
		m.Set(p.First, p.Second)
	}
	return m
}

// FromMap copies a Go map into a new Mapping. The resulting key order is the
// order in which Go happened to range over src, which is unspecified.
func FromMap[K comparable, V any](src map[K]V) *Mapping[K, V] {
	m := &Mapping[K, V]{
		keys: make([]K, 0, len(src)),
		vals: make(map[K]V, len(src)),
	}
	for k, v := range src {
		m.Set(k, v)
	}
	return m
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Set stores value under key. A new key is appended to the iteration order;
// an existing key keeps its position.
func (m *Mapping[K, V]) Set(key K, value V) {
	if m.vals == nil {
		m.vals = make(map[K]V)
	}
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = value
}

// Get returns the value stored under key together with a presence flag.
func (m *Mapping[K, V]) Get(key K) (V, bool) {
	v, ok := m.vals[key]
	return v, ok
}

// Has reports whether the mapping owns key.
func (m *Mapping[K, V]) Has(key K) bool {
	_, ok := m.vals[key]
	return ok
}

// Keys returns a copy of the keys in iteration order.
func (m *Mapping[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// Values returns the values in key iteration order.
func (m *Mapping[K, V]) Values() []V {
	out := make([]V, len(m.keys))
	for i, k := range m.keys {
		out[i] = m.vals[k]
	}
	return out
}

// Pairs returns the entries in iteration order.
func (m *Mapping[K, V]) Pairs() []Pair[K, V] {
	out := make([]Pair[K, V], len(m.keys))
	for i, k := range m.keys {
		out[i] = Pair[K, V]{First: k, Second: m.vals[k]}
	}
	return out
}

// ToMap returns the entries as a plain Go map (order is lost).
func (m *Mapping[K, V]) ToMap() map[K]V {
	out := make(map[K]V, len(m.keys))
	for _, k := range m.keys {
		out[k] = m.vals[k]
	}
	return out
}

// Clone returns a shallow copy that shares no storage with m.
func (m *Mapping[K, V]) Clone() *Mapping[K, V] {
	return MappingOf(m.Pairs()...)
}

// propertyOf resolves a field-name lookup for [Property] when K is string
// (or an interface type that string satisfies).
func (m *Mapping[K, V]) propertyOf(name string) (any, bool) {
	k, ok := any(name).(K)
	if !ok {
		return nil, false
	}
	v, ok := m.vals[k]
	return v, ok
}

// ─────────────────────────────────────────────────────────────────────────────
// Collection implementation
// ─────────────────────────────────────────────────────────────────────────────

// Kind returns [KindMapping].
func (m *Mapping[K, V]) Kind() Kind { return KindMapping }

// Count returns the number of keys.
func (m *Mapping[K, V]) Count() int { return len(m.keys) }

// All enumerates (key, value) pairs in insertion order.
func (m *Mapping[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.vals[k]) {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Serialisation
// ─────────────────────────────────────────────────────────────────────────────

// MarshalJSON encodes the mapping as a JSON object whose members follow the
// insertion order. Keys are rendered with fmt.Sprint.
func (m *Mapping[K, V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(fmt.Sprint(k))
		if err != nil {
			return nil, fmt.Errorf("collections: marshal key %v: %w", k, err)
		}
		vb, err := json.Marshal(m.vals[k])
		if err != nil {
			return nil, fmt.Errorf("collections: marshal value for key %v: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// String returns a JSON representation of the mapping.
// It implements [fmt.Stringer].
func (m *Mapping[K, V]) String() string {
	b, err := m.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", m.Pairs())
	}
	return string(b)
}

// Pair is a key/value entry of a [Mapping], as accepted by [MappingOf] and
// returned by [Mapping.Pairs].
type Pair[K, V any] struct {
	First  K
	Second V
}

// String renders the pair as "(key, value)".
func (p Pair[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
