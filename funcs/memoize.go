package funcs

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	plog "github.com/phuslu/log"
)

// sliceTag prefixes keys whose first argument is a slice, so that a slice
// and a string that print alike never share a cache entry.
const sliceTag = "arr:"

// Memo caches the results of fn keyed by a serialization of the argument
// list. The cache grows for the lifetime of the Memo; nothing is evicted.
//
// Keys are the type and %#v rendering of each argument joined with commas.
// This is exact for booleans, numbers, strings and slices of those; pointers
// and other reference values key by address.
type Memo[R any] struct {
	mu      sync.Mutex
	fn      func(...any) (R, error)
	hasher  Hasher
	log     *plog.Logger
	buckets map[uint64][]memoEntry[R]
	size    int
}

type memoEntry[R any] struct {
	key    string
	result R
}

// NewMemo wraps fn. Errors and panics from fn are never cached.
func NewMemo[R any](fn func(...any) (R, error), opts ...Option) *Memo[R] {
	s := newSettings(opts)
	return &Memo[R]{
		fn:      fn,
		hasher:  s.hasher,
		log:     s.log,
		buckets: make(map[uint64][]memoEntry[R]),
	}
}

// Call returns the cached result for args, invoking fn on a miss. fn runs
// with the cache locked, so concurrent misses on any key are serialised and
// fn must not call back into m.
func (m *Memo[R]) Call(args ...any) (R, error) {
	key := memoKey(args)
	sum := m.hasher.Hash(key)

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range m.buckets[sum] {
		if e.key == key {
			m.log.Debug().Uint64("key_hash", sum).Int("size", m.size).Msg("memo hit")
			return e.result, nil
		}
	}
	m.log.Debug().Uint64("key_hash", sum).Int("size", m.size).Msg("memo miss")

	r, err := m.fn(args...)
	if err != nil {
		return r, err
	}
	m.buckets[sum] = append(m.buckets[sum], memoEntry[R]{key: key, result: r})
	m.size++
	return r, nil
}

// Len returns the number of cached results.
func (m *Memo[R]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.size
}

// Memoize returns a function that calls fn once per distinct argument list
// and replays the cached result afterwards.
//
//	square := funcs.Memoize(func(args ...any) int { n := args[0].(int); return n * n })
//	square(4) // computes
//	square(4) // cached
func Memoize[R any](fn func(...any) R, opts ...Option) func(...any) R {
	m := NewMemo(func(args ...any) (R, error) { return fn(args...), nil }, opts...)
	return func(args ...any) R {
		r, _ := m.Call(args...)
		return r
	}
}

// MemoizeErr is [Memoize] for functions that can fail. Failed calls are
// retried on the next invocation with the same arguments.
func MemoizeErr[R any](fn func(...any) (R, error), opts ...Option) func(...any) (R, error) {
	return NewMemo(fn, opts...).Call
}

func memoKey(args []any) string {
	var b strings.Builder
	if len(args) > 0 && args[0] != nil && reflect.TypeOf(args[0]).Kind() == reflect.Slice {
		b.WriteString(sliceTag)
	}
	for i, a := range args {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%T:%#v", a, a)
	}
	return b.String()
}
