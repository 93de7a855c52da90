package collections_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/hasbyte1/go-underbar/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func ints(ns ...int) collections.Sequence[int] { return collections.Seq(ns...) }

func abc() *collections.Mapping[string, int] {
	return collections.MappingOf(
		collections.Pair[string, int]{First: "a", Second: 1},
		collections.Pair[string, int]{First: "b", Second: 2},
		collections.Pair[string, int]{First: "c", Second: 3},
	)
}

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Sequence
// ─────────────────────────────────────────────────────────────────────────────

func TestSeq(t *testing.T) {
	s := collections.Seq(1, 2, 3)
	assertSlice(t, s, []int{1, 2, 3})
	if s.Kind() != collections.KindSequence {
		t.Fatalf("Kind = %v; want sequence", s.Kind())
	}
	if s.Count() != 3 {
		t.Fatalf("Count = %d; want 3", s.Count())
	}
}

func TestFromSlice(t *testing.T) {
	src := []string{"a", "b", "c"}
	s := collections.FromSlice(src)
	src[0] = "z" // mutate original – should not affect the sequence
	if s[0] != "a" {
		t.Fatal("FromSlice did not copy the slice")
	}
}

func TestSequenceAllOrder(t *testing.T) {
	var keys, vals []int
	for i, v := range ints(10, 20, 30).All() {
		keys = append(keys, i)
		vals = append(vals, v)
	}
	assertSlice(t, keys, []int{0, 1, 2})
	assertSlice(t, vals, []int{10, 20, 30})
}

func TestSequenceAllStopsEarly(t *testing.T) {
	n := 0
	for range ints(1, 2, 3, 4).All() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("visited %d; want 2", n)
	}
}

func TestSequenceString(t *testing.T) {
	if s := ints(1, 2, 3).String(); s != "[1,2,3]" {
		t.Fatalf("String() = %q; want [1,2,3]", s)
	}
}

func TestIdentity(t *testing.T) {
	if collections.Identity(42) != 42 {
		t.Fatal("Identity changed its argument")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Mapping
// ─────────────────────────────────────────────────────────────────────────────

func TestMappingInsertionOrder(t *testing.T) {
	m := collections.NewMapping[string, int]()
	m.Set("z", 1)
	m.Set("a", 2)
	m.Set("m", 3)
	m.Set("a", 4) // overwrite keeps position
	assertSlice(t, m.Keys(), []string{"z", "a", "m"})
	assertSlice(t, m.Values(), []int{1, 4, 3})
	if m.Kind() != collections.KindMapping {
		t.Fatalf("Kind = %v; want mapping", m.Kind())
	}
}

func TestMappingZeroValue(t *testing.T) {
	var m collections.Mapping[string, bool]
	m.Set("ok", true)
	if v, ok := m.Get("ok"); !ok || !v {
		t.Fatalf("Get = %v, %v; want true, true", v, ok)
	}
}

func TestMappingGetHas(t *testing.T) {
	m := abc()
	if v, ok := m.Get("b"); !ok || v != 2 {
		t.Fatalf("Get(b) = %v, %v; want 2, true", v, ok)
	}
	if _, ok := m.Get("zz"); ok {
		t.Fatal("Get missing key should return false")
	}
	if !m.Has("a") || m.Has("zz") {
		t.Fatal("Has failed")
	}
}

func TestMappingOfRepeatedKey(t *testing.T) {
	m := collections.MappingOf(
		collections.Pair[string, int]{First: "a", Second: 1},
		collections.Pair[string, int]{First: "b", Second: 2},
		collections.Pair[string, int]{First: "a", Second: 3},
	)
	assertSlice(t, m.Keys(), []string{"a", "b"})
	assertSlice(t, m.Values(), []int{3, 2})
}

func TestMappingKeysIsCopy(t *testing.T) {
	m := abc()
	keys := m.Keys()
	keys[0] = "mutated"
	if m.Keys()[0] != "a" {
		t.Fatal("Keys exposed internal storage")
	}
}

func TestMappingCloneIndependent(t *testing.T) {
	m := abc()
	cp := m.Clone()
	cp.Set("d", 4)
	if m.Has("d") || m.Count() != 3 {
		t.Fatal("Clone shares storage with the original")
	}
}

func TestFromMap(t *testing.T) {
	m := collections.FromMap(map[string]int{"x": 1, "y": 2})
	got := m.ToMap()
	if len(got) != 2 || got["x"] != 1 || got["y"] != 2 {
		t.Fatalf("FromMap/ToMap = %v", got)
	}
}

func TestMappingJSON(t *testing.T) {
	b, err := json.Marshal(abc())
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"a":1,"b":2,"c":3}` {
		t.Fatalf("MarshalJSON = %s", b)
	}
	if s := abc().String(); s != `{"a":1,"b":2,"c":3}` {
		t.Fatalf("String() = %s", s)
	}
}

func TestMappingJSONError(t *testing.T) {
	m := collections.NewMapping[string, any]()
	m.Set("ch", make(chan int))
	if _, err := m.MarshalJSON(); err == nil {
		t.Fatal("expected marshal error for channel value")
	}
}

func TestPairString(t *testing.T) {
	p := collections.Pair[string, int]{First: "hello", Second: 42}
	got := fmt.Sprint(p)
	want := "(hello, 42)"
	if got != want {
		t.Fatalf("Pair.String() = %q; want %q", got, want)
	}
}

func TestKindString(t *testing.T) {
	cases := map[collections.Kind]string{
		collections.KindSequence: "sequence",
		collections.KindMapping:  "mapping",
		collections.Kind(0):      "unknown",
	}
	for k, want := range cases {
		if k.String() != want {
			t.Errorf("Kind(%d).String() = %q; want %q", k, k.String(), want)
		}
	}
}
