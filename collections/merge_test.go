package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underbar/collections"
)

func kv(pairs ...any) *collections.Mapping[string, any] {
	m := collections.NewMapping[string, any]()
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Set(pairs[i].(string), pairs[i+1])
	}
	return m
}

func TestExtendOverwrites(t *testing.T) {
	target := kv("a", 1)
	got := collections.Extend(target, kv("a", 2, "b", 3))

	require.Same(t, target, got, "Extend must return its target")
	assert.Equal(t, []string{"a", "b"}, got.Keys())
	assert.Equal(t, []any{2, 3}, got.Values())
}

func TestExtendSourcesInOrder(t *testing.T) {
	got := collections.Extend(kv("x", 0), kv("y", 1), kv("y", 2, "z", 3), kv("z", 4))
	assert.Equal(t, map[string]any{"x": 0, "y": 2, "z": 4}, got.ToMap())
	assert.Equal(t, []string{"x", "y", "z"}, got.Keys())
}

func TestExtendNoSources(t *testing.T) {
	target := kv("a", 1)
	collections.Extend(target)
	assert.Equal(t, 1, target.Count())
}

func TestDefaultsKeepsExisting(t *testing.T) {
	target := kv("a", 1)
	got := collections.Defaults(target, kv("a", 2, "b", 3))

	require.Same(t, target, got)
	assert.Equal(t, map[string]any{"a": 1, "b": 3}, got.ToMap())
}

func TestDefaultsFirstSourceWins(t *testing.T) {
	got := collections.Defaults(kv(), kv("k", "first"), kv("k", "second", "j", "only"))
	assert.Equal(t, map[string]any{"k": "first", "j": "only"}, got.ToMap())
	assert.Equal(t, []string{"k", "j"}, got.Keys())
}

func TestDefaultsKeepsZeroValues(t *testing.T) {
	got := collections.Defaults(kv("n", nil, "f", false), kv("n", 1, "f", true))
	assert.Nil(t, got.ToMap()["n"])
	assert.Equal(t, false, got.ToMap()["f"])
}

func TestMergeLeavesSourcesAlone(t *testing.T) {
	src := kv("a", 1)
	collections.Extend(kv("a", 0, "b", 0), src)
	assert.Equal(t, []string{"a"}, src.Keys())
}
