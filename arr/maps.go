package arr

// ─────────────────────────────────────────────────────────────────────────────
// Plain map merges
//
// These mirror collections.Extend and collections.Defaults for ordinary Go
// maps, where key order is not tracked.
//
//	Extend(map[string]int{"a": 1}, map[string]int{"a": 2, "b": 3})   → {a:2 b:3}
//	Defaults(map[string]int{"a": 1}, map[string]int{"a": 2, "b": 3}) → {a:1 b:3}
// ─────────────────────────────────────────────────────────────────────────────

// Extend copies every entry of each source into dst, in argument order, so
// later sources overwrite earlier ones. dst is mutated and returned; it must
// not be nil unless there is nothing to copy.
func Extend[M ~map[K]V, K comparable, V any](dst M, srcs ...M) M {
	for _, src := range srcs {
		for k, v := range src {
			dst[k] = v
		}
	}
	return dst
}

// Defaults copies entries from the sources into dst only for keys dst does
// not contain yet. Keys present with a zero value are kept. The first
// source that supplies a key wins.
func Defaults[M ~map[K]V, K comparable, V any](dst M, srcs ...M) M {
	for _, src := range srcs {
		for k, v := range src {
			if _, ok := dst[k]; !ok {
				dst[k] = v
			}
		}
	}
	return dst
}
