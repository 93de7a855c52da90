package collections

// Extend copies every key of each source into target, in argument order.
// Later sources overwrite earlier ones and target's own values. Target is
// modified in place and returned.
//
//	m := collections.Extend(
//	    collections.MappingOf(collections.Pair[string, int]{First: "a", Second: 1}),
//	    collections.MappingOf(
//	        collections.Pair[string, int]{First: "a", Second: 2},
//	        collections.Pair[string, int]{First: "b", Second: 3},
//	    ),
//	) // {"a":2,"b":3}
func Extend[K comparable, V any](target *Mapping[K, V], sources ...*Mapping[K, V]) *Mapping[K, V] {
	for _, src := range sources {
		Each[K, V](src, func(v V, k K, _ Collection[K, V]) {
			target.Set(k, v)
		})
	}
	return target
}

// Defaults copies a key from the sources into target only when target does
// not own it at the time of the write, so the first source to supply a
// missing key wins. Target is modified in place and returned.
func Defaults[K comparable, V any](target *Mapping[K, V], sources ...*Mapping[K, V]) *Mapping[K, V] {
	for _, src := range sources {
		Each[K, V](src, func(v V, k K, _ Collection[K, V]) {
			if !target.Has(k) {
				target.Set(k, v)
			}
		})
	}
	return target
}
