package funcs

import "errors"

// Sentinel errors returned by configuration loading.
//
// Use [errors.Is] for comparisons:
//
//	cfg, err := funcs.ParseConfig(data)
//	if errors.Is(err, funcs.ErrUnknownHasher) {
//	    // memo_hasher names an unsupported algorithm
//	}
var (
	// ErrInvalidConfig is returned when a configuration document cannot be
	// decoded or holds an out-of-range value.
	ErrInvalidConfig = errors.New("funcs: invalid configuration")

	// ErrUnknownHasher is returned when a hasher name is not one of the
	// built-in [HasherName] values.
	ErrUnknownHasher = errors.New("funcs: unknown memo hasher")
)
