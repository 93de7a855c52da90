package collections

import "errors"

// Sentinel errors carried by the panics this package and [arr] raise on
// malformed input. Nothing in the library recovers them; callers that do
// can match with [errors.Is]:
//
//	defer func() {
//	    if err, ok := recover().(error); ok && errors.Is(err, collections.ErrNoSuchMethod) {
//	        // ...
//	    }
//	}()
var (
	// ErrNoSuchMethod is the panic payload when a method looked up by name
	// does not exist on an element.
	ErrNoSuchMethod = errors.New("collections: no such method")

	// ErrIncomparable is the panic payload when two sort criteria cannot be
	// ordered against each other (e.g. a string against a number).
	ErrIncomparable = errors.New("collections: criteria are not comparable")
)
