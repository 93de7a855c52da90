package funcs

import "sync"

// Once returns a function that calls fn on its first invocation, forwarding
// that call's arguments, and returns the same result on every later call
// whatever their arguments.
//
// If fn panics the result is not cached and the next call invokes fn again.
// Concurrent first calls block until one of them completes fn. fn must not
// call the returned function.
func Once[R any](fn func(...any) R) func(...any) R {
	var (
		mu     sync.Mutex
		done   bool
		result R
	)
	return func(args ...any) R {
		mu.Lock()
		defer mu.Unlock()
		if !done {
			result = fn(args...)
			done = true
		}
		return result
	}
}

// OnceErr is [Once] for functions that can fail. A non-nil error is returned
// to the caller and not cached: fn runs again on the next call until it
// succeeds.
func OnceErr[R any](fn func(...any) (R, error)) func(...any) (R, error) {
	var (
		mu     sync.Mutex
		done   bool
		result R
	)
	return func(args ...any) (R, error) {
		mu.Lock()
		defer mu.Unlock()
		if done {
			return result, nil
		}
		r, err := fn(args...)
		if err != nil {
			return r, err
		}
		result, done = r, true
		return result, nil
	}
}
