// Package funcs provides function decorators that carry private state across
// calls: Once, Memoize, Delay and Throttle.
//
// # Decorators
//
// Every decorator returns a new function wrapping the original. State lives
// in the value created at wrap time, never in package globals, and is guarded
// by a mutex so wrapped functions may be called from several goroutines.
//
//	init := funcs.Once(func(args ...any) *DB { return open(args[0].(string)) })
//	fib  := funcs.Memoize(slowFib)
//	save := funcs.Throttle(flush, 100*time.Millisecond)
//	funcs.Delay(notify, time.Second, "ready")
//
// Memoize and Throttle also expose their state objects, [Memo] and
// [Throttler], for callers that want introspection.
//
// # Time
//
// Delay and Throttle read time through a [Clock]. The default is
// [SystemClock]; tests pass a manual clock from the fakeclock sub-package
// with [WithClock].
//
// # Configuration
//
// [Config] is loaded from YAML and converted into [Option] values:
//
//	log_level: debug        # empty disables decorator logging
//	memo_hasher: blake2b    # xxh3 (default) or blake2b
//	memo_hash_key: s3cret   # blake2b only, at most 64 bytes
//	memo_hash_seed: 7       # xxh3 only
package funcs
