package funcs

import "time"

// Clock is the time source used by [Delay] and [Throttle].
type Clock interface {
	Now() time.Time
	// AfterFunc runs f once, no earlier than d from now.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending AfterFunc callback.
type Timer interface {
	// Stop prevents the callback from running. It reports false when the
	// callback already ran or was stopped.
	Stop() bool
}

// SystemClock is the wall clock. AfterFunc callbacks run on their own
// goroutine, as with [time.AfterFunc].
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

func (SystemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
