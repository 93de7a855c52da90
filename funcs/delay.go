package funcs

import "time"

// Delay schedules a single fn(args...) no earlier than wait from now on the
// system clock and returns immediately. The call runs on a timer goroutine;
// there is no way to cancel it.
func Delay(fn func(...any), wait time.Duration, args ...any) {
	DelayOn(SystemClock{}, fn, wait, args...)
}

// DelayOn is [Delay] on an explicit clock.
func DelayOn(clock Clock, fn func(...any), wait time.Duration, args ...any) {
	args = append([]any(nil), args...)
	clock.AfterFunc(wait, func() { fn(args...) })
}
