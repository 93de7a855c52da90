package funcs

import (
	"sync"
	"time"

	plog "github.com/phuslu/log"
)

// Throttler runs fn at most once per wait window, on the leading edge.
//
// The first call while the window is open runs fn immediately and closes the
// window for wait. Calls made while it is closed are dropped: they are not
// queued and fn never sees them.
type Throttler struct {
	mu     sync.Mutex
	fn     func(...any)
	wait   time.Duration
	clock  Clock
	log    *plog.Logger
	openAt time.Time
}

// NewThrottler wraps fn.
func NewThrottler(fn func(...any), wait time.Duration, opts ...Option) *Throttler {
	s := newSettings(opts)
	return &Throttler{fn: fn, wait: wait, clock: s.clock, log: s.log}
}

// Call runs fn with args if the window is open and reports whether it did.
// fn runs without the lock held.
func (t *Throttler) Call(args ...any) bool {
	t.mu.Lock()
	now := t.clock.Now()
	if now.Before(t.openAt) {
		openIn := t.openAt.Sub(now)
		t.mu.Unlock()
		t.log.Debug().Dur("open_in", openIn).Msg("throttle drop")
		return false
	}
	t.openAt = now.Add(t.wait)
	t.mu.Unlock()

	t.log.Trace().Dur("wait", t.wait).Msg("throttle run")
	t.fn(args...)
	return true
}

// OpenAt returns when the window next opens. The zero time means no call has
// run yet.
func (t *Throttler) OpenAt() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.openAt
}

// Throttle returns a function that forwards to fn at most once per wait.
//
//	save := funcs.Throttle(func(...any) { flush() }, 100*time.Millisecond)
func Throttle(fn func(...any), wait time.Duration, opts ...Option) func(...any) {
	t := NewThrottler(fn, wait, opts...)
	return func(args ...any) { t.Call(args...) }
}
