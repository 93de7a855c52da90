// Package fakeclock provides a manually advanced funcs.Clock for tests.
package fakeclock

import (
	"container/heap"
	"sync"
	"time"

	"github.com/hasbyte1/go-underbar/funcs"
)

// Clock is a funcs.Clock whose time only moves on Advance. Callbacks run
// synchronously inside Advance, on the caller's goroutine.
type Clock struct {
	mu      sync.Mutex
	now     time.Time
	seq     uint64
	pending timerHeap
}

var _ funcs.Clock = (*Clock)(nil)

// New returns a clock reading start.
func New(start time.Time) *Clock {
	return &Clock{now: start}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AfterFunc schedules f to run once the clock has been advanced by at least
// d. A non-positive d runs f on the next Advance, including Advance(0).
func (c *Clock) AfterFunc(d time.Duration, f func()) funcs.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &Timer{clock: c, at: c.now.Add(d), seq: c.seq, f: f, index: -1}
	heap.Push(&c.pending, t)
	return t
}

// Advance moves the clock forward by d and runs every callback that falls
// due, earliest deadline first and in scheduling order for equal deadlines.
// During a callback Now reports that callback's deadline. Callbacks may
// schedule further timers; those falling due within d run in the same
// Advance.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	end := c.now.Add(d)
	for len(c.pending) > 0 && !c.pending[0].at.After(end) {
		t := heap.Pop(&c.pending).(*Timer)
		if t.at.After(c.now) {
			c.now = t.at
		}
		c.mu.Unlock()
		t.f()
		c.mu.Lock()
	}
	c.now = end
	c.mu.Unlock()
}

// Pending returns the number of scheduled callbacks that have not run or
// been stopped.
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// Timer is a callback scheduled on a [Clock].
type Timer struct {
	clock *Clock
	at    time.Time
	seq   uint64
	f     func()
	index int
}

// Stop cancels the callback. It reports false if the callback already ran
// or was stopped.
func (t *Timer) Stop() bool {
	c := t.clock
	c.mu.Lock()
	defer c.mu.Unlock()
	if t.index < 0 {
		return false
	}
	heap.Remove(&c.pending, t.index)
	return true
}

type timerHeap []*Timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].at.Equal(h[j].at) {
		return h[i].seq < h[j].seq
	}
	return h[i].at.Before(h[j].at)
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*Timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}
