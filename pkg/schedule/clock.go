// Package schedule runs timer callbacks against a virtual clock, so the same
// animation can be driven by wall time, by a game loop, or step by step.
package schedule

import (
	"container/heap"
	"time"
)

// Handle identifies a periodic callback.
type Handle uint64

type event struct {
	at     time.Duration
	seq    uint64
	fn     func()
	handle Handle
	period time.Duration
}

type queue []*event

func (q queue) Len() int { return len(q) }

func (q queue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q queue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *queue) Push(x any) { *q = append(*q, x.(*event)) }

func (q *queue) Pop() any {
	old := *q
	e := old[len(old)-1]
	old[len(old)-1] = nil
	*q = old[:len(old)-1]
	return e
}

// A Clock holds scheduled callbacks and fires them as time is advanced.
//
// Callbacks run synchronously inside Advance, one at a time, in the order they
// fall due; ties fire in the order they were scheduled. A Clock is not safe for
// concurrent use.
type Clock struct {
	now     time.Duration
	seq     uint64
	handles Handle
	events  queue

	// live holds periodic handles that have not been cancelled.
	live map[Handle]bool
}

func NewClock() *Clock {
	return &Clock{live: make(map[Handle]bool)}
}

// Now is the time elapsed on the clock.
func (c *Clock) Now() time.Duration {
	return c.now
}

// StartPeriodic calls fn every interval until the returned Handle is cancelled.
// Intervals shorter than a nanosecond are raised to one.
func (c *Clock) StartPeriodic(interval time.Duration, fn func()) Handle {
	if interval <= 0 {
		interval = time.Nanosecond
	}

	c.handles++
	h := c.handles
	c.live[h] = true
	c.push(&event{at: c.now + interval, fn: fn, handle: h, period: interval})
	return h
}

// CancelPeriodic stops a periodic callback. Cancelling an unknown or already
// cancelled handle does nothing.
func (c *Clock) CancelPeriodic(h Handle) {
	delete(c.live, h)
}

// Delay calls fn once, d from now.
func (c *Clock) Delay(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	c.push(&event{at: c.now + d, fn: fn})
}

// Pending is the number of callbacks waiting to fire.
func (c *Clock) Pending() int {
	n := 0
	for _, e := range c.events {
		if e.handle == 0 || c.live[e.handle] {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, firing every callback that falls due.
// It returns the number of callbacks fired.
func (c *Clock) Advance(d time.Duration) int {
	target := c.now + d
	fired := 0

	for len(c.events) > 0 && c.events[0].at <= target {
		e := heap.Pop(&c.events).(*event)
		c.now = e.at

		if e.handle != 0 {
			if !c.live[e.handle] {
				continue
			}
			e.at += e.period
			c.push(e)
		}

		e.fn()
		fired++
	}

	c.now = target
	return fired
}

func (c *Clock) push(e *event) {
	c.seq++
	e.seq = c.seq
	heap.Push(&c.events, e)
}
