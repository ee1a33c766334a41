package engine

import "sync/atomic"

// Clock is a monotonic logical clock for match creation order.
//
// Every started match is stamped with a strictly increasing Seq from this
// clock. Seq is the last summary tie-breaker, so ranking stays total even
// when two matches share a wall-clock start time.
//
// Thread-safety: Clock is safe for concurrent use (atomic operations).
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a new clock starting at 0.
func NewClock() *Clock {
	return &Clock{}
}

// NewClockAt creates a new clock starting at a specific sequence number.
func NewClockAt(start int64) *Clock {
	c := &Clock{}
	c.seq.Store(start)
	return c
}

// Next returns the next sequence number and increments the clock.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the current sequence number without incrementing.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}

// Observe moves the clock forward to at least seq. Used when a store
// already holds matches (e.g. a reopened SQLite file), so new matches
// never reuse an existing Seq.
func (c *Clock) Observe(seq int64) {
	for {
		cur := c.seq.Load()
		if seq <= cur {
			return
		}
		if c.seq.CompareAndSwap(cur, seq) {
			return
		}
	}
}
