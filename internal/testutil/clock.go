package testutil

import (
	"sync"
	"time"
)

// DefaultEpoch is the first instant returned by a StepClock created with
// NewStepClock. Scenario transcripts and golden files depend on it.
var DefaultEpoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// StepClock is a deterministic wall clock for tests and scripted scenarios.
//
// Each call to Now returns the current instant and then advances by step,
// so consecutive matches get distinct, increasing start times without
// depending on time.Now.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type StepClock struct {
	mu   sync.Mutex
	next time.Time
	step time.Duration
}

// NewStepClock creates a clock starting at DefaultEpoch that advances one
// minute per call.
func NewStepClock() *StepClock {
	return NewStepClockAt(DefaultEpoch, time.Minute)
}

// NewStepClockAt creates a clock starting at start that advances by step
// per call. A zero step freezes the clock.
func NewStepClockAt(start time.Time, step time.Duration) *StepClock {
	return &StepClock{next: start, step: step}
}

// Now returns the current instant and advances the clock.
//
// Has the signature of time.Now so it can be passed to engine.WithNow.
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.next
	c.next = c.next.Add(c.step)
	return now
}

// Peek returns the instant the next Now call will return.
func (c *StepClock) Peek() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.next
}

// Advance moves the clock forward by d without consuming a tick.
func (c *StepClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.next = c.next.Add(d)
}

// Set moves the clock to t. Used to stage matches at specific times.
func (c *StepClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.next = t
}
