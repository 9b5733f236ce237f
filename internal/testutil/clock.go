package testutil

import "time"

// FixedClock is a clock pinned to an instant, advanced only by hand.
type FixedClock struct {
	now time.Time
}

func NewFixedClock(now time.Time) *FixedClock {
	return &FixedClock{now: now}
}

func (c *FixedClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward (or backward, with a negative d).
func (c *FixedClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Set pins the clock to an absolute instant.
func (c *FixedClock) Set(now time.Time) {
	c.now = now
}
