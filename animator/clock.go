package animator

import "time"

// Clock is the time source the animator reads once per frame and on every
// pointer event.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock, including its monotonic component.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when told to. Used by tests and by replays of a
// recorded frame sequence.
type ManualClock struct {
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	return c.now
}

func (c *ManualClock) Set(t time.Time) {
	c.now = t
}

func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
