package particles

import "time"

// Clock is the source of timestamps for computing frame deltas.
type Clock interface {
	Now() time.Time
}

// SystemClock returns the real time, with a monotonic clock reading.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when told to. Used by tests and by the terminal
// player when it is paused.
type ManualClock struct {
	current time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{current: start}
}

func (c *ManualClock) Now() time.Time {
	return c.current
}

func (c *ManualClock) Set(t time.Time) {
	c.current = t
}

func (c *ManualClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
