// Package clocktest provides a scripted clock for simulation tests.
package clocktest

// ManualClock is a core.Clock that only moves when told to.
type ManualClock struct {
	now int64
}

// NewManualClock creates a manual clock at the given time.
func NewManualClock(start int64) *ManualClock {
	return &ManualClock{now: start}
}

// NowMs returns the current synthetic time.
func (c *ManualClock) NowMs() int64 {
	return c.now
}

// Advance moves the clock forward by ms milliseconds.
// Negative values are ignored to keep the clock monotonic.
func (c *ManualClock) Advance(ms int64) {
	if ms > 0 {
		c.now += ms
	}
}

// Set jumps the clock to an absolute time, never backwards.
func (c *ManualClock) Set(ms int64) {
	if ms > c.now {
		c.now = ms
	}
}
