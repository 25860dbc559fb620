package core

import "time"

//go:generate go tool mockgen -destination=mocks/clock.go -package=mocks . Clock

// Clock reports a monotonic timestamp in milliseconds.
// Cooldowns, timed effects and spawn intervals are all measured against it.
type Clock interface {
	NowMs() int64
}

// SystemClock measures milliseconds elapsed since it was created.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock starting at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// NowMs returns milliseconds since the clock was created.
func (c *SystemClock) NowMs() int64 {
	return time.Since(c.start).Milliseconds()
}
