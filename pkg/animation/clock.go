package animation

import "time"

// Clock provides time for tickers. The default implementation uses system
// time. Tests can inject a manual clock via SetClock to control frame
// timing deterministically.
type Clock interface {
	Now() time.Time
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// clock is the package-level time source, replaceable for testing.
var clock Clock = realClock{}

// SetClock replaces the ticker clock. Returns the previous clock so callers
// can restore it during cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }

// ManualClock is a Clock that only moves when told to. Useful with
// [SetClock] for deterministic ticker tests.
type ManualClock struct {
	current time.Time
}

// NewManualClock creates a manual clock starting at the given time.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{current: start}
}

func (c *ManualClock) Now() time.Time { return c.current }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
