package animation

import "time"

// Clock provides time and countdowns for animations. The default
// implementation uses system time. Tests can inject a fake clock via
// SetClock or WithClock to control animation timing deterministically.
type Clock interface {
	Now() time.Time

	// After returns a channel that receives exactly one value once d has
	// elapsed. The channel must have room for that value so the sender
	// never blocks on a consumer that polls.
	After(d time.Duration) <-chan time.Time
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// clock is the package-level time source, replaceable for testing.
var clock Clock = realClock{}

// SetClock replaces the default clock used by managers created afterwards.
// Returns the previous clock so callers can restore it during cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	if c == nil {
		c = realClock{}
	}
	clock = c
	return prev
}

// Now returns the current time from the default clock.
func Now() time.Time { return clock.Now() }
