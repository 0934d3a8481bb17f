package search

import "time"

// Clock abstracts wall-clock reads so the Expander's budget loop (§4.7,
// §4.7.2) can be driven deterministically in tests. Production code uses
// SystemClock; tests inject a stepped fake.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock, backed by time.Now.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// elapsedMs returns the milliseconds elapsed from start to now. A caller
// that supplied a future start, or a monotonic clock that wrapped, yields a
// negative result here, which the Expander treats as "time exhausted"
// (§5's clock-wrap guard).
func elapsedMs(start, now time.Time) float64 {
	return float64(now.Sub(start)) / float64(time.Millisecond)
}
