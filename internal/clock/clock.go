// Package clock provides the monotonic clock boundary adapter used to
// pace the tick driver.
package clock

import "time"

// Wall is a Clock backed by the real wall clock.
type Wall struct{}

// Now returns the current monotonic time.
func (Wall) Now() time.Time { return time.Now() }

// SleepUntil blocks until t, or returns immediately if t has passed.
func (Wall) SleepUntil(t time.Time) {
	if d := time.Until(t); d > 0 {
		time.Sleep(d)
	}
}
