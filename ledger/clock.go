package ledger

import "time"

// Clock is the time source read when a block is created.
type Clock func() time.Time

// SystemClock reads the local wall clock.
var SystemClock Clock = time.Now

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// StepClock returns a clock that reports start on its first read and moves
// forward by step on every following read.
func StepClock(start time.Time, step time.Duration) Clock {
	next := start
	return func() time.Time {
		t := next
		next = next.Add(step)
		return t
	}
}
