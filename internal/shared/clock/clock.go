// Package clock provides the time source used for request windows and
// response timestamps.
package clock

import "time"

// TimestampLayout is the "YYYY-MM-DD HH:MM:SS" layout used in responses.
const TimestampLayout = "2006-01-02 15:04:05"

// DateLayout is the calendar date layout used on the wire.
const DateLayout = "2006-01-02"

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

// New returns a Clock reading the system time in loc.
// A nil loc means time.Local.
func New(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Fixed is a Clock frozen at a single instant. Used by tests.
type Fixed time.Time

// Now returns the frozen instant.
func (f Fixed) Now() time.Time {
	return time.Time(f)
}
