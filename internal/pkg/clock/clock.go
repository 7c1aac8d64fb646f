package clock

import "time"

// Clock is the source of "now" for every rule that depends on the wall clock:
// past-date checks, the started-reservation guard and refund tiers.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// LocalNow reads c in loc, the zone calendar days are counted in.
func LocalNow(c Clock, loc *time.Location) time.Time {
	return c.Now().In(loc)
}

// Fixed is a settable clock for tests.
type Fixed struct {
	now time.Time
}

func NewFixed(t time.Time) *Fixed {
	return &Fixed{now: t}
}

func (c *Fixed) Now() time.Time {
	return c.now
}

func (c *Fixed) Set(t time.Time) {
	c.now = t
}

// Advance moves the clock forward by d.
func (c *Fixed) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
