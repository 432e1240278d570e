package clock

import "time"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}

// InZone returns a clock whose readings are expressed in loc.
func InZone(c Clock, loc *time.Location) Clock {
	return zonedClock{base: c, loc: loc}
}

type zonedClock struct {
	base Clock
	loc  *time.Location
}

func (z zonedClock) Now() time.Time {
	return z.base.Now().In(z.loc)
}
