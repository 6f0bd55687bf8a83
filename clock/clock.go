// Package clock lets the tick loop and the motion controller read the time
// through an interface, so tests can drive them with a fake one.
package clock

import (
	"time"
)

type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// Real reads the system clock.
type Real struct{}

func (Real) Now() time.Time {
	return time.Now()
}

func (Real) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// Mock only moves when told to. It is not safe for concurrent use, which is
// fine since nothing that reads it is either.
type Mock struct {
	now time.Time
}

func NewMock(t time.Time) *Mock {
	return &Mock{now: t}
}

func (c *Mock) Now() time.Time {
	return c.now
}

func (c *Mock) Since(t time.Time) time.Duration {
	return c.now.Sub(t)
}

func (c *Mock) Set(t time.Time) {
	c.now = t
}

// Advance moves the clock forward by d, and returns the new time.
func (c *Mock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}
