package time

import (
	"time"

	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/core"
)

// RealClock implements core.Clock with the system wall clock
type RealClock struct{}

// NewRealClock creates a new real clock
func NewRealClock() core.Clock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed since t
func (c *RealClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// FixedClock always reports the same instant. It backs deterministic replays and tests.
type FixedClock struct {
	At time.Time
}

// Now returns the fixed instant
func (c FixedClock) Now() time.Time {
	return c.At
}

// Since returns the duration between the fixed instant and t
func (c FixedClock) Since(t time.Time) time.Duration {
	return c.At.Sub(t)
}
