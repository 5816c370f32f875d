package core

import "time"

// Clock abstracts time for the domain so settlement can be driven deterministically in tests
type Clock interface {
	// Now returns the current wall-clock time
	Now() time.Time
	// Since returns the time elapsed since t
	Since(t time.Time) time.Duration
}
