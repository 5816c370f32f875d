package time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock(t *testing.T) {
	clock := NewRealClock()

	before := time.Now()
	now := clock.Now()

	assert.False(t, now.Before(before))
	assert.GreaterOrEqual(t, clock.Since(before), time.Duration(0))
}

func TestFixedClock(t *testing.T) {
	at := time.Unix(1_700_000_000, 0)
	clock := FixedClock{At: at}

	assert.Equal(t, at, clock.Now())
	assert.Equal(t, 10*time.Second, clock.Since(at.Add(-10*time.Second)))
}
