package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	mockcore "github.com/amirhossein-jamali/vesting-ledger/mocks/port/core"
)

func fastRetry(maxRetries int) RetryConfig {
	return RetryConfig{
		MaxRetries:    maxRetries,
		RetryInterval: time.Millisecond,
		MaxInterval:   5 * time.Millisecond,
	}
}

func TestRetryOnTransientError(t *testing.T) {
	serialization := errors.New("ERROR: could not serialize access due to concurrent update")

	t.Run("retries until success", func(t *testing.T) {
		mockLogger := mockcore.NewMockLogger(t)
		mockLogger.EXPECT().Warn("Transient database error, retrying operation", mock.Anything).Times(2)

		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(5), func() error {
			calls++
			if calls < 3 {
				return serialization
			}
			return nil
		}, mockLogger)

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("permanent errors are not retried", func(t *testing.T) {
		mockLogger := mockcore.NewMockLogger(t)
		permanent := errors.New("syntax error")

		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(5), func() error {
			calls++
			return permanent
		}, mockLogger)

		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		mockLogger := mockcore.NewMockLogger(t)
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Times(2)
		mockLogger.EXPECT().Error("All retry attempts failed", mock.Anything).Once()

		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(3), func() error {
			calls++
			return serialization
		}, mockLogger)

		assert.ErrorIs(t, err, serialization)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops when the context is done", func(t *testing.T) {
		mockLogger := mockcore.NewMockLogger(t)
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := RetryOnTransientError(ctx, RetryConfig{MaxRetries: 3, RetryInterval: time.Hour, MaxInterval: time.Hour},
			func() error { return serialization }, mockLogger)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 10 * time.Millisecond, MaxInterval: 50 * time.Millisecond}

	assert.Equal(t, 10*time.Millisecond, calculateBackoffWithJitter(0, cfg))
	assert.Equal(t, 40*time.Millisecond, calculateBackoffWithJitter(2, cfg))
	assert.Equal(t, 50*time.Millisecond, calculateBackoffWithJitter(5, cfg))

	cfg.JitterFactor = 0.5
	backoff := calculateBackoffWithJitter(0, cfg)
	assert.GreaterOrEqual(t, backoff, 10*time.Millisecond)
	assert.LessOrEqual(t, backoff, 15*time.Millisecond)
}
