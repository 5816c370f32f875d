package ledger

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/vesting-ledger/internal/domain/error"
	mockcore "github.com/amirhossein-jamali/vesting-ledger/mocks/port/core"
)

func TestAccountLocker_SerialisesSameAccount(t *testing.T) {
	mockLogger := mockcore.NewMockLogger(t)
	locker := NewAccountLocker(mockLogger, time.Second)

	var inside int32
	var maxInside int32
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := locker.Lock(context.Background(), "alice")
			if !assert.NoError(t, err) {
				return
			}

			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
}

func TestAccountLocker_DifferentAccountsRunConcurrently(t *testing.T) {
	locker := NewAccountLocker(mockcore.NewMockLogger(t), time.Second)

	unlockAlice, err := locker.Lock(context.Background(), "alice")
	require.NoError(t, err)
	defer unlockAlice()

	done := make(chan struct{})
	go func() {
		unlockBob, err := locker.Lock(context.Background(), "bob")
		if err == nil {
			unlockBob()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("locking bob should not wait for alice")
	}
}

func TestAccountLocker_OppositeOrderDoesNotDeadlock(t *testing.T) {
	locker := NewAccountLocker(mockcore.NewMockLogger(t), 0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			unlock, err := locker.Lock(context.Background(), "alice", "bob")
			if assert.NoError(t, err) {
				unlock()
			}
		}()
		go func() {
			defer wg.Done()
			unlock, err := locker.Lock(context.Background(), "bob", "alice")
			if assert.NoError(t, err) {
				unlock()
			}
		}()
	}

	finished := make(chan struct{})
	go func() {
		wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("lock acquisition deadlocked")
	}
}

func TestAccountLocker_Timeout(t *testing.T) {
	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()
	locker := NewAccountLocker(mockLogger, 20*time.Millisecond)

	unlock, err := locker.Lock(context.Background(), "alice")
	require.NoError(t, err)
	defer unlock()

	_, err = locker.Lock(context.Background(), "bob", "alice")
	assert.ErrorIs(t, err, errs.ErrAccountLocked)

	// bob was released when acquiring alice failed
	unlockBob, err := locker.Lock(context.Background(), "bob")
	require.NoError(t, err)
	unlockBob()
}

func TestAccountLocker_ContextCanceled(t *testing.T) {
	locker := NewAccountLocker(mockcore.NewMockLogger(t), 0)

	unlock, err := locker.Lock(context.Background(), entity.Address("alice"))
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = locker.Lock(ctx, "alice")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
