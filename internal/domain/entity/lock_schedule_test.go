package entity

import (
	"math"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/vesting-ledger/internal/domain/error"
)

func absolute(amount uint64, releaseTime int64) LockEntry {
	return LockEntry{Amount: uint256.NewInt(amount), ReleaseTime: releaseTime}
}

func relative(amount uint64, offset int64) LockEntry {
	return LockEntry{Amount: uint256.NewInt(amount), ReleaseTime: offset, Relative: true}
}

func releaseTimes(s *LockSchedule) []int64 {
	out := make([]int64, 0, s.Len())
	for _, e := range s.Entries() {
		out = append(out, e.ReleaseTime)
	}
	return out
}

func TestLockSchedule_Insert(t *testing.T) {
	t.Run("Keeps entries sorted", func(t *testing.T) {
		s := &LockSchedule{}
		for _, ts := range []int64{30, 10, 20, 5, 40} {
			require.NoError(t, s.Insert(absolute(1, ts)))
		}
		assert.Equal(t, []int64{5, 10, 20, 30, 40}, releaseTimes(s))
	})

	t.Run("Ties keep insertion order", func(t *testing.T) {
		s := &LockSchedule{}
		require.NoError(t, s.Insert(absolute(1, 10)))
		require.NoError(t, s.Insert(absolute(2, 10)))
		require.NoError(t, s.Insert(absolute(3, 5)))
		require.NoError(t, s.Insert(absolute(4, 10)))

		var got []uint64
		for _, e := range s.Entries() {
			got = append(got, e.Amount.Uint64())
		}
		assert.Equal(t, []uint64{3, 1, 2, 4}, got)
	})

	t.Run("Rejects zero and nil amounts", func(t *testing.T) {
		s := &LockSchedule{}
		assert.ErrorIs(t, s.Insert(absolute(0, 10)), errs.ErrInvalidArguments)
		assert.ErrorIs(t, s.Insert(LockEntry{ReleaseTime: 10}), errs.ErrInvalidArguments)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("Rejects mixing relative and absolute entries", func(t *testing.T) {
		s := &LockSchedule{}
		require.NoError(t, s.Insert(relative(1, 10)))
		assert.ErrorIs(t, s.Insert(absolute(1, 10)), errs.ErrInternalServer)
	})
}

func TestLockSchedule_Settle(t *testing.T) {
	s, err := NewLockSchedule([]LockEntry{absolute(100, 10), absolute(200, 20), absolute(300, 30)})
	require.NoError(t, err)

	released, count := s.Settle(9)
	assert.True(t, released.IsZero())
	assert.Equal(t, 0, count)
	assert.Equal(t, uint64(600), s.LockedSum().Uint64())

	released, count = s.Settle(20)
	assert.Equal(t, uint64(300), released.Uint64())
	assert.Equal(t, 2, count)
	assert.Equal(t, uint64(300), s.LockedSum().Uint64())

	minRelease, ok := s.MinReleaseTime()
	assert.True(t, ok)
	assert.Equal(t, int64(30), minRelease)

	// settling again at the same instant is a no-op
	released, count = s.Settle(20)
	assert.True(t, released.IsZero())
	assert.Equal(t, 0, count)

	released, count = s.Settle(1_000)
	assert.Equal(t, uint64(300), released.Uint64())
	assert.Equal(t, 1, count)
	assert.Equal(t, 0, s.Len())

	_, ok = s.MinReleaseTime()
	assert.False(t, ok)
}

func TestLockSchedule_RelativeEntries(t *testing.T) {
	s := &LockSchedule{}
	require.NoError(t, s.Insert(relative(100, 15)))
	require.NoError(t, s.Insert(relative(200, 10)))

	assert.True(t, s.IsRelative())
	_, ok := s.MinReleaseTime()
	assert.False(t, ok, "relative entries are not counting down")

	released, count := s.Settle(1 << 40)
	assert.True(t, released.IsZero(), "relative entries never release")
	assert.Equal(t, 0, count)

	assert.True(t, s.Rebase(1_000))
	assert.False(t, s.IsRelative())
	assert.Equal(t, []int64{1_010, 1_015}, releaseTimes(s))

	assert.False(t, s.Rebase(2_000), "rebasing twice has no effect")
	assert.Equal(t, []int64{1_010, 1_015}, releaseTimes(s))

	released, _ = s.Settle(1_010)
	assert.Equal(t, uint64(200), released.Uint64())
	assert.Equal(t, uint64(100), s.LockedSum().Uint64())
}

func TestLockSchedule_RebaseSaturates(t *testing.T) {
	s := &LockSchedule{}
	require.NoError(t, s.Insert(relative(100, 10)))
	require.NoError(t, s.Insert(relative(500, math.MaxInt64-5)))

	assert.True(t, s.Rebase(1_700_000_000))
	assert.Equal(t, []int64{1_700_000_010, math.MaxInt64}, releaseTimes(s))

	released, _ := s.Settle(1_700_000_001)
	assert.True(t, released.IsZero())

	released, count := s.Settle(1_700_000_010)
	assert.Equal(t, uint64(100), released.Uint64())
	assert.Equal(t, 1, count)
	assert.Equal(t, uint64(500), s.LockedSum().Uint64(), "far offset stays locked")
}

func TestLockSchedule_CloneIsIndependent(t *testing.T) {
	s, err := NewLockSchedule([]LockEntry{absolute(100, 10)})
	require.NoError(t, err)

	clone := s.Clone()
	require.NoError(t, clone.Insert(absolute(5, 1)))
	clone.Entries()[0].Amount.SetUint64(0)

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, uint64(100), s.LockedSum().Uint64())

	var nilSchedule *LockSchedule
	assert.Equal(t, 0, nilSchedule.Clone().Len())
}
