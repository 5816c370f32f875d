package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/vesting-ledger/internal/domain/error"
)

func TestAccount_DebitRespectsLocks(t *testing.T) {
	acc := NewAccount("alice")
	require.NoError(t, acc.AddLocks([]LockEntry{absolute(100, 10), absolute(200, 20)}))

	assert.Equal(t, uint64(300), acc.Balance().Uint64())
	assert.Equal(t, uint64(300), acc.LockedBalance().Uint64())
	assert.True(t, acc.FreeBalance().IsZero())

	err := acc.Debit(uint256.NewInt(1))
	var detailed *errs.InsufficientFundsError
	require.True(t, errors.As(err, &detailed))
	assert.Equal(t, "alice", detailed.Address)
	assert.Equal(t, "1", detailed.Requested)
	assert.Equal(t, "0", detailed.Available)
	assert.Equal(t, "300", detailed.Locked)

	listing := int64(0)
	released, changed := acc.Settle(10, &listing)
	assert.Equal(t, 1, released)
	assert.True(t, changed)

	require.NoError(t, acc.Debit(uint256.NewInt(100)))
	assert.Equal(t, uint64(200), acc.Balance().Uint64())
	assert.ErrorIs(t, acc.Debit(uint256.NewInt(1)), errs.ErrInsufficientFunds)
}

func TestAccount_SettleWithoutListing(t *testing.T) {
	acc := NewAccount("alice")
	require.NoError(t, acc.AddLocks([]LockEntry{relative(100, 0)}))

	released, changed := acc.Settle(1<<40, nil)
	assert.Equal(t, 0, released)
	assert.False(t, changed)
	assert.Equal(t, uint64(100), acc.LockedBalance().Uint64())

	listing := int64(500)
	released, changed = acc.Settle(500, &listing)
	assert.Equal(t, 1, released, "offset zero releases at the listing moment")
	assert.True(t, changed)
	assert.True(t, acc.LockedBalance().IsZero())
}

func TestAccount_CreditOverflow(t *testing.T) {
	acc := NewAccount("alice")
	require.NoError(t, acc.Credit(new(uint256.Int).SetAllOne()))

	assert.ErrorIs(t, acc.Credit(uint256.NewInt(1)), errs.ErrAmountOverflow)
}

func TestAccount_Allowances(t *testing.T) {
	acc := NewAccount("alice")
	acc.SetAllowance("bob", uint256.NewInt(50))

	require.NoError(t, acc.SpendAllowance("bob", uint256.NewInt(20)))
	assert.Equal(t, uint64(30), acc.Allowance("bob").Uint64())

	err := acc.SpendAllowance("bob", uint256.NewInt(31))
	assert.ErrorIs(t, err, errs.ErrInsufficientAllowance)

	require.NoError(t, acc.SpendAllowance("bob", uint256.NewInt(30)))
	assert.Empty(t, acc.Allowances(), "exhausted allowances are dropped")

	assert.ErrorIs(t, acc.SpendAllowance("carol", uint256.NewInt(1)), errs.ErrInsufficientAllowance)
}

func TestRestoreAccount(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	acc, err := RestoreAccount("alice", uint256.NewInt(300),
		[]LockEntry{absolute(200, 20), absolute(100, 10)},
		map[Address]*uint256.Int{"bob": uint256.NewInt(5), "carol": uint256.NewInt(0)},
		now)
	require.NoError(t, err)

	assert.Equal(t, []int64{10, 20}, releaseTimes(acc.Schedule()))
	assert.Equal(t, map[Address]*uint256.Int{"bob": uint256.NewInt(5)}, acc.Allowances())
	assert.Equal(t, now, acc.UpdatedAt)

	_, err = RestoreAccount("alice", uint256.NewInt(10), []LockEntry{absolute(11, 1)}, nil, now)
	assert.ErrorIs(t, err, errs.ErrInvalidArguments)
}

func TestAccount_CloneIsIndependent(t *testing.T) {
	acc := NewAccount("alice")
	require.NoError(t, acc.Credit(uint256.NewInt(10)))
	acc.SetAllowance("bob", uint256.NewInt(1))

	clone := acc.Clone()
	require.NoError(t, clone.Debit(uint256.NewInt(10)))
	clone.SetAllowance("bob", uint256.NewInt(0))
	require.NoError(t, clone.AddLocks([]LockEntry{absolute(1, 1)}))

	assert.Equal(t, uint64(10), acc.Balance().Uint64())
	assert.Equal(t, uint64(1), acc.Allowance("bob").Uint64())
	assert.Equal(t, 0, acc.Schedule().Len())
}

func TestNewAccountView(t *testing.T) {
	acc := NewAccount("alice")
	require.NoError(t, acc.Credit(uint256.NewInt(50)))
	require.NoError(t, acc.AddLocks([]LockEntry{absolute(20, 100)}))

	view := NewAccountView(acc)

	assert.Equal(t, uint64(70), view.Balance.Uint64())
	assert.Equal(t, uint64(20), view.LockedBalance.Uint64())
	assert.Equal(t, uint64(50), view.FreeBalance.Uint64())
	require.NotNil(t, view.MinReleaseTime)
	assert.Equal(t, int64(100), view.MinReleaseTimeOrZero())

	empty := NewAccountView(NewAccount("bob"))
	assert.Nil(t, empty.MinReleaseTime)
	assert.Equal(t, int64(0), empty.MinReleaseTimeOrZero())
}
