package usecase

import (
	"context"

	"github.com/holiman/uint256"

	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/entity"
)

// LockState is the pending schedule of an account
type LockState struct {
	// MinReleaseTime is nil when nothing is counting down
	MinReleaseTime *int64
	Entries        []entity.LockEntry
}

// TransferRequest is one (recipient, amount) pair
type TransferRequest struct {
	To     entity.Address
	Amount *uint256.Int
}

// LedgerUseCase defines the balance engine operations.
//
// Every read on an account settles it first: released lock entries are pruned and
// the pruned state is stored. Reads are therefore not side-effect free.
type LedgerUseCase interface {
	// Settle prunes released entries for addr and returns the resulting view
	Settle(ctx context.Context, addr entity.Address) (*entity.AccountView, error)
	// BalanceOf returns the total balance, locked part included
	BalanceOf(ctx context.Context, addr entity.Address) (*uint256.Int, error)
	// LockedBalanceOf returns the part of the balance that is still locked
	LockedBalanceOf(ctx context.Context, addr entity.Address) (*uint256.Int, error)
	// LockStateOf returns the pending lock entries in release order
	LockStateOf(ctx context.Context, addr entity.Address) (*LockState, error)
	// LockedCountOf returns the number of pending lock entries
	LockedCountOf(ctx context.Context, addr entity.Address) (int, error)
	// AllowanceOf returns how much spender may move on behalf of owner
	AllowanceOf(ctx context.Context, owner, spender entity.Address) (*uint256.Int, error)
	// TotalSupply returns the amount in circulation
	TotalSupply(ctx context.Context) (*uint256.Int, error)

	// Transfer moves amount of from's free balance to to
	Transfer(ctx context.Context, from, to entity.Address, amount *uint256.Int) error
	// TransferFrom lets spender move amount of owner's free balance to to
	TransferFrom(ctx context.Context, spender, owner, to entity.Address, amount *uint256.Int) error
	// MultiTransfer applies every transfer or none of them
	MultiTransfer(ctx context.Context, from entity.Address, transfers []TransferRequest) error
	// Approve sets spender's allowance over owner's balance
	Approve(ctx context.Context, owner, spender entity.Address, amount *uint256.Int) error
	// Burn destroys amount of holder's free balance
	Burn(ctx context.Context, holder entity.Address, amount *uint256.Int) error

	// CreatePreListingLocks locks amounts for recipient at offsets from the future listing
	CreatePreListingLocks(ctx context.Context, caller, recipient entity.Address, amounts []*uint256.Int, offsets []int64) error
	// CreatePostListingLocks locks amounts for recipient until absolute release times
	CreatePostListingLocks(ctx context.Context, caller, recipient entity.Address, amounts []*uint256.Int, releaseTimes []int64) error
	// CreateLocks is the merge routine both lock entry points converge on
	CreateLocks(ctx context.Context, caller entity.Address, req entity.LockRequest) error

	// Genesis mints supply to owner once, when the ledger is empty
	Genesis(ctx context.Context, owner entity.Address, supply *uint256.Int) (bool, error)
}
