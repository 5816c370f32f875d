package entity

import (
	"math"

	"github.com/holiman/uint256"

	errs "github.com/amirhossein-jamali/vesting-ledger/internal/domain/error"
)

// LockKind discriminates how the times of a lock request are interpreted
type LockKind string

const (
	// LockPreListing times are offsets in seconds from the future listing moment
	LockPreListing LockKind = "pre_listing"
	// LockPostListing times are absolute unix timestamps
	LockPostListing LockKind = "post_listing"
)

// IsValidLockKind checks if the kind is one of the allowed values
func IsValidLockKind(kind string) bool {
	switch LockKind(kind) {
	case LockPreListing, LockPostListing:
		return true
	default:
		return false
	}
}

const (
	// MaxListingTimestamp is the latest accepted listing time, 9999-12-31T23:59:59Z
	MaxListingTimestamp int64 = 253_402_300_799
	// MaxLockOffset is the largest pre-listing offset that rebases onto any accepted
	// listing time without leaving int64
	MaxLockOffset = math.MaxInt64 - MaxListingTimestamp
)

// LockRequest asks for amounts[i] to be locked for Recipient until times[i]
type LockRequest struct {
	Kind      LockKind
	Recipient Address
	Amounts   []*uint256.Int
	Times     []int64
}

// Validate checks the shape of the request independently of ledger state
func (r LockRequest) Validate() error {
	if !IsValidLockKind(string(r.Kind)) {
		return errs.InvalidArguments("unknown lock kind %q", r.Kind)
	}
	if r.Recipient.IsZero() {
		return errs.ErrInvalidAddress
	}
	if len(r.Amounts) == 0 {
		return errs.InvalidArguments("lock request has no entries")
	}
	if len(r.Amounts) != len(r.Times) {
		return errs.InvalidArguments("amounts has %d entries, times has %d", len(r.Amounts), len(r.Times))
	}

	for i, amount := range r.Amounts {
		if amount == nil || amount.IsZero() {
			return errs.InvalidArguments("amount #%d must be positive", i)
		}
		switch r.Kind {
		case LockPreListing:
			if r.Times[i] < 0 {
				return errs.InvalidArguments("offset #%d cannot be negative", i)
			}
			if r.Times[i] > MaxLockOffset {
				return errs.InvalidArguments("offset #%d exceeds %d seconds", i, MaxLockOffset)
			}
		case LockPostListing:
			if r.Times[i] <= 0 {
				return errs.InvalidArguments("release time #%d must be a positive unix timestamp", i)
			}
		}
	}
	return nil
}

// Total returns the sum of all requested amounts
func (r LockRequest) Total() (*uint256.Int, error) {
	return SumAmounts(r.Amounts)
}

// Entries converts the request into schedule entries
func (r LockRequest) Entries() []LockEntry {
	entries := make([]LockEntry, len(r.Amounts))
	for i := range r.Amounts {
		entries[i] = LockEntry{
			Amount:      r.Amounts[i].Clone(),
			ReleaseTime: r.Times[i],
			Relative:    r.Kind == LockPreListing,
		}
	}
	return entries
}
