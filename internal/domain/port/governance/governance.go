package governance

import (
	"context"

	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/entity"
)

// Authorizer answers role membership questions for the ledger
type Authorizer interface {
	// IsOwner reports whether addr is the current owner
	IsOwner(ctx context.Context, addr entity.Address) (bool, error)

	// IsController reports whether addr may create locks.
	// The owner is never a controller, even when listed in the roster.
	IsController(ctx context.Context, addr entity.Address) (bool, error)
}

// ListingGate exposes the one-time listing event
type ListingGate interface {
	// IsListed reports whether the listing timestamp has been set
	IsListed(ctx context.Context) (bool, error)

	// ListingTimestamp returns the listing unix time, or nil before listing
	ListingTimestamp(ctx context.Context) (*int64, error)

	// SetListingTimestamp records the listing time. Owner only, succeeds at most once.
	//
	// Possible errors:
	// - ErrUnauthorized: If caller is not the owner
	// - ErrInvalidArguments: If ts is not a positive unix timestamp
	// - ErrAlreadyListed: If the listing timestamp was already set
	SetListingTimestamp(ctx context.Context, caller entity.Address, ts int64) error
}
