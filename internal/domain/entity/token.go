package entity

import (
	"fmt"
	"time"

	"github.com/holiman/uint256"

	errs "github.com/amirhossein-jamali/vesting-ledger/internal/domain/error"
)

// TokenState is the governance record of the token: metadata, roles and the listing pivot
type TokenState struct {
	Name             string
	Symbol           string
	Decimals         uint8
	Owner            Address
	Controllers      []Address
	ListingTimestamp *int64
	UpdatedAt        time.Time
}

// IsListed reports whether the listing timestamp has been set
func (s *TokenState) IsListed() bool {
	return s.ListingTimestamp != nil
}

// HasController reports whether addr is on the controller roster
func (s *TokenState) HasController(addr Address) bool {
	for _, c := range s.Controllers {
		if c == addr {
			return true
		}
	}
	return false
}

// Clone returns a deep copy
func (s *TokenState) Clone() *TokenState {
	clone := *s
	clone.Controllers = append([]Address(nil), s.Controllers...)
	if s.ListingTimestamp != nil {
		ts := *s.ListingTimestamp
		clone.ListingTimestamp = &ts
	}
	return &clone
}

// Changeset is the unit a ledger operation commits: every touched account plus supply changes
type Changeset struct {
	Accounts []*Account
	Minted   *uint256.Int
	Burned   *uint256.Int
}

// IsEmpty reports whether committing the changeset would be a no-op
func (c Changeset) IsEmpty() bool {
	return len(c.Accounts) == 0 &&
		(c.Minted == nil || c.Minted.IsZero()) &&
		(c.Burned == nil || c.Burned.IsZero())
}

// ApplySupply returns the supply after minting and burning. Burning more than exists
// means the ledger is inconsistent.
func (c Changeset) ApplySupply(current *uint256.Int) (*uint256.Int, error) {
	next := current.Clone()
	if c.Minted != nil {
		if _, overflow := next.AddOverflow(next, c.Minted); overflow {
			return nil, errs.ErrAmountOverflow
		}
	}
	if c.Burned != nil {
		if c.Burned.Gt(next) {
			return nil, fmt.Errorf("%w: burning %s exceeds supply %s",
				errs.ErrInternalServer, c.Burned.Dec(), next.Dec())
		}
		next.Sub(next, c.Burned)
	}
	return next, nil
}
