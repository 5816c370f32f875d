package persistence

import (
	"context"

	"github.com/holiman/uint256"

	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/entity"
)

// LedgerRepository stores accounts and the total supply
type LedgerRepository interface {
	// LoadAccounts returns one account per requested address, in request order.
	// Addresses never stored come back as fresh empty accounts.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	LoadAccounts(ctx context.Context, addresses []entity.Address) ([]*entity.Account, error)

	// Commit atomically persists every account in the changeset and applies the
	// minted/burned deltas to the total supply. Either everything is stored or nothing.
	//
	// Possible errors:
	// - ErrAmountOverflow: If minting would overflow the supply
	// - ErrDatabaseConnection: If database connection fails
	Commit(ctx context.Context, changes entity.Changeset) error

	// TotalSupply returns the current total supply
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	TotalSupply(ctx context.Context) (*uint256.Int, error)
}
