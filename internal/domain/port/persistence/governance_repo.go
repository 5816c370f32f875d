package persistence

import (
	"context"

	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/entity"
)

// GovernanceRepository stores the single token state record
type GovernanceRepository interface {
	// Load returns the stored token state
	//
	// Possible errors:
	// - ErrNotFound: If no state has been saved yet
	// - ErrDatabaseConnection: If database connection fails
	Load(ctx context.Context) (*entity.TokenState, error)

	// Save replaces the stored token state
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Save(ctx context.Context, state *entity.TokenState) error
}
