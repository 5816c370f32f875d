package usecase

import (
	"context"

	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/governance"
)

// GovernanceUseCase manages ownership, the controller roster and the listing event
type GovernanceUseCase interface {
	governance.Authorizer
	governance.ListingGate

	// Initialize stores the bootstrap state unless a state already exists.
	// It returns the state in effect afterwards.
	Initialize(ctx context.Context, bootstrap *entity.TokenState) (*entity.TokenState, error)
	// State returns a copy of the current token state
	State(ctx context.Context) (*entity.TokenState, error)
	// Owner returns the current owner
	Owner(ctx context.Context) (entity.Address, error)
	// TransferOwnership hands ownership to newOwner. Owner only.
	TransferOwnership(ctx context.Context, caller, newOwner entity.Address) error
	// Controllers returns the controller roster
	Controllers(ctx context.Context) ([]entity.Address, error)
	// SetControllers replaces the roster wholesale. Owner only.
	SetControllers(ctx context.Context, caller entity.Address, controllers []entity.Address) error
}
