package memory

import (
	"context"
	"sync"

	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/vesting-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/persistence"
)

// GovernanceRepository keeps the token state in process memory
type GovernanceRepository struct {
	mu    sync.RWMutex
	state *entity.TokenState
}

var _ persistence.GovernanceRepository = (*GovernanceRepository)(nil)

// NewGovernanceRepository creates an empty repository
func NewGovernanceRepository() *GovernanceRepository {
	return &GovernanceRepository{}
}

// Load returns a copy of the stored state
func (r *GovernanceRepository) Load(ctx context.Context) (*entity.TokenState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.state == nil {
		return nil, errs.ErrNotFound
	}
	return r.state.Clone(), nil
}

// Save replaces the stored state with a copy of state
func (r *GovernanceRepository) Save(ctx context.Context, state *entity.TokenState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = state.Clone()
	return nil
}
