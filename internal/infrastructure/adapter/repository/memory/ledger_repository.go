package memory

import (
	"context"
	"sync"

	"github.com/holiman/uint256"

	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/persistence"
)

// LedgerRepository keeps accounts in process memory.
// Stored accounts are never shared with callers: loads and commits copy.
type LedgerRepository struct {
	mu       sync.RWMutex
	accounts map[entity.Address]*entity.Account
	supply   *uint256.Int
}

var _ persistence.LedgerRepository = (*LedgerRepository)(nil)

// NewLedgerRepository creates an empty in-memory ledger
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{
		accounts: make(map[entity.Address]*entity.Account),
		supply:   new(uint256.Int),
	}
}

// LoadAccounts returns copies of the stored accounts, or empty accounts for unknown addresses
func (r *LedgerRepository) LoadAccounts(ctx context.Context, addresses []entity.Address) ([]*entity.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Account, len(addresses))
	for i, addr := range addresses {
		if acc, ok := r.accounts[addr]; ok {
			out[i] = acc.Clone()
			continue
		}
		out[i] = entity.NewAccount(addr)
	}
	return out, nil
}

// Commit stores the changeset atomically
func (r *LedgerRepository) Commit(ctx context.Context, changes entity.Changeset) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	supply, err := changes.ApplySupply(r.supply)
	if err != nil {
		return err
	}

	for _, acc := range changes.Accounts {
		r.accounts[acc.Address] = acc.Clone()
	}
	r.supply = supply
	return nil
}

// TotalSupply returns the current supply
func (r *LedgerRepository) TotalSupply(ctx context.Context) (*uint256.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.supply.Clone(), nil
}

// Len returns the number of stored accounts
func (r *LedgerRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts)
}
