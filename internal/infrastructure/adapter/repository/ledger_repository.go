package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/holiman/uint256"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/vesting-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/vesting-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/vesting-ledger/internal/infrastructure/adapter/model"
)

// LedgerRepository implements persistence.LedgerRepository using GORM.
// An account is stored as one accounts row plus its lock_entries and allowances rows;
// a commit rewrites all three for every touched account.
type LedgerRepository struct {
	runner          *database.TxRunner
	clock           coreport.Clock
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.LedgerRepository = (*LedgerRepository)(nil)

// NewLedgerRepository creates a new LedgerRepository instance
func NewLedgerRepository(runner *database.TxRunner, clock coreport.Clock, logger coreport.Logger) *LedgerRepository {
	return &LedgerRepository{
		runner:          runner,
		clock:           clock,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// LoadAccounts reads the accounts in one snapshot. Unknown addresses yield empty accounts.
func (r *LedgerRepository) LoadAccounts(ctx context.Context, addresses []entity.Address) ([]*entity.Account, error) {
	if len(addresses) == 0 {
		return []*entity.Account{}, nil
	}

	keys := make([]string, len(addresses))
	for i, addr := range addresses {
		keys[i] = addr.String()
	}

	var (
		accountRows   []model.Account
		lockRows      []model.LockEntry
		allowanceRows []model.Allowance
	)
	err := r.runner.Run(ctx, "load_accounts", func(tx *gorm.DB) error {
		if err := tx.Where("address IN ?", keys).Find(&accountRows).Error; err != nil {
			return err
		}
		if err := tx.Where("address IN ?", keys).Order("address, position").Find(&lockRows).Error; err != nil {
			return err
		}
		return tx.Where("owner IN ?", keys).Find(&allowanceRows).Error
	})
	if err != nil {
		return nil, r.handleDatabaseError("loading accounts", err, map[string]any{"addresses": keys})
	}

	rows := make(map[string]*model.Account, len(accountRows))
	for i := range accountRows {
		rows[accountRows[i].Address] = &accountRows[i]
	}

	locks := make(map[string][]entity.LockEntry)
	for _, row := range lockRows {
		amount, err := entity.ParseAmount(row.Amount)
		if err != nil {
			return nil, r.corrupted(row.Address, "lock amount", err)
		}
		locks[row.Address] = append(locks[row.Address], entity.LockEntry{
			Amount:      amount,
			ReleaseTime: row.ReleaseTime,
			Relative:    row.Relative,
		})
	}

	allowances := make(map[string]map[entity.Address]*uint256.Int)
	for _, row := range allowanceRows {
		amount, err := entity.ParseAmount(row.Amount)
		if err != nil {
			return nil, r.corrupted(row.Owner, "allowance", err)
		}
		if allowances[row.Owner] == nil {
			allowances[row.Owner] = make(map[entity.Address]*uint256.Int)
		}
		allowances[row.Owner][entity.Address(row.Spender)] = amount
	}

	out := make([]*entity.Account, len(addresses))
	for i, addr := range addresses {
		row, ok := rows[addr.String()]
		if !ok {
			out[i] = entity.NewAccount(addr)
			continue
		}

		balance, err := entity.ParseAmount(row.Balance)
		if err != nil {
			return nil, r.corrupted(row.Address, "balance", err)
		}
		acc, err := entity.RestoreAccount(addr, balance, locks[row.Address], allowances[row.Address], row.UpdatedAt)
		if err != nil {
			return nil, r.corrupted(row.Address, "account", err)
		}
		out[i] = acc
	}
	return out, nil
}

// Commit writes every account of the changeset and the supply change in one transaction
func (r *LedgerRepository) Commit(ctx context.Context, changes entity.Changeset) error {
	if changes.IsEmpty() {
		return nil
	}

	now := r.clock.Now().UTC()
	err := r.runner.Run(ctx, "commit", func(tx *gorm.DB) error {
		for _, acc := range changes.Accounts {
			if err := saveAccount(tx, acc, now); err != nil {
				return err
			}
		}
		if hasSupplyChange(changes) {
			return saveSupply(tx, changes, now)
		}
		return nil
	})
	if err != nil {
		return r.handleDatabaseError("committing changeset", err, map[string]any{
			"accounts": len(changes.Accounts),
		})
	}

	r.logger.Debug("Changeset committed", map[string]any{
		"accounts": len(changes.Accounts),
	})
	return nil
}

// TotalSupply returns the stored supply, zero before genesis
func (r *LedgerRepository) TotalSupply(ctx context.Context) (*uint256.Int, error) {
	var row model.LedgerSupply
	err := r.runner.DB(ctx).Where("id = ?", model.SingletonID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return new(uint256.Int), nil
	}
	if err != nil {
		return nil, r.handleDatabaseError("reading total supply", r.runner.MapError(err, "total_supply"), nil)
	}

	supply, err := entity.ParseAmount(row.TotalSupply)
	if err != nil {
		return nil, r.corrupted("ledger_supply", "total supply", err)
	}
	return supply, nil
}

func saveAccount(tx *gorm.DB, acc *entity.Account, now time.Time) error {
	key := acc.Address.String()
	updatedAt := acc.UpdatedAt.UTC()
	if acc.UpdatedAt.IsZero() {
		updatedAt = now
	}

	row := model.Account{
		Address:   key,
		Balance:   entity.FormatAmount(acc.Balance()),
		CreatedAt: now,
		UpdatedAt: updatedAt,
	}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		DoUpdates: clause.AssignmentColumns([]string{"balance", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return err
	}

	if err := tx.Where("address = ?", key).Delete(&model.LockEntry{}).Error; err != nil {
		return err
	}
	if entries := acc.Schedule().Entries(); len(entries) > 0 {
		lockRows := make([]model.LockEntry, len(entries))
		for i, entry := range entries {
			lockRows[i] = model.LockEntry{
				Address:     key,
				Position:    i,
				Amount:      entity.FormatAmount(entry.Amount),
				ReleaseTime: entry.ReleaseTime,
				Relative:    entry.Relative,
				CreatedAt:   now,
			}
		}
		if err := tx.Create(&lockRows).Error; err != nil {
			return err
		}
	}

	if err := tx.Where("owner = ?", key).Delete(&model.Allowance{}).Error; err != nil {
		return err
	}
	if allowances := acc.Allowances(); len(allowances) > 0 {
		allowanceRows := make([]model.Allowance, 0, len(allowances))
		for spender, amount := range allowances {
			allowanceRows = append(allowanceRows, model.Allowance{
				Owner:     key,
				Spender:   spender.String(),
				Amount:    entity.FormatAmount(amount),
				UpdatedAt: now,
			})
		}
		sort.Slice(allowanceRows, func(i, j int) bool {
			return allowanceRows[i].Spender < allowanceRows[j].Spender
		})
		if err := tx.Create(&allowanceRows).Error; err != nil {
			return err
		}
	}
	return nil
}

func hasSupplyChange(changes entity.Changeset) bool {
	return (changes.Minted != nil && !changes.Minted.IsZero()) ||
		(changes.Burned != nil && !changes.Burned.IsZero())
}

// saveSupply locks the supply row, applies the change and writes it back
func saveSupply(tx *gorm.DB, changes entity.Changeset, now time.Time) error {
	current := new(uint256.Int)

	var row model.LedgerSupply
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", model.SingletonID).Take(&row).Error
	switch {
	case err == nil:
		stored, err := entity.ParseAmount(row.TotalSupply)
		if err != nil {
			return fmt.Errorf("%w: stored total supply is corrupted: %v", errs.ErrInternalServer, err)
		}
		current = stored
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return err
	}

	next, err := changes.ApplySupply(current)
	if err != nil {
		return err
	}

	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"total_supply", "updated_at"}),
	}).Create(&model.LedgerSupply{
		ID:          model.SingletonID,
		TotalSupply: entity.FormatAmount(next),
		UpdatedAt:   now,
	}).Error
}

// handleDatabaseError logs a failed operation with its error class. err is already mapped.
func (r *LedgerRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	if fields == nil {
		fields = make(map[string]any, 3)
	}
	fields["error"] = err.Error()
	fields["error_type"] = string(r.errorClassifier.Classify(err))
	fields["error_code"] = errs.ErrorCode(err)

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	return err
}

func (r *LedgerRepository) corrupted(address, what string, err error) error {
	r.logger.Error("Stored ledger state is corrupted", map[string]any{
		"address": address,
		"field":   what,
		"error":   err.Error(),
	})
	return fmt.Errorf("%w: stored %s of %s is corrupted: %v", errs.ErrInternalServer, what, address, err)
}
