package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/vesting-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/vesting-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/vesting-ledger/internal/infrastructure/adapter/model"
)

// GovernanceRepository stores the single token state row using GORM
type GovernanceRepository struct {
	runner *database.TxRunner
	logger coreport.Logger
}

var _ persistence.GovernanceRepository = (*GovernanceRepository)(nil)

// NewGovernanceRepository creates a new GovernanceRepository instance
func NewGovernanceRepository(runner *database.TxRunner, logger coreport.Logger) *GovernanceRepository {
	return &GovernanceRepository{
		runner: runner,
		logger: logger,
	}
}

// Load returns the stored token state or ErrNotFound
func (r *GovernanceRepository) Load(ctx context.Context) (*entity.TokenState, error) {
	var row model.TokenState
	err := r.runner.DB(ctx).Where("id = ?", model.SingletonID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		r.logger.Error("Database error when loading token state", map[string]any{
			"error": err.Error(),
		})
		return nil, r.runner.MapError(err, "load_token_state")
	}

	controllers := make([]entity.Address, len(row.Controllers))
	for i, c := range row.Controllers {
		controllers[i] = entity.Address(c)
	}
	return &entity.TokenState{
		Name:             row.Name,
		Symbol:           row.Symbol,
		Decimals:         row.Decimals,
		Owner:            entity.Address(row.Owner),
		Controllers:      controllers,
		ListingTimestamp: row.ListingTimestamp,
		UpdatedAt:        row.UpdatedAt,
	}, nil
}

// Save replaces the stored token state
func (r *GovernanceRepository) Save(ctx context.Context, state *entity.TokenState) error {
	if state == nil {
		return fmt.Errorf("%w: nil token state", errs.ErrInternalServer)
	}

	controllers := make([]string, len(state.Controllers))
	for i, c := range state.Controllers {
		controllers[i] = c.String()
	}
	row := model.TokenState{
		ID:               model.SingletonID,
		Name:             state.Name,
		Symbol:           state.Symbol,
		Decimals:         state.Decimals,
		Owner:            state.Owner.String(),
		Controllers:      controllers,
		ListingTimestamp: state.ListingTimestamp,
		UpdatedAt:        state.UpdatedAt.UTC(),
	}

	err := r.runner.DB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&row).Error
	if err != nil {
		r.logger.Error("Database error when saving token state", map[string]any{
			"owner": state.Owner.String(),
			"error": err.Error(),
		})
		return r.runner.MapError(err, "save_token_state")
	}
	return nil
}
