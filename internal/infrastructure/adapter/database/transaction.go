package database

import (
	"context"

	coreport "github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/core"
	"gorm.io/gorm"
)

// TxRunner runs units of work in SERIALIZABLE transactions, retrying transient failures
type TxRunner struct {
	db          *gorm.DB
	logger      coreport.Logger
	retry       RetryConfig
	errorMapper *ErrorMapper
}

// NewTxRunner creates a new transaction runner
func NewTxRunner(db *gorm.DB, logger coreport.Logger, retry RetryConfig) *TxRunner {
	return &TxRunner{
		db:          db,
		logger:      logger,
		retry:       retry,
		errorMapper: NewErrorMapper(),
	}
}

// DB returns a session bound to ctx for reads outside a transaction
func (r *TxRunner) DB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Run executes fn inside a transaction. The whole transaction is retried on
// serialization failures and dropped connections, so fn must be safe to repeat.
func (r *TxRunner) Run(ctx context.Context, operation string, fn func(tx *gorm.DB) error) error {
	err := RetryOnTransientError(ctx, r.retry, func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec("SET TRANSACTION ISOLATION LEVEL SERIALIZABLE").Error; err != nil {
				return err
			}
			return fn(tx)
		})
	}, r.logger)
	if err != nil {
		r.logger.Debug("Database transaction failed", map[string]any{
			"operation": operation,
			"error":     err.Error(),
		})
	}
	return r.errorMapper.MapError(err, operation)
}

// MapError maps err from a read outside Run
func (r *TxRunner) MapError(err error, operation string) error {
	return r.errorMapper.MapError(err, operation)
}
