package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/core"
	"gorm.io/gorm"
)

// amountChecks are the CHECK constraints added in schema 1.1.0
var amountChecks = []struct {
	table      string
	name       string
	expression string
}{
	{table: "accounts", name: "chk_accounts_balance_non_negative", expression: "balance >= 0"},
	{table: "lock_entries", name: "chk_lock_entries_amount_positive", expression: "amount > 0"},
	{table: "allowances", name: "chk_allowances_amount_positive", expression: "amount > 0"},
	{table: "ledger_supply", name: "chk_ledger_supply_non_negative", expression: "total_supply >= 0"},
}

// AddAmountChecks adds CHECK constraints that keep stored amounts in range
type AddAmountChecks struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAddAmountChecks creates a new migration instance
func NewAddAmountChecks(db *gorm.DB, logger coreport.Logger) *AddAmountChecks {
	return &AddAmountChecks{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration. Constraints that already exist are left alone.
func (m *AddAmountChecks) Run(ctx context.Context) error {
	m.logger.Info("Adding amount check constraints", nil)

	existing, err := m.existingConstraints(ctx)
	if err != nil {
		return err
	}

	db := m.db.WithContext(ctx)
	for _, check := range amountChecks {
		if existing[check.name] {
			continue
		}
		stmt := "ALTER TABLE " + check.table + " ADD CONSTRAINT " + check.name + " CHECK (" + check.expression + ")"
		if err := db.Exec(stmt).Error; err != nil {
			m.logger.Error("Failed to add check constraint", map[string]any{
				"constraint": check.name,
				"error":      err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Amount check constraints in place", nil)
	return nil
}

func (m *AddAmountChecks) existingConstraints(ctx context.Context) (map[string]bool, error) {
	names := make([]string, len(amountChecks))
	for i, check := range amountChecks {
		names[i] = check.name
	}

	var rows []struct {
		ConstraintName string `gorm:"column:constraint_name"`
	}
	err := m.db.WithContext(ctx).Raw(`
		SELECT constraint_name
		FROM information_schema.table_constraints
		WHERE constraint_type = 'CHECK' AND constraint_name IN ?
	`, names).Scan(&rows).Error
	if err != nil {
		m.logger.Error("Failed to check constraint existence", map[string]any{"error": err.Error()})
		return nil, err
	}

	existing := make(map[string]bool, len(rows))
	for _, row := range rows {
		existing[row.ConstraintName] = true
	}
	return existing, nil
}
