package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes and storage settings
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

var advancedIndexes = []struct {
	name string
	stmt string
}{
	{
		// Settlement scans the head of each schedule
		name: "idx_lock_entries_address_release",
		stmt: `CREATE INDEX IF NOT EXISTS idx_lock_entries_address_release
			ON lock_entries (address, release_time)`,
	},
	{
		// Pre-listing entries waiting for a rebase
		name: "idx_lock_entries_relative",
		stmt: `CREATE INDEX IF NOT EXISTS idx_lock_entries_relative
			ON lock_entries (address)
			WHERE relative`,
	},
	{
		name: "idx_allowances_spender",
		stmt: `CREATE INDEX IF NOT EXISTS idx_allowances_spender
			ON allowances (spender)`,
	},
	{
		name: "idx_accounts_updated_at_brin",
		stmt: `CREATE INDEX IF NOT EXISTS idx_accounts_updated_at_brin
			ON accounts USING BRIN (updated_at)
			WITH (pages_per_range = 32)`,
	},
}

// CreateAdvancedIndexes creates PostgreSQL indexes beyond what AutoMigrate derives from tags
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	db := m.db.WithContext(ctx)
	for _, index := range advancedIndexes {
		if err := db.Exec(index.stmt).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": index.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies non-critical storage settings. Failures are only logged.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	db := m.db.WithContext(ctx)

	// Accounts are rewritten on every mutation, leave room for HOT updates
	if err := db.Exec(`ALTER TABLE accounts SET (fillfactor = 80)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for accounts table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := db.Exec(`ALTER TABLE lock_entries ALTER COLUMN address SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for lock_entries.address", map[string]any{
			"error": err.Error(),
		})
	}
}
