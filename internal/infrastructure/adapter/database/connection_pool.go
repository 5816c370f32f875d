package database

import (
	"fmt"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/core"
	"gorm.io/gorm"
)

// ConnectionPoolMonitor samples pool statistics and warns when the pool runs dry
type ConnectionPoolMonitor struct {
	db     *gorm.DB
	logger coreport.Logger
	// lastWaitCount lets each sample report only the waits that happened since the previous one
	lastWaitCount int64
	mutex         sync.Mutex
	stopChan      chan struct{}
	stopOnce      sync.Once
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(db *gorm.DB, logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		db:       db,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start samples immediately and then every interval until Stop
func (m *ConnectionPoolMonitor) Start(interval time.Duration) error {
	if err := m.collectMetrics(); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := m.collectMetrics(); err != nil {
					m.logger.Error("Failed to collect connection pool metrics", map[string]any{
						"error": err.Error(),
					})
				}
			case <-m.stopChan:
				return
			}
		}
	}()
	return nil
}

// Stop stops the monitoring. It is safe to call more than once.
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
}

func (m *ConnectionPoolMonitor) collectMetrics() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	stats := sqlDB.Stats()

	m.mutex.Lock()
	newWaits := stats.WaitCount - m.lastWaitCount
	m.lastWaitCount = stats.WaitCount
	m.mutex.Unlock()

	// MaxOpenConnections is 0 when the pool is unbounded
	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > float64(stats.MaxOpenConnections)*0.8 {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}
	// Commits wait here while holding account locks
	if newWaits > 0 {
		m.logger.Debug("Ledger commits waited for a database connection", map[string]any{
			"waits":     newWaits,
			"in_use":    stats.InUse,
			"wait_time": stats.WaitDuration.String(),
		})
	}
	return nil
}
