package database

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/core"
	clock "github.com/amirhossein-jamali/vesting-ledger/internal/infrastructure/adapter/time"
)

// TestDBManager provides a real PostgreSQL database to integration tests.
// Tests are skipped unless VL_TEST_DB_HOST is set.
type TestDBManager struct {
	Manager *Manager
	Config  *Config
}

// NewTestDBManager connects to the test database and migrates it
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	host := os.Getenv("VL_TEST_DB_HOST")
	if host == "" {
		t.Skip("VL_TEST_DB_HOST not set, skipping database integration test")
	}

	config := &Config{
		Driver:          "postgres",
		Host:            host,
		Port:            getEnvIntOrDefault("VL_TEST_DB_PORT", 5432),
		Username:        getEnvOrDefault("VL_TEST_DB_USERNAME", "postgres"),
		Password:        getEnvOrDefault("VL_TEST_DB_PASSWORD", "postgres"),
		Database:        getEnvOrDefault("VL_TEST_DB_NAME", "vesting_ledger_test"),
		SSLMode:         getEnvOrDefault("VL_TEST_DB_SSL_MODE", "disable"),
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "silent",
		RetryAttempts:   1, // fail fast
		RetryDelay:      time.Second,
	}

	manager := NewManager(config, logger, clock.NewRealClock())
	ctx := context.Background()
	if _, err := manager.Connect(ctx); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	m := &TestDBManager{Manager: manager, Config: config}
	m.dropAllTables(t)
	if err := manager.Migrate(ctx); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return m
}

// TruncateAllTables empties every table but keeps the schema
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()
	m.execEachTable(t, "TRUNCATE TABLE")
}

func (m *TestDBManager) dropAllTables(t *testing.T) {
	t.Helper()
	m.execEachTable(t, "DROP TABLE IF EXISTS")
}

func (m *TestDBManager) execEachTable(t *testing.T, statement string) {
	t.Helper()

	err := m.Manager.DB().Exec(`
		DO $$ DECLARE
			r RECORD;
		BEGIN
			FOR r IN (SELECT tablename FROM pg_tables WHERE schemaname = current_schema()) LOOP
				EXECUTE '` + statement + ` ' || quote_ident(r.tablename) || ' CASCADE';
			END LOOP;
		END $$;
	`).Error
	if err != nil {
		t.Fatalf("Failed to run %q on test tables: %v", statement, err)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if result, err := strconv.Atoi(value); err == nil {
			return result
		}
	}
	return defaultValue
}
