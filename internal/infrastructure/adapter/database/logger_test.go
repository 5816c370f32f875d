package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm/logger"

	clock "github.com/amirhossein-jamali/vesting-ledger/internal/infrastructure/adapter/time"
	mockcore "github.com/amirhossein-jamali/vesting-ledger/mocks/port/core"
)

func TestDatabaseLogger_Trace(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	fixed := clock.FixedClock{At: now}
	query := func() (string, int64) {
		return `SELECT * FROM "accounts" WHERE address IN ($1)`, 1
	}

	t.Run("fast query logs at debug", func(t *testing.T) {
		mockLogger := mockcore.NewMockLogger(t)
		mockLogger.EXPECT().Debug("SQL Query", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["type"] == "SELECT" && fields["table"] == "accounts" && fields["rows"] == int64(1)
		})).Once()

		NewDatabaseLogger(mockLogger, fixed, "info").Trace(context.Background(), now.Add(-time.Millisecond), query, nil)
	})

	t.Run("slow query warns", func(t *testing.T) {
		mockLogger := mockcore.NewMockLogger(t)
		mockLogger.EXPECT().Warn("Slow SQL Query", mock.Anything).Once()

		NewDatabaseLogger(mockLogger, fixed, "warn").Trace(context.Background(), now.Add(-time.Second), query, nil)
	})

	t.Run("failed query logs error", func(t *testing.T) {
		mockLogger := mockcore.NewMockLogger(t)
		mockLogger.EXPECT().Error("SQL Error", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["error"] == "boom"
		})).Once()

		NewDatabaseLogger(mockLogger, fixed, "error").Trace(context.Background(), now, query, errors.New("boom"))
	})

	t.Run("silent logs nothing", func(t *testing.T) {
		mockLogger := mockcore.NewMockLogger(t)

		l := NewDatabaseLogger(mockLogger, fixed, "info").LogMode(logger.Silent)
		l.Trace(context.Background(), now.Add(-time.Hour), query, errors.New("boom"))
	})
}

func TestExtractQueryMetadata(t *testing.T) {
	tests := []struct {
		sql       string
		queryType string
		table     string
	}{
		{sql: `SELECT * FROM "lock_entries" WHERE address = $1`, queryType: "SELECT", table: "lock_entries"},
		{sql: `INSERT INTO "accounts" ("address","balance") VALUES ($1,$2)`, queryType: "INSERT", table: "accounts"},
		{sql: `UPDATE "ledger_supply" SET "total_supply"=$1`, queryType: "UPDATE", table: "ledger_supply"},
		{sql: `DELETE FROM "allowances" WHERE owner = $1`, queryType: "DELETE", table: "allowances"},
		{sql: `SET TRANSACTION ISOLATION LEVEL SERIALIZABLE`, queryType: "", table: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.queryType, extractQueryType(tt.sql), tt.sql)
		assert.Equal(t, tt.table, extractTableName(tt.sql), tt.sql)
	}
}
