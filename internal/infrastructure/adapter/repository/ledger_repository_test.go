package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/vesting-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/vesting-ledger/internal/infrastructure/adapter/database"
	clock "github.com/amirhossein-jamali/vesting-ledger/internal/infrastructure/adapter/time"
	mockcore "github.com/amirhossein-jamali/vesting-ledger/mocks/port/core"
)

var (
	testNow         = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	setSerializable = regexp.QuoteMeta("SET TRANSACTION ISOLATION LEVEL SERIALIZABLE")
)

type repoFixture struct {
	ledger     *LedgerRepository
	governance *GovernanceRepository
	sql        sqlmock.Sqlmock
}

func newRepoFixture(t *testing.T) *repoFixture {
	t.Helper()

	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	runner := database.NewTxRunner(db, mockLogger, database.RetryConfig{
		MaxRetries:    2,
		RetryInterval: time.Millisecond,
		MaxInterval:   time.Millisecond,
	})

	return &repoFixture{
		ledger:     NewLedgerRepository(runner, clock.FixedClock{At: testNow}, mockLogger),
		governance: NewGovernanceRepository(runner, mockLogger),
		sql:        sqlMock,
	}
}

func (f *repoFixture) expectTx() {
	f.sql.ExpectBegin()
	f.sql.ExpectExec(setSerializable).WillReturnResult(sqlmock.NewResult(0, 0))
}

func TestLedgerRepository_LoadAccounts(t *testing.T) {
	f := newRepoFixture(t)

	f.expectTx()
	f.sql.ExpectQuery(`SELECT \* FROM "accounts" WHERE address IN`).
		WillReturnRows(sqlmock.NewRows([]string{"address", "balance", "created_at", "updated_at"}).
			AddRow("alice", "100", testNow, testNow))
	f.sql.ExpectQuery(`SELECT \* FROM "lock_entries" WHERE address IN .* ORDER BY address, position`).
		WillReturnRows(sqlmock.NewRows([]string{"address", "position", "amount", "release_time", "relative", "created_at"}).
			AddRow("alice", 0, "30", int64(100), false, testNow).
			AddRow("alice", 1, "20", int64(200), false, testNow))
	f.sql.ExpectQuery(`SELECT \* FROM "allowances" WHERE owner IN`).
		WillReturnRows(sqlmock.NewRows([]string{"owner", "spender", "amount", "updated_at"}).
			AddRow("alice", "bob", "5", testNow))
	f.sql.ExpectCommit()

	accounts, err := f.ledger.LoadAccounts(context.Background(), []entity.Address{"alice", "carol"})
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	alice := accounts[0]
	assert.Equal(t, entity.Address("alice"), alice.Address)
	assert.Equal(t, uint64(100), alice.Balance().Uint64())
	assert.Equal(t, uint64(50), alice.LockedBalance().Uint64())
	assert.Equal(t, 2, alice.Schedule().Len())
	assert.Equal(t, uint64(5), alice.Allowance("bob").Uint64())
	assert.Equal(t, testNow, alice.UpdatedAt)

	carol := accounts[1]
	assert.Equal(t, entity.Address("carol"), carol.Address)
	assert.True(t, carol.Balance().IsZero())
	assert.Equal(t, 0, carol.Schedule().Len())

	assert.NoError(t, f.sql.ExpectationsWereMet())
}

func TestLedgerRepository_LoadAccountsRejectsCorruptedRows(t *testing.T) {
	f := newRepoFixture(t)

	f.expectTx()
	f.sql.ExpectQuery(`SELECT \* FROM "accounts"`).
		WillReturnRows(sqlmock.NewRows([]string{"address", "balance", "created_at", "updated_at"}).
			AddRow("alice", "-1", testNow, testNow))
	f.sql.ExpectQuery(`SELECT \* FROM "lock_entries"`).
		WillReturnRows(sqlmock.NewRows([]string{"address", "position", "amount", "release_time", "relative", "created_at"}))
	f.sql.ExpectQuery(`SELECT \* FROM "allowances"`).
		WillReturnRows(sqlmock.NewRows([]string{"owner", "spender", "amount", "updated_at"}))
	f.sql.ExpectCommit()

	_, err := f.ledger.LoadAccounts(context.Background(), []entity.Address{"alice"})
	assert.ErrorIs(t, err, errs.ErrInternalServer)
}

func TestLedgerRepository_Commit(t *testing.T) {
	f := newRepoFixture(t)

	acc := entity.NewAccount("alice")
	require.NoError(t, acc.Credit(uint256.NewInt(70)))
	require.NoError(t, acc.AddLocks([]entity.LockEntry{{Amount: uint256.NewInt(30), ReleaseTime: 100}}))
	acc.SetAllowance("bob", uint256.NewInt(5))
	acc.Touch(testNow)

	f.expectTx()
	f.sql.ExpectExec(`INSERT INTO "accounts" .* ON CONFLICT \("address"\) DO UPDATE SET`).
		WithArgs("alice", "100", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	f.sql.ExpectExec(`DELETE FROM "lock_entries" WHERE address = \$1`).
		WithArgs("alice").
		WillReturnResult(sqlmock.NewResult(0, 0))
	f.sql.ExpectExec(`INSERT INTO "lock_entries"`).
		WithArgs("alice", 0, "30", int64(100), false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	f.sql.ExpectExec(`DELETE FROM "allowances" WHERE owner = \$1`).
		WithArgs("alice").
		WillReturnResult(sqlmock.NewResult(0, 0))
	f.sql.ExpectExec(`INSERT INTO "allowances"`).
		WithArgs("alice", "bob", "5", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	f.sql.ExpectQuery(`SELECT \* FROM "ledger_supply" WHERE id = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "total_supply", "updated_at"}))
	f.sql.ExpectExec(`INSERT INTO "ledger_supply" .* ON CONFLICT \("id"\) DO UPDATE SET`).
		WithArgs(sqlmock.AnyArg(), "100", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	f.sql.ExpectCommit()

	err := f.ledger.Commit(context.Background(), entity.Changeset{
		Accounts: []*entity.Account{acc},
		Minted:   uint256.NewInt(100),
	})
	require.NoError(t, err)
	assert.NoError(t, f.sql.ExpectationsWereMet())
}

func TestLedgerRepository_CommitEmptyChangesetIsNoop(t *testing.T) {
	f := newRepoFixture(t)

	require.NoError(t, f.ledger.Commit(context.Background(), entity.Changeset{}))
	assert.NoError(t, f.sql.ExpectationsWereMet())
}

func TestLedgerRepository_CommitRollsBackBurnBeyondSupply(t *testing.T) {
	f := newRepoFixture(t)

	f.expectTx()
	f.sql.ExpectQuery(`SELECT \* FROM "ledger_supply"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "total_supply", "updated_at"}).AddRow(1, "10", testNow))
	f.sql.ExpectRollback()

	err := f.ledger.Commit(context.Background(), entity.Changeset{Burned: uint256.NewInt(20)})
	assert.ErrorIs(t, err, errs.ErrInternalServer)
	assert.NoError(t, f.sql.ExpectationsWereMet())
}

func TestLedgerRepository_TotalSupply(t *testing.T) {
	t.Run("stored", func(t *testing.T) {
		f := newRepoFixture(t)
		f.sql.ExpectQuery(`SELECT \* FROM "ledger_supply" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "total_supply", "updated_at"}).AddRow(1, "12345", testNow))

		supply, err := f.ledger.TotalSupply(context.Background())
		require.NoError(t, err)
		assert.Equal(t, uint64(12345), supply.Uint64())
	})

	t.Run("before genesis", func(t *testing.T) {
		f := newRepoFixture(t)
		f.sql.ExpectQuery(`SELECT \* FROM "ledger_supply"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "total_supply", "updated_at"}))

		supply, err := f.ledger.TotalSupply(context.Background())
		require.NoError(t, err)
		assert.True(t, supply.IsZero())
	})

	t.Run("connection failure", func(t *testing.T) {
		f := newRepoFixture(t)
		f.sql.ExpectQuery(`SELECT \* FROM "ledger_supply"`).
			WillReturnError(assert.AnError)

		_, err := f.ledger.TotalSupply(context.Background())
		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})
}
