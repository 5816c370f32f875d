package repository

import (
	"context"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/vesting-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/vesting-ledger/internal/infrastructure/adapter/database"
	clock "github.com/amirhossein-jamali/vesting-ledger/internal/infrastructure/adapter/time"
	mockcore "github.com/amirhossein-jamali/vesting-ledger/mocks/port/core"
)

func TestPostgres_LedgerRoundTrip(t *testing.T) {
	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	dbm := database.NewTestDBManager(t, mockLogger)
	runner := dbm.Manager.NewTxRunner()
	ledger := NewLedgerRepository(runner, clock.NewRealClock(), mockLogger)
	ctx := context.Background()

	acc := entity.NewAccount("alice")
	require.NoError(t, acc.Credit(uint256.NewInt(70)))
	require.NoError(t, acc.AddLocks([]entity.LockEntry{
		{Amount: uint256.NewInt(20), ReleaseTime: 200},
		{Amount: uint256.NewInt(10), ReleaseTime: 100},
	}))
	acc.SetAllowance("bob", uint256.NewInt(5))

	require.NoError(t, ledger.Commit(ctx, entity.Changeset{
		Accounts: []*entity.Account{acc},
		Minted:   uint256.NewInt(100),
	}))

	loaded, err := ledger.LoadAccounts(ctx, []entity.Address{"alice"})
	require.NoError(t, err)
	assert.Equal(t, uint64(100), loaded[0].Balance().Uint64())
	assert.Equal(t, uint64(30), loaded[0].LockedBalance().Uint64())
	assert.Equal(t, int64(100), loaded[0].Schedule().Entries()[0].ReleaseTime)
	assert.Equal(t, uint64(5), loaded[0].Allowance("bob").Uint64())

	supply, err := ledger.TotalSupply(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), supply.Uint64())

	err = ledger.Commit(ctx, entity.Changeset{Burned: uint256.NewInt(101)})
	assert.ErrorIs(t, err, errs.ErrInternalServer)

	governance := NewGovernanceRepository(runner, mockLogger)
	_, err = governance.Load(ctx)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	require.NoError(t, governance.Save(ctx, &entity.TokenState{Name: "Token", Owner: "owner", Controllers: []entity.Address{}}))
	state, err := governance.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.Address("owner"), state.Owner)
	assert.False(t, state.IsListed())
}
