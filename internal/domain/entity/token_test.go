package entity

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/vesting-ledger/internal/domain/error"
)

func TestTokenState_Clone(t *testing.T) {
	listing := int64(1_700_000_000)
	state := &TokenState{
		Name:             "Token",
		Owner:            "owner",
		Controllers:      []Address{"c1"},
		ListingTimestamp: &listing,
	}

	clone := state.Clone()
	clone.Controllers[0] = "other"
	*clone.ListingTimestamp = 1

	assert.True(t, state.HasController("c1"))
	assert.False(t, state.HasController("other"))
	assert.Equal(t, int64(1_700_000_000), *state.ListingTimestamp)
	assert.True(t, state.IsListed())
	assert.False(t, (&TokenState{}).IsListed())
}

func TestChangeset_IsEmpty(t *testing.T) {
	assert.True(t, Changeset{}.IsEmpty())
	assert.True(t, Changeset{Minted: new(uint256.Int)}.IsEmpty())
	assert.False(t, Changeset{Burned: uint256.NewInt(1)}.IsEmpty())
	assert.False(t, Changeset{Accounts: []*Account{NewAccount("a")}}.IsEmpty())
}

func TestChangeset_ApplySupply(t *testing.T) {
	tests := []struct {
		name    string
		current *uint256.Int
		changes Changeset
		want    uint64
		wantErr error
	}{
		{name: "mint", current: uint256.NewInt(10), changes: Changeset{Minted: uint256.NewInt(5)}, want: 15},
		{name: "burn", current: uint256.NewInt(10), changes: Changeset{Burned: uint256.NewInt(4)}, want: 6},
		{name: "no change", current: uint256.NewInt(10), want: 10},
		{name: "burn beyond supply", current: uint256.NewInt(3), changes: Changeset{Burned: uint256.NewInt(4)}, wantErr: errs.ErrInternalServer},
		{
			name:    "overflow",
			current: new(uint256.Int).SetAllOne(),
			changes: Changeset{Minted: uint256.NewInt(1)},
			wantErr: errs.ErrAmountOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.current.Clone()
			got, err := tt.changes.ApplySupply(tt.current)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Uint64())
			assert.Equal(t, before, tt.current, "input must not be mutated")
		})
	}
}
