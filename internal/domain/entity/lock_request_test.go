package entity

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/vesting-ledger/internal/domain/error"
)

func TestLockRequest_Validate(t *testing.T) {
	one := uint256.NewInt(1)

	tests := []struct {
		name    string
		req     LockRequest
		wantErr error
	}{
		{
			name: "Valid pre-listing request",
			req:  LockRequest{Kind: LockPreListing, Recipient: "a", Amounts: []*uint256.Int{one}, Times: []int64{0}},
		},
		{
			name: "Valid post-listing request",
			req:  LockRequest{Kind: LockPostListing, Recipient: "a", Amounts: []*uint256.Int{one}, Times: []int64{1}},
		},
		{
			name:    "Unknown kind",
			req:     LockRequest{Kind: "weekly", Recipient: "a", Amounts: []*uint256.Int{one}, Times: []int64{1}},
			wantErr: errs.ErrInvalidArguments,
		},
		{
			name:    "Missing recipient",
			req:     LockRequest{Kind: LockPreListing, Amounts: []*uint256.Int{one}, Times: []int64{1}},
			wantErr: errs.ErrInvalidAddress,
		},
		{
			name:    "Empty",
			req:     LockRequest{Kind: LockPreListing, Recipient: "a"},
			wantErr: errs.ErrInvalidArguments,
		},
		{
			name:    "Length mismatch",
			req:     LockRequest{Kind: LockPreListing, Recipient: "a", Amounts: []*uint256.Int{one, one}, Times: []int64{1}},
			wantErr: errs.ErrInvalidArguments,
		},
		{
			name:    "Zero amount",
			req:     LockRequest{Kind: LockPreListing, Recipient: "a", Amounts: []*uint256.Int{uint256.NewInt(0)}, Times: []int64{1}},
			wantErr: errs.ErrInvalidArguments,
		},
		{
			name: "Largest offset",
			req:  LockRequest{Kind: LockPreListing, Recipient: "a", Amounts: []*uint256.Int{one}, Times: []int64{MaxLockOffset}},
		},
		{
			name:    "Offset past listing range",
			req:     LockRequest{Kind: LockPreListing, Recipient: "a", Amounts: []*uint256.Int{one}, Times: []int64{MaxLockOffset + 1}},
			wantErr: errs.ErrInvalidArguments,
		},
		{
			name:    "Negative offset",
			req:     LockRequest{Kind: LockPreListing, Recipient: "a", Amounts: []*uint256.Int{one}, Times: []int64{-5}},
			wantErr: errs.ErrInvalidArguments,
		},
		{
			name:    "Zero absolute time",
			req:     LockRequest{Kind: LockPostListing, Recipient: "a", Amounts: []*uint256.Int{one}, Times: []int64{0}},
			wantErr: errs.ErrInvalidArguments,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLockRequest_Entries(t *testing.T) {
	req := LockRequest{
		Kind:      LockPreListing,
		Recipient: "a",
		Amounts:   []*uint256.Int{uint256.NewInt(1), uint256.NewInt(2)},
		Times:     []int64{20, 10},
	}

	entries := req.Entries()
	require.Len(t, entries, 2)
	assert.True(t, entries[0].Relative)
	assert.Equal(t, int64(20), entries[0].ReleaseTime)

	// entries do not alias request amounts
	entries[0].Amount.SetUint64(99)
	assert.Equal(t, uint64(1), req.Amounts[0].Uint64())

	total, err := req.Total()
	require.NoError(t, err)
	assert.Equal(t, uint64(3), total.Uint64())
}
