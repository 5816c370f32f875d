package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/vesting-ledger/internal/domain/error"
)

func TestNewAddress(t *testing.T) {
	addr, err := NewAddress("  0xabc  ")
	require.NoError(t, err)
	assert.Equal(t, Address("0xabc"), addr)

	_, err = NewAddress("   ")
	assert.ErrorIs(t, err, errs.ErrInvalidAddress)

	_, err = NewAddress(strings.Repeat("a", MaxAddressLength+1))
	assert.ErrorIs(t, err, errs.ErrInvalidAddress)
}

func TestNewAddresses(t *testing.T) {
	addrs, err := NewAddresses([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []Address{"a", "b"}, addrs)

	_, err = NewAddresses([]string{"a", ""})
	assert.ErrorIs(t, err, errs.ErrInvalidAddress)
}

func TestSortedUnique(t *testing.T) {
	assert.Equal(t, []Address{"a", "b", "c"}, SortedUnique("c", "a", "b", "a", "c"))
	assert.Empty(t, SortedUnique())
}
