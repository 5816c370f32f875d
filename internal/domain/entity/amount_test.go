package entity

import (
	"strings"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/vesting-ledger/internal/domain/error"
)

const maxUint256 = "115792089237316195423570985008687907853269984665640564039457584007913129639935"

func TestParseAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected string
		}{
			{"0", "0"},
			{"000", "0"},
			{"1", "1"},
			{" 42 ", "42"},
			{"0007", "7"},
			{"2000000000000000000000000000", "2000000000000000000000000000"},
			{maxUint256, maxUint256},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				value, err := ParseAmount(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, FormatAmount(value))
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			errorType   error
			description string
		}{
			{"", errs.ErrInvalidAmount, "Empty string"},
			{"   ", errs.ErrInvalidAmount, "Whitespace only"},
			{"-1", errs.ErrInvalidAmount, "Negative amount"},
			{"+1", errs.ErrInvalidAmount, "Explicit sign"},
			{"1.5", errs.ErrInvalidAmount, "Decimal point"},
			{"1,000", errs.ErrInvalidAmount, "Thousands separator"},
			{"0x10", errs.ErrInvalidAmount, "Hex notation"},
			{"1e18", errs.ErrInvalidAmount, "Exponent notation"},
			{"115792089237316195423570985008687907853269984665640564039457584007913129639936", errs.ErrAmountOverflow, "2^256"},
			{"1" + strings.Repeat("0", 80), errs.ErrAmountOverflow, "Too many digits"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ParseAmount(tc.input)
				assert.ErrorIs(t, err, tc.errorType)
			})
		}
	})
}

func TestParseAmounts(t *testing.T) {
	values, err := ParseAmounts([]string{"1", "2"})
	require.NoError(t, err)
	assert.Len(t, values, 2)

	_, err = ParseAmounts([]string{"1", "x"})
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	assert.Contains(t, err.Error(), "amount #1")
}

func TestSumAmounts(t *testing.T) {
	total, err := SumAmounts([]*uint256.Int{uint256.NewInt(1), uint256.NewInt(2), uint256.NewInt(3)})
	require.NoError(t, err)
	assert.Equal(t, uint64(6), total.Uint64())

	max := new(uint256.Int).SetAllOne()
	_, err = SumAmounts([]*uint256.Int{max, uint256.NewInt(1)})
	assert.ErrorIs(t, err, errs.ErrAmountOverflow)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0", FormatAmount(nil))
	assert.Equal(t, "1234", FormatAmount(uint256.NewInt(1234)))
}
