package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/vesting-ledger/internal/domain/error"
	"github.com/holiman/uint256"
)

// maxAmountDigits is the length of 2^256-1 written in base 10
const maxAmountDigits = 78

// ParseAmount parses a base-10 amount expressed in the token's smallest unit.
// Signs, decimal points, separators and values above 2^256-1 are rejected.
func ParseAmount(amount string) (*uint256.Int, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return nil, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return nil, fmt.Errorf("%w: amount cannot be negative", errs.ErrInvalidAmount)
	}

	for _, r := range amount {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: unexpected character %q", errs.ErrInvalidAmount, r)
		}
	}

	digits := strings.TrimLeft(amount, "0")
	if digits == "" {
		return new(uint256.Int), nil
	}
	if len(digits) > maxAmountDigits {
		return nil, errs.ErrAmountOverflow
	}

	value, err := uint256.FromDecimal(digits)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrAmountOverflow, err.Error())
	}
	return value, nil
}

// ParseAmounts parses every element of amounts, failing on the first invalid one
func ParseAmounts(amounts []string) ([]*uint256.Int, error) {
	parsed := make([]*uint256.Int, 0, len(amounts))
	for i, amount := range amounts {
		value, err := ParseAmount(amount)
		if err != nil {
			return nil, fmt.Errorf("amount #%d: %w", i, err)
		}
		parsed = append(parsed, value)
	}
	return parsed, nil
}

// FormatAmount renders an amount as a base-10 string, treating nil as zero
func FormatAmount(amount *uint256.Int) string {
	if amount == nil {
		return "0"
	}
	return amount.Dec()
}

// SumAmounts adds amounts together, failing instead of wrapping around on overflow
func SumAmounts(amounts []*uint256.Int) (*uint256.Int, error) {
	total := new(uint256.Int)
	for _, amount := range amounts {
		if _, overflow := total.AddOverflow(total, amount); overflow {
			return nil, errs.ErrAmountOverflow
		}
	}
	return total, nil
}
