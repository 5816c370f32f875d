package entity

import (
	"fmt"
	"sort"
	"strings"

	errs "github.com/amirhossein-jamali/vesting-ledger/internal/domain/error"
)

// MaxAddressLength bounds the size of an account identity
const MaxAddressLength = 128

// Address is the opaque identity of an account
type Address string

// NewAddress validates and normalizes surrounding whitespace of an address
func NewAddress(raw string) (Address, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty value", errs.ErrInvalidAddress)
	}
	if len(trimmed) > MaxAddressLength {
		return "", fmt.Errorf("%w: longer than %d bytes", errs.ErrInvalidAddress, MaxAddressLength)
	}
	return Address(trimmed), nil
}

// NewAddresses validates a list of addresses
func NewAddresses(raw []string) ([]Address, error) {
	addresses := make([]Address, 0, len(raw))
	for i, r := range raw {
		addr, err := NewAddress(r)
		if err != nil {
			return nil, fmt.Errorf("address #%d: %w", i, err)
		}
		addresses = append(addresses, addr)
	}
	return addresses, nil
}

// String implements fmt.Stringer
func (a Address) String() string {
	return string(a)
}

// IsZero reports whether the address is empty
func (a Address) IsZero() bool {
	return a == ""
}

// SortedUnique returns the distinct addresses in ascending order
func SortedUnique(addresses ...Address) []Address {
	seen := make(map[Address]struct{}, len(addresses))
	unique := make([]Address, 0, len(addresses))
	for _, addr := range addresses {
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}
		unique = append(unique, addr)
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i] < unique[j] })
	return unique
}
