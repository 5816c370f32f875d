package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientFunds     = 4001
	CodeInvalidAmount         = 4002
	CodeInvalidAddress        = 4003
	CodeInvalidArguments      = 4004
	CodeInsufficientAllowance = 4005
	CodeAmountOverflow        = 4006
	CodeUnauthorized          = 4030
	CodeNotFound              = 4040
	CodeAlreadyListed         = 4091
	CodeListingNotYetOccurred = 4092
	CodeAccountLocked         = 4230

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5030
)

// Base error types
var (
	// ErrUnauthorized is returned when the caller lacks the role required by an operation
	ErrUnauthorized = errors.New("caller is not authorized")

	// ErrInvalidArguments is returned for length mismatches, empty batches and zero amounts
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrInsufficientFunds is returned when the free balance cannot cover a spend
	ErrInsufficientFunds = errors.New("insufficient free balance")

	// ErrInsufficientAllowance is returned when a spender's allowance cannot cover a delegated transfer
	ErrInsufficientAllowance = errors.New("insufficient allowance")

	// ErrAlreadyListed is returned once the listing timestamp has been set
	ErrAlreadyListed = errors.New("token is already listed")

	// ErrListingNotYetOccurred is returned by operations that need the listing timestamp before it exists
	ErrListingNotYetOccurred = errors.New("listing has not occurred yet")

	// ErrInvalidAmount is returned when an amount is not a base-10 unsigned integer
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrInvalidAddress is returned when an account address is empty or malformed
	ErrInvalidAddress = errors.New("invalid address")

	// ErrAmountOverflow is returned when arithmetic would exceed 256 bits
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrAccountLocked is returned when exclusive access to an account could not be obtained in time
	ErrAccountLocked = errors.New("account is locked by another operation")

	// ErrNotFound is returned when a stored record does not exist
	ErrNotFound = errors.New("resource not found")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrInsufficientAllowance):
		return CodeInsufficientAllowance
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidAddress):
		return CodeInvalidAddress
	case errors.Is(err, ErrInvalidArguments):
		return CodeInvalidArguments
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrAlreadyListed):
		return CodeAlreadyListed
	case errors.Is(err, ErrListingNotYetOccurred):
		return CodeListingNotYetOccurred
	case errors.Is(err, ErrAccountLocked):
		return CodeAccountLocked
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// InsufficientFundsError provides detailed error information for a rejected spend
type InsufficientFundsError struct {
	Address   string
	Requested string
	Available string
	Locked    string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient free balance for %s: requested %s, available %s (locked %s)",
		e.Address, e.Requested, e.Available, e.Locked)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_funds",
		"address":    e.Address,
		"requested":  e.Requested,
		"available":  e.Available,
		"locked":     e.Locked,
		"error_code": CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(address, requested, available, locked string) error {
	return &InsufficientFundsError{
		Address:   address,
		Requested: requested,
		Available: available,
		Locked:    locked,
	}
}

// InsufficientAllowanceError provides detailed information about an allowance shortfall
type InsufficientAllowanceError struct {
	Owner     string
	Spender   string
	Requested string
	Allowance string
}

// Error implements the error interface
func (e *InsufficientAllowanceError) Error() string {
	return fmt.Sprintf("insufficient allowance for spender %s on %s: requested %s, allowed %s",
		e.Spender, e.Owner, e.Requested, e.Allowance)
}

// Is checks if the target error is an ErrInsufficientAllowance
func (e *InsufficientAllowanceError) Is(target error) bool {
	return target == ErrInsufficientAllowance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientAllowanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_allowance",
		"owner":      e.Owner,
		"spender":    e.Spender,
		"requested":  e.Requested,
		"allowance":  e.Allowance,
		"error_code": CodeInsufficientAllowance,
	}
}

// NewInsufficientAllowanceError creates a new detailed insufficient allowance error
func NewInsufficientAllowanceError(owner, spender, requested, allowance string) error {
	return &InsufficientAllowanceError{
		Owner:     owner,
		Spender:   spender,
		Requested: requested,
		Allowance: allowance,
	}
}

// UnauthorizedError describes a caller that lacks the role an operation requires
type UnauthorizedError struct {
	Caller    string
	Role      string
	Operation string
}

// Error implements the error interface
func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("%s requires role %s, caller %q does not hold it", e.Operation, e.Role, e.Caller)
}

// Is checks if the target error is an ErrUnauthorized
func (e *UnauthorizedError) Is(target error) bool {
	return target == ErrUnauthorized
}

// LogFields returns a map of fields for structured logging
func (e *UnauthorizedError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "unauthorized",
		"caller":     e.Caller,
		"role":       e.Role,
		"operation":  e.Operation,
		"error_code": CodeUnauthorized,
	}
}

// NewUnauthorizedError creates a new detailed unauthorized error
func NewUnauthorizedError(caller, role, operation string) error {
	return &UnauthorizedError{
		Caller:    caller,
		Role:      role,
		Operation: operation,
	}
}

// InvalidArguments wraps ErrInvalidArguments with a reason
func InvalidArguments(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArguments, fmt.Sprintf(format, args...))
}

// IsInsufficientFundsError checks if the error is related to insufficient free balance
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsInsufficientAllowanceError checks if the error is related to an allowance shortfall
func IsInsufficientAllowanceError(err error) bool {
	return errors.Is(err, ErrInsufficientAllowance)
}

// IsUnauthorizedError checks if the error is an authorization failure
func IsUnauthorizedError(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsValidationError checks if the error was caused by malformed input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidArguments) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidAddress) ||
		errors.Is(err, ErrAmountOverflow)
}

// IsListingBoundaryError checks if the error was caused by the wrong side of the listing event
func IsListingBoundaryError(err error) bool {
	return errors.Is(err, ErrAlreadyListed) || errors.Is(err, ErrListingNotYetOccurred)
}

// IsNotFoundError checks if the error is a "not found" error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAccountLockedError checks if the error is related to a locked account
func IsAccountLockedError(err error) bool {
	return errors.Is(err, ErrAccountLocked)
}
