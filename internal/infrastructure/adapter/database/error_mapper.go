package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/vesting-ledger/internal/domain/error"
	"gorm.io/gorm"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error.
// Errors that already carry a domain meaning pass through unchanged.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}
	if isDomainError(err) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrNotFound
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: %v", errs.ErrDatabaseConnection, operation, err)
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	// Contention that survived every retry
	case strings.Contains(errMsg, "deadlock") ||
		strings.Contains(errMsg, "serialize") ||
		strings.Contains(errMsg, "serialization") ||
		strings.Contains(errMsg, "lock timeout"):
		return fmt.Errorf("%w: %s", errs.ErrAccountLocked, operation)

	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset"):
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, operation)

	case strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "deadline exceeded"):
		return fmt.Errorf("%w: %s operation timed out", errs.ErrDatabaseConnection, operation)

	case strings.Contains(errMsg, "numeric field overflow") ||
		strings.Contains(errMsg, "out of range"):
		return fmt.Errorf("%w: %s", errs.ErrAmountOverflow, operation)

	default:
		return fmt.Errorf("%w: %s: %v", errs.ErrInternalServer, operation, err)
	}
}

func isDomainError(err error) bool {
	return errs.ErrorCode(err) != errs.CodeInternalServer || errors.Is(err, errs.ErrInternalServer)
}
