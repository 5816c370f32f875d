package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/vesting-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/vesting-ledger/internal/infrastructure/adapter/api/dto"
)

// CallerHeader carries the identity of the account issuing a request
const CallerHeader = "X-Caller-Address"

// fieldLogger is implemented by domain errors that carry structured details
type fieldLogger interface {
	LogFields() map[string]any
}

// StatusCode maps a domain error to the HTTP status returned to clients
func StatusCode(err error) int {
	switch {
	case errs.IsValidationError(err):
		return http.StatusBadRequest
	case errs.IsUnauthorizedError(err):
		return http.StatusForbidden
	case errs.IsNotFoundError(err):
		return http.StatusNotFound
	case errs.IsListingBoundaryError(err), errs.IsAccountLockedError(err):
		return http.StatusConflict
	case errs.IsInsufficientFundsError(err), errs.IsInsufficientAllowanceError(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrDatabaseConnection):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error response and logs it. Server-side failures never leak
// their message to the client.
func respondError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	status := StatusCode(err)

	fields := map[string]any{
		"operation":  operation,
		"error":      err.Error(),
		"status":     status,
		"request_id": c.GetString("request_id"),
	}
	var detailed fieldLogger
	if errors.As(err, &detailed) {
		for k, v := range detailed.LogFields() {
			fields[k] = v
		}
	}

	message := err.Error()
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", fields)
		message = "Internal server error"
		if status == http.StatusServiceUnavailable {
			message = "Service temporarily unavailable"
		}
	} else {
		logger.Debug("Request rejected", fields)
	}

	_ = c.Error(err)
	c.JSON(status, dto.ErrorResponse{
		Code:    errs.ErrorCode(err),
		Message: message,
	})
}

// badRequest answers malformed payloads that never reached the domain
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    errs.CodeInvalidArguments,
		Message: message,
	})
}

// caller extracts the calling account from the request headers
func caller(c *gin.Context) (entity.Address, error) {
	addr, err := entity.NewAddress(c.GetHeader(CallerHeader))
	if err != nil {
		return "", fmt.Errorf("%w: missing or invalid %s header", errs.ErrUnauthorized, CallerHeader)
	}
	return addr, nil
}

// pathAddress reads and validates an address path parameter
func pathAddress(c *gin.Context, name string) (entity.Address, error) {
	return entity.NewAddress(c.Param(name))
}

func toLockEntries(entries []entity.LockEntry) []dto.LockEntryResponse {
	out := make([]dto.LockEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, dto.LockEntryResponse{
			Amount:      entity.FormatAmount(entry.Amount),
			ReleaseTime: entry.ReleaseTime,
			Relative:    entry.Relative,
		})
	}
	return out
}

func toStrings(addresses []entity.Address) []string {
	out := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		out = append(out, addr.String())
	}
	return out
}
