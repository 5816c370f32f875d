package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/holiman/uint256"

	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/vesting-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/governance"
	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/vesting-ledger/internal/infrastructure/adapter/api/dto"
)

// LockHandler lets controllers fund vesting schedules
type LockHandler struct {
	ledger usecase.LedgerUseCase
	auth   governance.Authorizer
	logger coreport.Logger
}

// NewLockHandler creates a new lock handler instance
func NewLockHandler(ledger usecase.LedgerUseCase, auth governance.Authorizer, logger coreport.Logger) *LockHandler {
	return &LockHandler{
		ledger: ledger,
		auth:   auth,
		logger: logger,
	}
}

// controller resolves the caller and rejects non-controllers before the body is parsed,
// so role failures answer 403 regardless of payload.
func (h *LockHandler) controller(c *gin.Context, operation string) (entity.Address, bool) {
	addr, err := caller(c)
	if err != nil {
		respondError(c, h.logger, operation, err)
		return "", false
	}
	ok, err := h.auth.IsController(c.Request.Context(), addr)
	if err != nil {
		respondError(c, h.logger, operation, err)
		return "", false
	}
	if !ok {
		respondError(c, h.logger, operation, errs.NewUnauthorizedError(addr.String(), "controller", operation))
		return "", false
	}
	return addr, true
}

// CreatePreListingLocks handles POST /locks/pre-listing
func (h *LockHandler) CreatePreListingLocks(c *gin.Context) {
	controller, ok := h.controller(c, "create_pre_listing_locks")
	if !ok {
		return
	}

	var req dto.PreListingLockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	recipient, amounts, err := parseLockTarget(req.Recipient, req.Amounts)
	if err != nil {
		respondError(c, h.logger, "create_pre_listing_locks", err)
		return
	}

	err = h.ledger.CreatePreListingLocks(c.Request.Context(), controller, recipient, amounts, req.Offsets)
	if err != nil {
		respondError(c, h.logger, "create_pre_listing_locks", err)
		return
	}

	h.logger.Info("Pre-listing locks created", map[string]any{
		"controller": controller.String(),
		"recipient":  recipient.String(),
		"entries":    len(amounts),
	})
	c.JSON(http.StatusCreated, dto.OperationResponse{Success: true})
}

// CreatePostListingLocks handles POST /locks/post-listing
func (h *LockHandler) CreatePostListingLocks(c *gin.Context) {
	controller, ok := h.controller(c, "create_post_listing_locks")
	if !ok {
		return
	}

	var req dto.PostListingLockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	recipient, amounts, err := parseLockTarget(req.Recipient, req.Amounts)
	if err != nil {
		respondError(c, h.logger, "create_post_listing_locks", err)
		return
	}

	err = h.ledger.CreatePostListingLocks(c.Request.Context(), controller, recipient, amounts, req.ReleaseTimes)
	if err != nil {
		respondError(c, h.logger, "create_post_listing_locks", err)
		return
	}

	h.logger.Info("Post-listing locks created", map[string]any{
		"controller": controller.String(),
		"recipient":  recipient.String(),
		"entries":    len(amounts),
	})
	c.JSON(http.StatusCreated, dto.OperationResponse{Success: true})
}

func parseLockTarget(rawRecipient string, rawAmounts []string) (entity.Address, []*uint256.Int, error) {
	recipient, err := entity.NewAddress(rawRecipient)
	if err != nil {
		return "", nil, err
	}
	amounts, err := entity.ParseAmounts(rawAmounts)
	if err != nil {
		return "", nil, err
	}
	return recipient, amounts, nil
}
