package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/vesting-ledger/internal/infrastructure/adapter/api/dto"
)

// AccountHandler serves settled account reads.
// Every read settles the account, so released entries disappear from the responses.
type AccountHandler struct {
	ledger usecase.LedgerUseCase
	logger coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(ledger usecase.LedgerUseCase, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{
		ledger: ledger,
		logger: logger,
	}
}

// GetAccount handles GET /accounts/:address
func (h *AccountHandler) GetAccount(c *gin.Context) {
	addr, err := pathAddress(c, "address")
	if err != nil {
		respondError(c, h.logger, "get_account", err)
		return
	}

	view, err := h.ledger.Settle(c.Request.Context(), addr)
	if err != nil {
		respondError(c, h.logger, "get_account", err)
		return
	}

	c.JSON(http.StatusOK, dto.AccountResponse{
		Address:        view.Address.String(),
		Balance:        entity.FormatAmount(view.Balance),
		LockedBalance:  entity.FormatAmount(view.LockedBalance),
		FreeBalance:    entity.FormatAmount(view.FreeBalance),
		MinReleaseTime: view.MinReleaseTimeOrZero(),
		Entries:        toLockEntries(view.Entries),
	})
}

// GetBalance handles GET /accounts/:address/balance
func (h *AccountHandler) GetBalance(c *gin.Context) {
	addr, err := pathAddress(c, "address")
	if err != nil {
		respondError(c, h.logger, "get_balance", err)
		return
	}

	balance, err := h.ledger.BalanceOf(c.Request.Context(), addr)
	if err != nil {
		respondError(c, h.logger, "get_balance", err)
		return
	}

	c.JSON(http.StatusOK, dto.AmountResponse{
		Address: addr.String(),
		Amount:  entity.FormatAmount(balance),
	})
}

// GetLockedBalance handles GET /accounts/:address/locked-balance
func (h *AccountHandler) GetLockedBalance(c *gin.Context) {
	addr, err := pathAddress(c, "address")
	if err != nil {
		respondError(c, h.logger, "get_locked_balance", err)
		return
	}

	locked, err := h.ledger.LockedBalanceOf(c.Request.Context(), addr)
	if err != nil {
		respondError(c, h.logger, "get_locked_balance", err)
		return
	}

	c.JSON(http.StatusOK, dto.AmountResponse{
		Address: addr.String(),
		Amount:  entity.FormatAmount(locked),
	})
}

// GetLocks handles GET /accounts/:address/locks
func (h *AccountHandler) GetLocks(c *gin.Context) {
	addr, err := pathAddress(c, "address")
	if err != nil {
		respondError(c, h.logger, "get_locks", err)
		return
	}

	state, err := h.ledger.LockStateOf(c.Request.Context(), addr)
	if err != nil {
		respondError(c, h.logger, "get_locks", err)
		return
	}

	resp := dto.LocksResponse{
		Address: addr.String(),
		Count:   len(state.Entries),
		Entries: toLockEntries(state.Entries),
	}
	if state.MinReleaseTime != nil {
		resp.MinReleaseTime = *state.MinReleaseTime
	}
	c.JSON(http.StatusOK, resp)
}

// GetAllowance handles GET /accounts/:address/allowances/:spender
func (h *AccountHandler) GetAllowance(c *gin.Context) {
	owner, err := pathAddress(c, "address")
	if err != nil {
		respondError(c, h.logger, "get_allowance", err)
		return
	}
	spender, err := pathAddress(c, "spender")
	if err != nil {
		respondError(c, h.logger, "get_allowance", err)
		return
	}

	amount, err := h.ledger.AllowanceOf(c.Request.Context(), owner, spender)
	if err != nil {
		respondError(c, h.logger, "get_allowance", err)
		return
	}

	c.JSON(http.StatusOK, dto.AllowanceResponse{
		Owner:   owner.String(),
		Spender: spender.String(),
		Amount:  entity.FormatAmount(amount),
	})
}
