package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/vesting-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/vesting-ledger/internal/infrastructure/adapter/api/dto"
)

// TransferHandler handles balance movements issued by the caller
type TransferHandler struct {
	ledger usecase.LedgerUseCase
	logger coreport.Logger
}

// NewTransferHandler creates a new transfer handler instance
func NewTransferHandler(ledger usecase.LedgerUseCase, logger coreport.Logger) *TransferHandler {
	return &TransferHandler{
		ledger: ledger,
		logger: logger,
	}
}

// Transfer handles POST /transfers
func (h *TransferHandler) Transfer(c *gin.Context) {
	from, err := caller(c)
	if err != nil {
		respondError(c, h.logger, "transfer", err)
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	to, err := entity.NewAddress(req.To)
	if err != nil {
		respondError(c, h.logger, "transfer", err)
		return
	}
	amount, err := entity.ParseAmount(req.Amount)
	if err != nil {
		respondError(c, h.logger, "transfer", err)
		return
	}

	if err := h.ledger.Transfer(c.Request.Context(), from, to, amount); err != nil {
		respondError(c, h.logger, "transfer", err)
		return
	}
	c.JSON(http.StatusOK, dto.OperationResponse{Success: true})
}

// MultiTransfer handles POST /transfers/batch
func (h *TransferHandler) MultiTransfer(c *gin.Context) {
	from, err := caller(c)
	if err != nil {
		respondError(c, h.logger, "multi_transfer", err)
		return
	}

	var req dto.MultiTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}
	if len(req.Recipients) != len(req.Amounts) {
		respondError(c, h.logger, "multi_transfer", errs.InvalidArguments(
			"recipients has %d entries, amounts has %d", len(req.Recipients), len(req.Amounts)))
		return
	}

	recipients, err := entity.NewAddresses(req.Recipients)
	if err != nil {
		respondError(c, h.logger, "multi_transfer", err)
		return
	}
	amounts, err := entity.ParseAmounts(req.Amounts)
	if err != nil {
		respondError(c, h.logger, "multi_transfer", err)
		return
	}

	transfers := make([]usecase.TransferRequest, len(recipients))
	for i := range recipients {
		transfers[i] = usecase.TransferRequest{To: recipients[i], Amount: amounts[i]}
	}

	if err := h.ledger.MultiTransfer(c.Request.Context(), from, transfers); err != nil {
		respondError(c, h.logger, "multi_transfer", err)
		return
	}
	c.JSON(http.StatusOK, dto.OperationResponse{Success: true})
}

// TransferFrom handles POST /transfers/delegated
func (h *TransferHandler) TransferFrom(c *gin.Context) {
	spender, err := caller(c)
	if err != nil {
		respondError(c, h.logger, "transfer_from", err)
		return
	}

	var req dto.TransferFromRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	owner, err := entity.NewAddress(req.From)
	if err != nil {
		respondError(c, h.logger, "transfer_from", err)
		return
	}
	to, err := entity.NewAddress(req.To)
	if err != nil {
		respondError(c, h.logger, "transfer_from", err)
		return
	}
	amount, err := entity.ParseAmount(req.Amount)
	if err != nil {
		respondError(c, h.logger, "transfer_from", err)
		return
	}

	if err := h.ledger.TransferFrom(c.Request.Context(), spender, owner, to, amount); err != nil {
		respondError(c, h.logger, "transfer_from", err)
		return
	}
	c.JSON(http.StatusOK, dto.OperationResponse{Success: true})
}

// Approve handles POST /approvals
func (h *TransferHandler) Approve(c *gin.Context) {
	owner, err := caller(c)
	if err != nil {
		respondError(c, h.logger, "approve", err)
		return
	}

	var req dto.ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	spender, err := entity.NewAddress(req.Spender)
	if err != nil {
		respondError(c, h.logger, "approve", err)
		return
	}
	amount, err := entity.ParseAmount(req.Amount)
	if err != nil {
		respondError(c, h.logger, "approve", err)
		return
	}

	if err := h.ledger.Approve(c.Request.Context(), owner, spender, amount); err != nil {
		respondError(c, h.logger, "approve", err)
		return
	}
	c.JSON(http.StatusOK, dto.OperationResponse{Success: true})
}

// Burn handles POST /burns
func (h *TransferHandler) Burn(c *gin.Context) {
	holder, err := caller(c)
	if err != nil {
		respondError(c, h.logger, "burn", err)
		return
	}

	var req dto.BurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	amount, err := entity.ParseAmount(req.Amount)
	if err != nil {
		respondError(c, h.logger, "burn", err)
		return
	}

	if err := h.ledger.Burn(c.Request.Context(), holder, amount); err != nil {
		respondError(c, h.logger, "burn", err)
		return
	}
	c.JSON(http.StatusOK, dto.OperationResponse{Success: true})
}
