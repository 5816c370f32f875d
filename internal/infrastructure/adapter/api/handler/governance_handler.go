package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/vesting-ledger/internal/infrastructure/adapter/api/dto"
)

// GovernanceHandler exposes token metadata, roles and the listing event
type GovernanceHandler struct {
	governance usecase.GovernanceUseCase
	ledger     usecase.LedgerUseCase
	logger     coreport.Logger
}

// NewGovernanceHandler creates a new governance handler instance
func NewGovernanceHandler(
	governance usecase.GovernanceUseCase,
	ledger usecase.LedgerUseCase,
	logger coreport.Logger,
) *GovernanceHandler {
	return &GovernanceHandler{
		governance: governance,
		ledger:     ledger,
		logger:     logger,
	}
}

// GetToken handles GET /token
func (h *GovernanceHandler) GetToken(c *gin.Context) {
	state, err := h.governance.State(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "get_token", err)
		return
	}
	supply, err := h.ledger.TotalSupply(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "get_token", err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		Name:             state.Name,
		Symbol:           state.Symbol,
		Decimals:         state.Decimals,
		TotalSupply:      entity.FormatAmount(supply),
		Owner:            state.Owner.String(),
		Controllers:      toStrings(state.Controllers),
		Listed:           state.IsListed(),
		ListingTimestamp: state.ListingTimestamp,
	})
}

// TransferOwnership handles PUT /governance/owner
func (h *GovernanceHandler) TransferOwnership(c *gin.Context) {
	owner, err := caller(c)
	if err != nil {
		respondError(c, h.logger, "transfer_ownership", err)
		return
	}

	var req dto.OwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}
	newOwner, err := entity.NewAddress(req.NewOwner)
	if err != nil {
		respondError(c, h.logger, "transfer_ownership", err)
		return
	}

	if err := h.governance.TransferOwnership(c.Request.Context(), owner, newOwner); err != nil {
		respondError(c, h.logger, "transfer_ownership", err)
		return
	}
	c.JSON(http.StatusOK, dto.OperationResponse{Success: true})
}

// GetControllers handles GET /governance/controllers
func (h *GovernanceHandler) GetControllers(c *gin.Context) {
	controllers, err := h.governance.Controllers(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "get_controllers", err)
		return
	}
	c.JSON(http.StatusOK, dto.ControllersResponse{Controllers: toStrings(controllers)})
}

// SetControllers handles PUT /governance/controllers
func (h *GovernanceHandler) SetControllers(c *gin.Context) {
	owner, err := caller(c)
	if err != nil {
		respondError(c, h.logger, "set_controllers", err)
		return
	}

	var req dto.ControllersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}
	controllers, err := entity.NewAddresses(req.Controllers)
	if err != nil {
		respondError(c, h.logger, "set_controllers", err)
		return
	}

	if err := h.governance.SetControllers(c.Request.Context(), owner, controllers); err != nil {
		respondError(c, h.logger, "set_controllers", err)
		return
	}
	c.JSON(http.StatusOK, dto.ControllersResponse{Controllers: toStrings(controllers)})
}

// GetListing handles GET /governance/listing
func (h *GovernanceHandler) GetListing(c *gin.Context) {
	ts, err := h.governance.ListingTimestamp(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "get_listing", err)
		return
	}
	c.JSON(http.StatusOK, dto.ListingResponse{Listed: ts != nil, Timestamp: ts})
}

// SetListing handles PUT /governance/listing
func (h *GovernanceHandler) SetListing(c *gin.Context) {
	owner, err := caller(c)
	if err != nil {
		respondError(c, h.logger, "set_listing", err)
		return
	}

	var req dto.ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	if err := h.governance.SetListingTimestamp(c.Request.Context(), owner, req.Timestamp); err != nil {
		respondError(c, h.logger, "set_listing", err)
		return
	}

	h.logger.Info("Listing timestamp set", map[string]any{
		"timestamp": req.Timestamp,
		"owner":     owner.String(),
	})
	ts := req.Timestamp
	c.JSON(http.StatusOK, dto.ListingResponse{Listed: true, Timestamp: &ts})
}
