package dto

// TransferRequest moves the caller's free balance to another account
type TransferRequest struct {
	To     string `json:"to" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

// MultiTransferRequest pays several recipients from the caller in one atomic step
type MultiTransferRequest struct {
	Recipients []string `json:"recipients" binding:"required"`
	Amounts    []string `json:"amounts" binding:"required"`
}

// TransferFromRequest spends an allowance the caller holds over From
type TransferFromRequest struct {
	From   string `json:"from" binding:"required"`
	To     string `json:"to" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

// ApproveRequest sets the allowance of a spender over the caller's balance
type ApproveRequest struct {
	Spender string `json:"spender" binding:"required"`
	Amount  string `json:"amount" binding:"required"`
}

// BurnRequest destroys part of the caller's free balance
type BurnRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// OperationResponse acknowledges a state-changing request
type OperationResponse struct {
	Success bool `json:"success"`
}
