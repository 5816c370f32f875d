package dto

// LockEntryResponse is one pending lock entry
type LockEntryResponse struct {
	Amount      string `json:"amount"`
	ReleaseTime int64  `json:"releaseTime"`
	// Relative entries carry an offset from the listing moment that has not happened yet
	Relative bool `json:"relative,omitempty"`
}

// AccountResponse represents the settled state of an account
type AccountResponse struct {
	Address        string              `json:"address"`
	Balance        string              `json:"balance"`
	LockedBalance  string              `json:"lockedBalance"`
	FreeBalance    string              `json:"freeBalance"`
	MinReleaseTime int64               `json:"minReleaseTime"`
	Entries        []LockEntryResponse `json:"entries"`
}

// AmountResponse carries a single amount of an account
type AmountResponse struct {
	Address string `json:"address"`
	Amount  string `json:"amount"`
}

// LocksResponse lists the pending lock entries of an account in release order
type LocksResponse struct {
	Address        string              `json:"address"`
	MinReleaseTime int64               `json:"minReleaseTime"`
	Count          int                 `json:"count"`
	Entries        []LockEntryResponse `json:"entries"`
}

// AllowanceResponse carries the allowance owner granted to spender
type AllowanceResponse struct {
	Owner   string `json:"owner"`
	Spender string `json:"spender"`
	Amount  string `json:"amount"`
}
