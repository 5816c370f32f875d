package dto

// TokenResponse describes the token: metadata, supply, roles and listing
type TokenResponse struct {
	Name             string   `json:"name"`
	Symbol           string   `json:"symbol"`
	Decimals         uint8    `json:"decimals"`
	TotalSupply      string   `json:"totalSupply"`
	Owner            string   `json:"owner"`
	Controllers      []string `json:"controllers"`
	Listed           bool     `json:"listed"`
	ListingTimestamp *int64   `json:"listingTimestamp,omitempty"`
}

// OwnershipRequest hands ownership to a new address
type OwnershipRequest struct {
	NewOwner string `json:"newOwner" binding:"required"`
}

// ControllersRequest replaces the controller roster
type ControllersRequest struct {
	Controllers []string `json:"controllers" binding:"required"`
}

// ControllersResponse lists the controller roster
type ControllersResponse struct {
	Controllers []string `json:"controllers"`
}

// ListingRequest sets the one-time listing timestamp
type ListingRequest struct {
	Timestamp int64 `json:"timestamp" binding:"required"`
}

// ListingResponse reports whether and when the listing happened
type ListingResponse struct {
	Listed    bool   `json:"listed"`
	Timestamp *int64 `json:"timestamp,omitempty"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}
