package dto

// PreListingLockRequest locks amounts for a recipient at offsets, in seconds, from the listing moment
type PreListingLockRequest struct {
	Recipient string   `json:"recipient" binding:"required"`
	Amounts   []string `json:"amounts" binding:"required"`
	Offsets   []int64  `json:"offsets" binding:"required"`
}

// PostListingLockRequest locks amounts for a recipient until absolute unix timestamps
type PostListingLockRequest struct {
	Recipient    string   `json:"recipient" binding:"required"`
	Amounts      []string `json:"amounts" binding:"required"`
	ReleaseTimes []int64  `json:"releaseTimes" binding:"required"`
}
