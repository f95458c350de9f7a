package helpers

// Request/Response DTOs
type PlaceBidRequest struct {
	AuctionID string  `json:"auction_id" binding:"required"`
	BidderID  string  `json:"bidder_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	AuctionID string  `json:"auction_id"`
	BidderID  string  `json:"bidder_id"`
	Amount    float64 `json:"amount"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
}

type BidListResponse struct {
	Bids          []BidResponse `json:"bids"`
	NextPageToken string        `json:"next_page_token,omitempty"`
}

type TotalBidsResponse struct {
	TotalBids int `json:"total_bids"`
}
