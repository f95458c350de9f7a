package models

import "time"

// Auction represents a catalog item open for bidding during a fixed time
// window [StartTime, EndTime). CurrentHighestBid caches the amount of the
// most recently accepted bid; zero means no bid has been accepted yet. It is
// mutated only through the registry's compare-and-swap commit.
type Auction struct {
	AuctionID         string    `json:"auction_id"`
	OwnerID           string    `json:"owner_id"`
	Title             string    `json:"title"`
	StartTime         time.Time `json:"start_time"`
	EndTime           time.Time `json:"end_time"`
	BiddingStep       float64   `json:"bidding_step"`
	CurrentHighestBid float64   `json:"current_highest_bid"`
}

// Bid is an immutable record of a bidder's offer on an auction.
// Amount and AuctionID never change after creation; IsActive is a soft
// cancellation flag owned by moderation outside this core.
type Bid struct {
	BidID     string    `json:"bid_id"`
	AuctionID string    `json:"auction_id"`
	BidderID  string    `json:"bidder_id"`
	Amount    float64   `json:"amount"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// DateBidCount is one row of the per-day accepted-bid projection used by
// reporting dashboards.
type DateBidCount struct {
	Date  string `json:"bid_date"`
	Count int    `json:"bid_count"`
}
