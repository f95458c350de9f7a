package validator

import (
	"fmt"
	"time"

	"auction-bid-engine/internal/biddingerrors"
	model "auction-bid-engine/internal/models"
)

// Validate judges a proposed bid against an auction snapshot. It is a pure
// function over its inputs and performs no I/O, so callers must pass the
// snapshot loaded inside their exclusive section.
//
// Rules, in order:
//  1. the amount must be positive
//  2. now must fall inside [StartTime, EndTime); a malformed window
//     (StartTime >= EndTime) always rejects
//  3. a first bid (no prior highest bid) is accepted at any positive amount
//  4. otherwise the amount must strictly exceed the current highest bid plus
//     the auction's bidding step
func Validate(a model.Auction, amount float64, now time.Time) error {
	if amount <= 0 {
		return fmt.Errorf("validate: %w - non-positive bid amount", biddingerrors.ErrInvalidBid)
	}

	if !a.StartTime.Before(a.EndTime) {
		return fmt.Errorf("validate: %w - malformed bidding window", biddingerrors.ErrOutsideWindow)
	}
	if now.Before(a.StartTime) || !now.Before(a.EndTime) {
		return fmt.Errorf("validate: %w - bids accepted between %s and %s",
			biddingerrors.ErrOutsideWindow,
			a.StartTime.UTC().Format(time.RFC3339),
			a.EndTime.UTC().Format(time.RFC3339))
	}

	floor := a.CurrentHighestBid
	if floor <= 0 {
		// First bid on the auction: any positive amount opens the bidding.
		return nil
	}
	if amount > floor+a.BiddingStep {
		return nil
	}

	return fmt.Errorf("validate: %w - amount must exceed %.2f", biddingerrors.ErrBidTooLow, floor+a.BiddingStep)
}
