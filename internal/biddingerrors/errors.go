package biddingerrors

import "errors"

// Store-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrBidNotFound     = errors.New("bid not found")
	ErrNoBids          = errors.New("no bids found for auction")
	ErrCommitConflict  = errors.New("highest bid changed since snapshot")
)

// Business logic errors
var (
	ErrInvalidBid    = errors.New("invalid bid")
	ErrBidTooLow     = errors.New("bid amount too low")
	ErrOutsideWindow = errors.New("auction is not open for bidding")
	ErrContention    = errors.New("auction is under heavy contention, resubmit bid")
)

// ErrLedgerWrite marks a consistency fault: the registry committed the new
// highest bid but the ledger append failed. Callers must never report the
// bid as accepted when they see this error.
var ErrLedgerWrite = errors.New("ledger write failed after registry commit")
