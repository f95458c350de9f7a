package ledger

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"auction-bid-engine/internal/biddingerrors"
	model "auction-bid-engine/internal/models"
)

// DefaultPageSize bounds ListByAuction pages when the caller passes no size.
const DefaultPageSize = 50

// BidLedger is the append-only store of accepted bids. Entries are never
// mutated after Append; per auction they are ordered by acceptance time.
type BidLedger interface {
	Append(bid model.Bid) error
	// ListByAuction returns one page of bids in ascending acceptance order
	// and an opaque token for the next page ("" when exhausted).
	ListByAuction(auctionID, pageToken string, pageSize int) ([]model.Bid, string, error)
	GetBid(bidID string) (model.Bid, error)
	// LatestBid returns the most recently accepted bid for the auction, or
	// ErrNoBids when none has been accepted yet.
	LatestBid(auctionID string) (model.Bid, error)
	// CountByDate counts accepted bids per calendar day (UTC) across the
	// given auctions, limited to timestamps in [from, to).
	CountByDate(auctionIDs []string, from, to time.Time) (map[string]int, error)
	// CountSince counts accepted bids across the given auctions from the
	// given instant onward.
	CountSince(auctionIDs []string, since time.Time) (int, error)
}

// decodePageToken turns an opaque list token back into an offset.
func decodePageToken(token string) (int, error) {
	if token == "" {
		return 0, nil
	}
	offset, err := strconv.Atoi(token)
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("decode page token %q: %w", token, biddingerrors.ErrInvalidBid)
	}
	return offset, nil
}

// MemoryLedger is a concurrency-safe in-memory implementation of BidLedger
type MemoryLedger struct {
	mu   sync.RWMutex
	bids map[string][]model.Bid // key: auctionID -> bids in append order
	byID map[string]model.Bid   // key: bidID
}

// NewMemoryLedger creates a new in-memory ledger instance
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		bids: make(map[string][]model.Bid),
		byID: make(map[string]model.Bid),
	}
}

// Append records an accepted bid. The ledger never rewrites prior entries.
func (l *MemoryLedger) Append(bid model.Bid) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.byID[bid.BidID]; exists {
		return fmt.Errorf("append bid %s: duplicate id: %w", bid.BidID, biddingerrors.ErrInvalidBid)
	}

	l.bids[bid.AuctionID] = append(l.bids[bid.AuctionID], bid)
	l.byID[bid.BidID] = bid
	return nil
}

// ListByAuction returns one page of the auction's bids in acceptance order
func (l *MemoryLedger) ListByAuction(auctionID, pageToken string, pageSize int) ([]model.Bid, string, error) {
	offset, err := decodePageToken(pageToken)
	if err != nil {
		return nil, "", err
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	all := l.bids[auctionID]
	if offset >= len(all) {
		return []model.Bid{}, "", nil
	}

	end := offset + pageSize
	if end > len(all) {
		end = len(all)
	}

	page := append([]model.Bid(nil), all[offset:end]...)
	next := ""
	if end < len(all) {
		next = strconv.Itoa(end)
	}
	return page, next, nil
}

// GetBid returns a single bid by id
func (l *MemoryLedger) GetBid(bidID string) (model.Bid, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	bid, ok := l.byID[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, biddingerrors.ErrBidNotFound)
	}
	return bid, nil
}

// LatestBid returns the most recently accepted bid for the auction
func (l *MemoryLedger) LatestBid(auctionID string) (model.Bid, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	all := l.bids[auctionID]
	if len(all) == 0 {
		return model.Bid{}, fmt.Errorf("latest bid for auction %s: %w", auctionID, biddingerrors.ErrNoBids)
	}
	return all[len(all)-1], nil
}

// CountByDate counts accepted bids per day across the given auctions
func (l *MemoryLedger) CountByDate(auctionIDs []string, from, to time.Time) (map[string]int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	counts := make(map[string]int)
	for _, id := range auctionIDs {
		for _, bid := range l.bids[id] {
			if bid.CreatedAt.Before(from) || !bid.CreatedAt.Before(to) {
				continue
			}
			counts[bid.CreatedAt.UTC().Format("2006-01-02")]++
		}
	}
	return counts, nil
}

// CountSince counts accepted bids across the given auctions since an instant
func (l *MemoryLedger) CountSince(auctionIDs []string, since time.Time) (int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	count := 0
	for _, id := range auctionIDs {
		for _, bid := range l.bids[id] {
			if !bid.CreatedAt.Before(since) {
				count++
			}
		}
	}
	return count, nil
}
