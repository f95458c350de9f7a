package bidding

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"auction-bid-engine/internal/biddingerrors"
	"auction-bid-engine/internal/ledger"
	"auction-bid-engine/internal/metrics"
	model "auction-bid-engine/internal/models"
	"auction-bid-engine/internal/registry"
	"auction-bid-engine/internal/validator"
	"auction-bid-engine/utils"
)

// DefaultMaxCommitRetries bounds the reload-and-retry loop after a
// compare-and-swap conflict. Conflicts cannot occur while the per-auction
// section is respected, so a small bound is enough to absorb a coordinator
// bypass or a second process sharing the registry.
const DefaultMaxCommitRetries = 3

// Options tune a BidEngine. The zero value selects sane defaults.
type Options struct {
	MaxCommitRetries int
	Metrics          metrics.Recorder
	// Now supplies the engine clock; tests override it for deterministic
	// window checks.
	Now func() time.Time
}

// BidEngine accepts bids against auctions. It serializes bid acceptance per
// auction so no two bids race on the cached highest-bid field; bids on
// different auctions proceed fully in parallel.
type BidEngine struct {
	reg        registry.AuctionRegistry
	led        ledger.BidLedger
	maxRetries int
	metrics    metrics.Recorder
	now        func() time.Time

	mu    sync.Mutex
	locks map[string]chan struct{} // key: auctionID -> exclusive section
}

// NewBidEngine creates a new BidEngine instance
func NewBidEngine(reg registry.AuctionRegistry, led ledger.BidLedger, opts Options) *BidEngine {
	if opts.MaxCommitRetries <= 0 {
		opts.MaxCommitRetries = DefaultMaxCommitRetries
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.Noop{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &BidEngine{
		reg:        reg,
		led:        led,
		maxRetries: opts.MaxCommitRetries,
		metrics:    opts.Metrics,
		now:        opts.Now,
		locks:      make(map[string]chan struct{}),
	}
}

// acquire enters the auction's exclusive section, or gives up when the
// caller's context is cancelled while waiting. The wait is bounded by the
// short critical section of whichever bid holds the lock, never by I/O.
func (e *BidEngine) acquire(ctx context.Context, auctionID string) (release func(), err error) {
	e.mu.Lock()
	lock, ok := e.locks[auctionID]
	if !ok {
		lock = make(chan struct{}, 1)
		e.locks[auctionID] = lock
	}
	e.mu.Unlock()

	select {
	case lock <- struct{}{}:
		return func() { <-lock }, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("engine: waiting for auction %s: %w", auctionID, ctx.Err())
	}
}

// PlaceBid validates and records a bid, updating the auction's highest bid
// atomically with respect to concurrent bidders on the same auction.
func (e *BidEngine) PlaceBid(ctx context.Context, auctionID, bidderID string, amount float64) (model.Bid, error) {
	if auctionID == "" || bidderID == "" {
		return model.Bid{}, fmt.Errorf("engine: %w - missing auctionID or bidderID", biddingerrors.ErrInvalidBid)
	}

	start := e.now()
	defer func() {
		e.metrics.RecordPlacementLatency(e.now().Sub(start))
	}()

	release, err := e.acquire(ctx, auctionID)
	if err != nil {
		return model.Bid{}, err
	}
	defer release()

	for attempt := 0; attempt <= e.maxRetries; attempt++ {
		snapshot, err := e.reg.GetSnapshot(auctionID)
		if err != nil {
			e.metrics.RecordBidRejected("auction_not_found")
			return model.Bid{}, fmt.Errorf("engine: failed to load auction %s: %w", auctionID, err)
		}

		if err := validator.Validate(snapshot, amount, e.now()); err != nil {
			e.metrics.RecordBidRejected(rejectionReason(err))
			return model.Bid{}, err
		}

		err = e.reg.CommitHighestBid(auctionID, amount, snapshot.CurrentHighestBid)
		if errors.Is(err, biddingerrors.ErrCommitConflict) {
			// Someone committed past our snapshot; reload and re-validate.
			e.metrics.RecordCommitRetry()
			continue
		}
		if err != nil {
			return model.Bid{}, fmt.Errorf("engine: failed to commit highest bid for auction %s: %w", auctionID, err)
		}

		bid := model.Bid{
			BidID:     utils.GenerateID(),
			AuctionID: auctionID,
			BidderID:  bidderID,
			Amount:    amount,
			IsActive:  true,
			CreatedAt: e.now().UTC(),
		}

		if err := e.led.Append(bid); err != nil {
			return model.Bid{}, e.recoverLedgerFailure(auctionID, amount, snapshot.CurrentHighestBid, err)
		}

		e.metrics.RecordBidAccepted()
		return bid, nil
	}

	e.metrics.RecordBidRejected("contention")
	return model.Bid{}, fmt.Errorf("engine: auction %s: %w", auctionID, biddingerrors.ErrContention)
}

// recoverLedgerFailure handles an append failure after a successful registry
// commit. It tries to roll the registry back to the pre-bid value; if even
// that fails the stores have diverged and the auditor will flag the auction.
// Either way the bid is reported as failed, never as accepted.
func (e *BidEngine) recoverLedgerFailure(auctionID string, committed, previous float64, appendErr error) error {
	if rbErr := e.reg.CommitHighestBid(auctionID, previous, committed); rbErr != nil {
		e.metrics.RecordDivergence()
		utils.Error("engine: registry rollback failed, stores diverged", map[string]any{
			"auction_id": auctionID,
			"committed":  committed,
			"previous":   previous,
			"append":     appendErr.Error(),
			"rollback":   rbErr.Error(),
		})
		return fmt.Errorf("engine: auction %s diverged (rollback failed: %v): %w",
			auctionID, rbErr, biddingerrors.ErrLedgerWrite)
	}

	utils.Error("engine: ledger append failed, registry rolled back", map[string]any{
		"auction_id": auctionID,
		"committed":  committed,
		"append":     appendErr.Error(),
	})
	return fmt.Errorf("engine: auction %s: %v: %w", auctionID, appendErr, biddingerrors.ErrLedgerWrite)
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, biddingerrors.ErrOutsideWindow):
		return "outside_window"
	case errors.Is(err, biddingerrors.ErrBidTooLow):
		return "bid_too_low"
	case errors.Is(err, biddingerrors.ErrInvalidBid):
		return "invalid_bid"
	default:
		return "other"
	}
}

// ListBidsForAuction returns one page of an auction's accepted bids in
// ascending acceptance order, with an opaque token to resume from.
func (e *BidEngine) ListBidsForAuction(auctionID, pageToken string, pageSize int) ([]model.Bid, string, error) {
	if auctionID == "" {
		return nil, "", fmt.Errorf("engine: %w - empty auction ID", biddingerrors.ErrInvalidBid)
	}

	// Confirm the auction exists so unknown ids surface as 404s rather than
	// empty pages.
	if _, err := e.reg.GetSnapshot(auctionID); err != nil {
		return nil, "", fmt.Errorf("engine: failed to load auction %s: %w", auctionID, err)
	}

	bids, next, err := e.led.ListByAuction(auctionID, pageToken, pageSize)
	if err != nil {
		return nil, "", fmt.Errorf("engine: failed to list bids for auction %s: %w", auctionID, err)
	}
	return bids, next, nil
}

// GetHighestBid returns the most recently accepted bid for an auction
func (e *BidEngine) GetHighestBid(auctionID string) (model.Bid, error) {
	if auctionID == "" {
		return model.Bid{}, fmt.Errorf("engine: %w - empty auction ID", biddingerrors.ErrInvalidBid)
	}

	bid, err := e.led.LatestBid(auctionID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("engine: failed to get highest bid for auction %s: %w", auctionID, err)
	}
	return bid, nil
}

// GetBid returns a single accepted bid by id
func (e *BidEngine) GetBid(bidID string) (model.Bid, error) {
	if bidID == "" {
		return model.Bid{}, fmt.Errorf("engine: %w - empty bid ID", biddingerrors.ErrInvalidBid)
	}

	bid, err := e.led.GetBid(bidID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("engine: failed to get bid %s: %w", bidID, err)
	}
	return bid, nil
}

// AggregateBidCounts returns per-day accepted-bid counts across all auctions
// owned by ownerID, limited to [from, to). Dates are sorted ascending.
func (e *BidEngine) AggregateBidCounts(ownerID string, from, to time.Time) ([]model.DateBidCount, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("engine: %w - empty owner ID", biddingerrors.ErrInvalidBid)
	}
	if !from.Before(to) {
		return nil, fmt.Errorf("engine: %w - empty date range", biddingerrors.ErrInvalidBid)
	}

	ids, err := e.ownedAuctionIDs(ownerID)
	if err != nil {
		return nil, err
	}

	counts, err := e.led.CountByDate(ids, from, to)
	if err != nil {
		return nil, fmt.Errorf("engine: failed to aggregate bid counts for owner %s: %w", ownerID, err)
	}

	rows := make([]model.DateBidCount, 0, len(counts))
	for date, count := range counts {
		rows = append(rows, model.DateBidCount{Date: date, Count: count})
	}
	// ISO dates sort lexicographically.
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows, nil
}

// TotalBids returns the number of bids accepted on the owner's auctions
// within the named period: "week", "month" or "6months".
func (e *BidEngine) TotalBids(ownerID, period string) (int, error) {
	if ownerID == "" {
		return 0, fmt.Errorf("engine: %w - empty owner ID", biddingerrors.ErrInvalidBid)
	}

	var since time.Time
	now := e.now()
	switch period {
	case "week":
		since = now.AddDate(0, 0, -7)
	case "month":
		since = now.AddDate(0, -1, 0)
	case "6months":
		since = now.AddDate(0, -6, 0)
	default:
		return 0, fmt.Errorf("engine: %w - unknown period %q", biddingerrors.ErrInvalidBid, period)
	}

	ids, err := e.ownedAuctionIDs(ownerID)
	if err != nil {
		return 0, err
	}

	count, err := e.led.CountSince(ids, since)
	if err != nil {
		return 0, fmt.Errorf("engine: failed to count bids for owner %s: %w", ownerID, err)
	}
	return count, nil
}

func (e *BidEngine) ownedAuctionIDs(ownerID string) ([]string, error) {
	owned, err := e.reg.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("engine: failed to list auctions for owner %s: %w", ownerID, err)
	}
	ids := make([]string, 0, len(owned))
	for _, a := range owned {
		ids = append(ids, a.AuctionID)
	}
	return ids, nil
}
