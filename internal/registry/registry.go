package registry

import (
	"fmt"
	"sync"

	"auction-bid-engine/internal/biddingerrors"
	model "auction-bid-engine/internal/models"
)

// AuctionRegistry owns auction records and the cached current highest bid.
// CommitHighestBid is the only mutation path for the highest-bid field.
type AuctionRegistry interface {
	GetSnapshot(auctionID string) (model.Auction, error)
	// CommitHighestBid stores newAmount as the auction's highest bid only if
	// the stored value still equals expectedPrevious (zero meaning no prior
	// bid). Returns ErrCommitConflict otherwise so the caller can reload a
	// fresh snapshot and retry.
	CommitHighestBid(auctionID string, newAmount, expectedPrevious float64) error
	ListByOwner(ownerID string) ([]model.Auction, error)
	ListAuctions() ([]model.Auction, error)
}

// MemoryRegistry is a concurrency-safe in-memory implementation of AuctionRegistry
type MemoryRegistry struct {
	mu       sync.RWMutex
	auctions map[string]model.Auction // key: auctionID
}

// NewMemoryRegistry creates a new in-memory registry instance
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		auctions: make(map[string]model.Auction),
	}
}

// GetSnapshot returns a copy of the auction's current state
func (r *MemoryRegistry) GetSnapshot(auctionID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get snapshot for auction %s: %w", auctionID, biddingerrors.ErrAuctionNotFound)
	}
	return a, nil
}

// CommitHighestBid applies the compare-and-swap write described on the
// AuctionRegistry interface.
func (r *MemoryRegistry) CommitHighestBid(auctionID string, newAmount, expectedPrevious float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return fmt.Errorf("commit highest bid for auction %s: %w", auctionID, biddingerrors.ErrAuctionNotFound)
	}
	if a.CurrentHighestBid != expectedPrevious {
		return fmt.Errorf("commit highest bid for auction %s: expected %.2f, stored %.2f: %w",
			auctionID, expectedPrevious, a.CurrentHighestBid, biddingerrors.ErrCommitConflict)
	}

	a.CurrentHighestBid = newAmount
	r.auctions[auctionID] = a
	return nil
}

// ListByOwner returns all auctions created by the given owner
func (r *MemoryRegistry) ListByOwner(ownerID string) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var owned []model.Auction
	for _, a := range r.auctions {
		if a.OwnerID == ownerID {
			owned = append(owned, a)
		}
	}
	return owned, nil
}

// ListAuctions returns a copy of every registered auction
func (r *MemoryRegistry) ListAuctions() ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]model.Auction, 0, len(r.auctions))
	for _, a := range r.auctions {
		all = append(all, a)
	}
	return all, nil
}

// AddAuction registers an auction. Auction creation belongs to catalog
// management; this entry point exists for seeding and tests.
func (r *MemoryRegistry) AddAuction(a model.Auction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auctions[a.AuctionID] = a
}
