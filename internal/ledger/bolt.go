package ledger

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	bolt "github.com/boltdb/bolt"

	"auction-bid-engine/internal/biddingerrors"
	model "auction-bid-engine/internal/models"
)

var (
	bidsBucket     = []byte("bids")     // bidID -> JSON bid
	auctionsBucket = []byte("auctions") // auctionID -> nested bucket: seq -> bidID
)

// BoltLedger is a BidLedger backed by an embedded BoltDB file. Bids are
// stored once under their id and indexed per auction by an insertion
// sequence, which preserves acceptance order without timestamps comparisons.
type BoltLedger struct {
	db *bolt.DB
}

// NewBoltLedger opens (or creates) the ledger database at the given path
func NewBoltLedger(path string) (*BoltLedger, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open ledger db %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bidsBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(auctionsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("prepare ledger buckets: %w", err)
	}

	return &BoltLedger{db: db}, nil
}

// Close releases the database file lock
func (l *BoltLedger) Close() error {
	return l.db.Close()
}

func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}

// Append records an accepted bid
func (l *BoltLedger) Append(bid model.Bid) error {
	return l.db.Update(func(tx *bolt.Tx) error {
		bids := tx.Bucket(bidsBucket)
		if bids.Get([]byte(bid.BidID)) != nil {
			return fmt.Errorf("append bid %s: duplicate id: %w", bid.BidID, biddingerrors.ErrInvalidBid)
		}

		data, err := json.Marshal(bid)
		if err != nil {
			return fmt.Errorf("append bid %s: %w", bid.BidID, err)
		}
		if err := bids.Put([]byte(bid.BidID), data); err != nil {
			return err
		}

		index, err := tx.Bucket(auctionsBucket).CreateBucketIfNotExists([]byte(bid.AuctionID))
		if err != nil {
			return err
		}
		seq, err := index.NextSequence()
		if err != nil {
			return err
		}
		return index.Put(seqKey(seq), []byte(bid.BidID))
	})
}

// ListByAuction returns one page of the auction's bids in acceptance order
func (l *BoltLedger) ListByAuction(auctionID, pageToken string, pageSize int) ([]model.Bid, string, error) {
	offset, err := decodePageToken(pageToken)
	if err != nil {
		return nil, "", err
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	page := []model.Bid{}
	next := ""

	err = l.db.View(func(tx *bolt.Tx) error {
		index := tx.Bucket(auctionsBucket).Bucket([]byte(auctionID))
		if index == nil {
			return nil
		}
		bids := tx.Bucket(bidsBucket)

		pos := 0
		c := index.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			if pos < offset {
				pos++
				continue
			}
			if len(page) == pageSize {
				next = strconv.Itoa(pos)
				return nil
			}

			var bid model.Bid
			if err := json.Unmarshal(bids.Get(v), &bid); err != nil {
				return fmt.Errorf("decode bid %s: %w", v, err)
			}
			page = append(page, bid)
			pos++
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	return page, next, nil
}

// GetBid returns a single bid by id
func (l *BoltLedger) GetBid(bidID string) (model.Bid, error) {
	var bid model.Bid

	err := l.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bidsBucket).Get([]byte(bidID))
		if data == nil {
			return fmt.Errorf("get bid %s: %w", bidID, biddingerrors.ErrBidNotFound)
		}
		return json.Unmarshal(data, &bid)
	})
	if err != nil {
		return model.Bid{}, err
	}
	return bid, nil
}

// LatestBid returns the most recently accepted bid for the auction
func (l *BoltLedger) LatestBid(auctionID string) (model.Bid, error) {
	var bid model.Bid

	err := l.db.View(func(tx *bolt.Tx) error {
		index := tx.Bucket(auctionsBucket).Bucket([]byte(auctionID))
		if index == nil {
			return fmt.Errorf("latest bid for auction %s: %w", auctionID, biddingerrors.ErrNoBids)
		}
		k, v := index.Cursor().Last()
		if k == nil {
			return fmt.Errorf("latest bid for auction %s: %w", auctionID, biddingerrors.ErrNoBids)
		}
		return json.Unmarshal(tx.Bucket(bidsBucket).Get(v), &bid)
	})
	if err != nil {
		return model.Bid{}, err
	}
	return bid, nil
}

// CountByDate counts accepted bids per day across the given auctions
func (l *BoltLedger) CountByDate(auctionIDs []string, from, to time.Time) (map[string]int, error) {
	counts := make(map[string]int)

	err := l.forEachBid(auctionIDs, func(bid model.Bid) {
		if bid.CreatedAt.Before(from) || !bid.CreatedAt.Before(to) {
			return
		}
		counts[bid.CreatedAt.UTC().Format("2006-01-02")]++
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// CountSince counts accepted bids across the given auctions since an instant
func (l *BoltLedger) CountSince(auctionIDs []string, since time.Time) (int, error) {
	count := 0

	err := l.forEachBid(auctionIDs, func(bid model.Bid) {
		if !bid.CreatedAt.Before(since) {
			count++
		}
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (l *BoltLedger) forEachBid(auctionIDs []string, fn func(model.Bid)) error {
	return l.db.View(func(tx *bolt.Tx) error {
		bids := tx.Bucket(bidsBucket)
		for _, auctionID := range auctionIDs {
			index := tx.Bucket(auctionsBucket).Bucket([]byte(auctionID))
			if index == nil {
				continue
			}
			err := index.ForEach(func(_, v []byte) error {
				var bid model.Bid
				if err := json.Unmarshal(bids.Get(v), &bid); err != nil {
					return fmt.Errorf("decode bid %s: %w", v, err)
				}
				fn(bid)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}
