// Package audit reconciles the auction registry against the bid ledger.
//
// A successful registry commit followed by a failed ledger append leaves the
// two stores disagreeing about an auction's highest bid. The engine rolls
// back when it can; the auditor is the safety net that finds anything left
// behind and raises it to the operator path.
package audit

import (
	"errors"
	"fmt"

	"github.com/robfig/cron/v3"

	"auction-bid-engine/internal/biddingerrors"
	"auction-bid-engine/internal/ledger"
	"auction-bid-engine/internal/metrics"
	"auction-bid-engine/internal/registry"
	"auction-bid-engine/utils"
)

// Divergence describes one auction whose cached highest bid does not match
// the ledger's most recently accepted amount.
type Divergence struct {
	AuctionID      string
	RegistryAmount float64
	LedgerAmount   float64
}

// Auditor periodically compares every auction's cached highest bid with the
// ledger and reports mismatches.
type Auditor struct {
	reg     registry.AuctionRegistry
	led     ledger.BidLedger
	metrics metrics.Recorder
	cron    *cron.Cron
}

// NewAuditor creates a new Auditor instance
func NewAuditor(reg registry.AuctionRegistry, led ledger.BidLedger, rec metrics.Recorder) *Auditor {
	if rec == nil {
		rec = metrics.Noop{}
	}
	return &Auditor{
		reg:     reg,
		led:     led,
		metrics: rec,
		cron:    cron.New(),
	}
}

// Start schedules periodic reconciliation runs with a cron spec such as
// "@every 1m".
func (a *Auditor) Start(spec string) error {
	_, err := a.cron.AddFunc(spec, func() {
		if _, err := a.RunOnce(); err != nil {
			utils.Error("audit: reconciliation run failed", map[string]any{"error": err.Error()})
		}
	})
	if err != nil {
		return fmt.Errorf("audit: schedule %q: %w", spec, err)
	}

	a.cron.Start()
	utils.Info("audit: reconciliation scheduled", map[string]any{"spec": spec})
	return nil
}

// Stop halts the periodic runs
func (a *Auditor) Stop() {
	a.cron.Stop()
}

// RunOnce reconciles every auction and returns the divergences found.
// Auctions with no accepted bids must carry a zero highest bid.
func (a *Auditor) RunOnce() ([]Divergence, error) {
	auctions, err := a.reg.ListAuctions()
	if err != nil {
		return nil, fmt.Errorf("audit: list auctions: %w", err)
	}

	var diverged []Divergence
	for _, auction := range auctions {
		ledgerAmount := 0.0

		latest, err := a.led.LatestBid(auction.AuctionID)
		switch {
		case err == nil:
			ledgerAmount = latest.Amount
		case errors.Is(err, biddingerrors.ErrNoBids):
			// No accepted bids; the registry must agree with a zero value.
		default:
			return nil, fmt.Errorf("audit: latest bid for auction %s: %w", auction.AuctionID, err)
		}

		if auction.CurrentHighestBid == ledgerAmount {
			continue
		}

		d := Divergence{
			AuctionID:      auction.AuctionID,
			RegistryAmount: auction.CurrentHighestBid,
			LedgerAmount:   ledgerAmount,
		}
		diverged = append(diverged, d)

		a.metrics.RecordDivergence()
		utils.Error("audit: registry and ledger diverged", map[string]any{
			"auction_id":      d.AuctionID,
			"registry_amount": d.RegistryAmount,
			"ledger_amount":   d.LedgerAmount,
		})
	}

	return diverged, nil
}
